// models/order.go
package models

import (
	"fmt"
	"time"
)

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
	OrderCompleted OrderStatus = "completed"
)

// ParseOrderStatus validates a status string.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderPending, OrderConfirmed, OrderCancelled, OrderCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// TimeSlot is one of the fixed bookable time ranges.
type TimeSlot string

// timeSlots is the fixed vocabulary of bookable ranges, 08:00-19:00 in one-
// and two-hour windows. Membership is exact-string, order-insensitive.
var timeSlots = map[TimeSlot]struct{}{
	"08.00 - 09.00": {}, "08.00 - 10.00": {},
	"09.00 - 10.00": {}, "09.00 - 11.00": {},
	"10.00 - 12.00": {}, "10.00 - 11.00": {},
	"11.00 - 12.00": {}, "11.00 - 13.00": {},
	"12.00 - 13.00": {}, "12.00 - 14.00": {},
	"13.00 - 14.00": {}, "13.00 - 15.00": {},
	"14.00 - 15.00": {}, "14.00 - 16.00": {},
	"15.00 - 16.00": {}, "15.00 - 17.00": {},
	"16.00 - 17.00": {}, "16.00 - 18.00": {},
	"17.00 - 18.00": {}, "17.00 - 19.00": {},
	"18.00 - 19.00": {},
}

// ParseTimeSlot validates a time-slot string against the fixed set.
func ParseTimeSlot(s string) (TimeSlot, error) {
	if _, ok := timeSlots[TimeSlot(s)]; !ok {
		return "", fmt.Errorf("invalid time slot %q", s)
	}
	return TimeSlot(s), nil
}

// Order is a booking request for a translator's services.
type Order struct {
	ID           int64       `bson:"id" json:"id"`
	Date         string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot     TimeSlot    `bson:"time_slot" json:"time_slot"`
	Description  string      `bson:"description" json:"description"`
	Status       OrderStatus `bson:"status" json:"status"`
	UserID       int64       `bson:"user_id" json:"user_id"`
	TranslatorID int64       `bson:"translator_id" json:"translator_id"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// OrderDetails is the create payload for an order.
type OrderDetails struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Description string `json:"description"`
}
