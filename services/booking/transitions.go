package booking

import (
	"studeaf/models"
	"studeaf/utils"
)

// actor identifies who may drive a given transition.
type actor int

const (
	actorAdmin actor = iota // caller must hold the admin role
	actorOwner              // caller must be the order's creating user
)

type transitionKey struct {
	from models.OrderStatus
	to   models.OrderStatus
}

// transitions is the single authority on which status changes exist and who
// may perform them. Confirm/cancel are admin decisions regardless of who
// placed the order; completion belongs to the owner regardless of role.
var transitions = map[transitionKey]actor{
	{models.OrderPending, models.OrderConfirmed}:   actorAdmin,
	{models.OrderPending, models.OrderCancelled}:   actorAdmin,
	{models.OrderConfirmed, models.OrderCancelled}: actorAdmin,
	{models.OrderConfirmed, models.OrderCompleted}: actorOwner,
}

// authorizeTransition checks the transition table for the requested change.
// An absent edge is a state conflict; a present edge with the wrong caller
// is an authorization failure.
func authorizeTransition(auth models.AuthContext, order *models.Order, target models.OrderStatus) error {
	allowed, ok := transitions[transitionKey{from: order.Status, to: target}]
	if !ok {
		return utils.ConflictError("INVALID_TRANSITION",
			"order cannot move from "+string(order.Status)+" to "+string(target))
	}
	switch allowed {
	case actorAdmin:
		if !auth.IsAdmin() {
			return utils.ForbiddenError("FORBIDDEN", "only admins may perform this status change")
		}
	case actorOwner:
		if order.UserID != auth.UserID {
			return utils.ForbiddenError("FORBIDDEN", "only the order's owner may complete it")
		}
	}
	return nil
}
