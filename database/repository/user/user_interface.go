package userRepo

import (
	"studeaf/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id int64) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record, assigning its id.
	Create(user *models.User) error
	// UpdateSetDocument patches the given fields on a user record.
	UpdateSetDocument(id int64, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id int64) error
	// IncrementPoints adds delta to a user's points balance.
	IncrementPoints(id int64, delta int) error
	// GetNamesByIDs resolves display names for a set of user ids.
	GetNamesByIDs(ids []int64) (map[int64]string, error)
}
