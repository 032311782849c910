package handlers

import (
	userRepoPkg "studeaf/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct handed to the
// routing layer. The user repository rides along for the auth middleware.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User     *UserHandler
	Booking  *BookingHandler
	Forum    *ForumHandler
	Summary  *SummaryHandler
	Feedback *FeedbackHandler
	Storage  *StorageHandler
}
