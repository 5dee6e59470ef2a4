package handlers

import (
	adminRepo "hotelify/database/repository/admin"
	userRepo "hotelify/database/repository/user"
)

// HandlerBundle groups the handlers and the repositories the auth
// middleware needs, so route registration takes a single value.
type HandlerBundle struct {
	UserRepo  userRepo.UserRepository
	AdminRepo adminRepo.AdminRepository

	Booking *BookingHandler
	Payment *PaymentHandler
	Room    *RoomHandler
	User    *UserHandler
	Admin   *AdminHandler
	Storage *StorageHandler
}
