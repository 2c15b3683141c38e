package model

import (
	"time"

	"manzil/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldHotelID          = "hotel_id"
	FieldRoomID           = "room_id"
	FieldUserID           = "user_id"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldGuests           = "guests"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldStatus           = "status"
	FieldConfirmationCode = "confirmation_code"

	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID               string    `db:"id"`
	HotelID          string    `db:"hotel_id"`
	RoomID           string    `db:"room_id"`
	UserID           string    `db:"user_id"`
	GuestName        string    `db:"guest_name"`
	GuestEmail       string    `db:"guest_email"`
	GuestPhone       string    `db:"guest_phone"`
	Guests           int       `db:"guests"`
	CheckIn          time.Time `db:"check_in"`
	CheckOut         time.Time `db:"check_out"`
	Nights           int       `db:"nights"`
	TotalPrice       float64   `db:"total_price"`
	Currency         string    `db:"currency"`
	ConfirmationCode string    `db:"confirmation_code"`
	Status           string    `db:"status"`
	model.Metadata
}
