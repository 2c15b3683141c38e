package dto

import (
	"fmt"
	"math"
	"time"

	"manzil/internal/domains/booking/model"
	"manzil/shared"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
)

const defaultCurrency = "USD"

type CreateBookingRequest struct {
	HotelID    string `json:"hotel_id"    validate:"required,uuid"`
	RoomID     string `json:"room_id"     validate:"required,uuid"`
	GuestName  string `json:"guest_name"  validate:"required,max=200"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	GuestPhone string `json:"guest_phone" validate:"required,max=30"`
	Guests     int    `json:"guests"      validate:"required,gte=1"`
	CheckIn    string `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"   validate:"required,datetime=2006-01-02"`
	Currency   string `json:"currency"    validate:"omitempty,len=3"`
}

// ToModel builds the booking with its derived fields: the number of nights is
// the stay length rounded up to whole days, and the total price is the
// nightly rate times that count.
func (c *CreateBookingRequest) ToModel(user string, pricePerNight float64, confirmationCode string) (model.Booking, error) {
	// Stay dates are civil dates; parsing them in UTC keeps the night count
	// independent of the configured timezone and its clock changes.
	checkIn, err := time.Parse(constant.StayDateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse check-in date: %w", err)
	}

	checkOut, err := time.Parse(constant.StayDateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse check-out date: %w", err)
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / constant.HoursPerDay))

	currency := c.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return model.Booking{
		ID:               uuid.NewString(),
		HotelID:          c.HotelID,
		RoomID:           c.RoomID,
		UserID:           user,
		GuestName:        c.GuestName,
		GuestEmail:       c.GuestEmail,
		GuestPhone:       c.GuestPhone,
		Guests:           c.Guests,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Nights:           nights,
		TotalPrice:       pricePerNight * float64(nights),
		Currency:         currency,
		ConfirmationCode: confirmationCode,
		Status:           model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID               string    `json:"id"`
	HotelID          string    `json:"hotel_id"`
	RoomID           string    `json:"room_id"`
	UserID           string    `json:"user_id,omitempty"`
	GuestName        string    `json:"guest_name"`
	GuestEmail       string    `json:"guest_email"`
	GuestPhone       string    `json:"guest_phone"`
	Guests           int       `json:"guests"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	Nights           int       `json:"nights"`
	TotalPrice       float64   `json:"total_price"`
	Currency         string    `json:"currency"`
	ConfirmationCode string    `json:"confirmation_code"`
	Status           string    `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Guests = model.Guests
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice
	r.Currency = model.Currency
	r.ConfirmationCode = model.ConfirmationCode
	r.Status = model.Status

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}
