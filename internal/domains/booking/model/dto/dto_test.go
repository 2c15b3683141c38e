package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"manzil/internal/domains/booking/model"
	"manzil/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	base := dto.CreateBookingRequest{
		HotelID:    "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		RoomID:     "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		GuestName:  "Layla Hassan",
		GuestEmail: "layla@example.com",
		GuestPhone: "+971501234567",
		Guests:     2,
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-04",
	}

	t.Run("derives nights and total price", func(t *testing.T) {
		req := base

		booking, err := req.ToModel("user-id", 150, "AB12CD34")

		assert.NoError(t, err)
		assert.Equal(t, 3, booking.Nights)
		assert.Equal(t, float64(450), booking.TotalPrice)
		assert.Equal(t, "AB12CD34", booking.ConfirmationCode)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.Equal(t, "user-id", booking.UserID)
		assert.Equal(t, "user-id", booking.CreatedBy)
		assert.NotEmpty(t, booking.ID)
	})

	t.Run("single night stay", func(t *testing.T) {
		req := base
		req.CheckOut = "2026-10-02"

		booking, err := req.ToModel("user-id", 150, "AB12CD34")

		assert.NoError(t, err)
		assert.Equal(t, 1, booking.Nights)
		assert.Equal(t, float64(150), booking.TotalPrice)
	})

	t.Run("currency defaults to USD", func(t *testing.T) {
		req := base

		booking, err := req.ToModel("user-id", 150, "AB12CD34")

		assert.NoError(t, err)
		assert.Equal(t, "USD", booking.Currency)
	})

	t.Run("explicit currency is kept", func(t *testing.T) {
		req := base
		req.Currency = "AED"

		booking, err := req.ToModel("user-id", 150, "AB12CD34")

		assert.NoError(t, err)
		assert.Equal(t, "AED", booking.Currency)
	})

	t.Run("dates parse as civil dates in UTC", func(t *testing.T) {
		// A stay spanning a clock change must still count whole days.
		req := base
		req.CheckIn = "2026-10-31"
		req.CheckOut = "2026-11-03"

		booking, err := req.ToModel("user-id", 100, "AB12CD34")

		assert.NoError(t, err)
		assert.Equal(t, 3, booking.Nights)
		assert.Equal(t, float64(300), booking.TotalPrice)
		assert.Equal(t, time.UTC, booking.CheckIn.Location())
		assert.Equal(t, time.UTC, booking.CheckOut.Location())
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		req := base
		req.CheckIn = "01-10-2026"

		_, err := req.ToModel("user-id", 150, "AB12CD34")

		assert.Error(t, err)
	})
}
