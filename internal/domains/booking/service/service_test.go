package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manzil/config"
	"manzil/infras/otel/mocks"
	activityMocks "manzil/internal/domains/activity/service/mocks"
	bookingMocks "manzil/internal/domains/booking/mocks"
	"manzil/internal/domains/booking/model"
	"manzil/internal/domains/booking/model/dto"
	"manzil/internal/domains/booking/service"
	roomMocks "manzil/internal/domains/room/mocks"
	roomModel "manzil/internal/domains/room/model"
	cacheMocks "manzil/shared/cache/mocks"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"
)

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *activityMocks.MockActivity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockActivity := activityMocks.NewMockActivity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockActivity, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockRoomRepo, mockActivity, mockCache
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:        "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		HotelID:   "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		Name:      "Deluxe Double",
		Price:     100,
		Capacity:  2,
		Available: 4,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelID:    "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		RoomID:     "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		GuestName:  "Layla Hassan",
		GuestEmail: "layla@example.com",
		GuestPhone: "+971501234567",
		Guests:     2,
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-04",
	}
}

func TestBookingService_Create(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockActivity, _ := newBookingService(t)

	ctx := userContext("test-user-id", constant.RoleUser)

	t.Run("successful booking derives nights and total price", func(t *testing.T) {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		mockRoomRepo.EXPECT().ConsumeAvailability(gomock.Any(), availableRoom().ID, "test-user-id").Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		res, err := svc.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, float64(300), res.TotalPrice)
		assert.Equal(t, "USD", res.Currency)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Regexp(t, "^[A-Z0-9]{8}$", res.ConfirmationCode)
		assert.Equal(t, "test-user-id", res.UserID)
	})

	t.Run("room not found", func(t *testing.T) {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := svc.Create(ctx, createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("room belongs to another hotel", func(t *testing.T) {
		room := availableRoom()
		room.HotelID = "6ba7b812-9dad-11d1-80b4-00c04fd430c8"

		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := svc.Create(ctx, createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("guests exceed room capacity", func(t *testing.T) {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)

		req := createRequest()
		req.Guests = 5

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("check-out must be after check-in", func(t *testing.T) {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)

		req := createRequest()
		req.CheckOut = req.CheckIn

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room fully booked", func(t *testing.T) {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		mockRoomRepo.EXPECT().ConsumeAvailability(gomock.Any(), availableRoom().ID, "test-user-id").Return(false, nil)

		_, err := svc.Create(ctx, createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("confirmation code collision is retried", func(t *testing.T) {
		uniqueViolation := &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)}

		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		mockRoomRepo.EXPECT().ConsumeAvailability(gomock.Any(), availableRoom().ID, "test-user-id").Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueViolation)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		res, err := svc.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.Regexp(t, "^[A-Z0-9]{8}$", res.ConfirmationCode)
	})

	t.Run("availability restored when insert fails", func(t *testing.T) {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		mockRoomRepo.EXPECT().ConsumeAvailability(gomock.Any(), availableRoom().ID, "test-user-id").Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		mockRoomRepo.EXPECT().RestoreAvailability(gomock.Any(), availableRoom().ID, "test-user-id").Return(nil)

		_, err := svc.Create(ctx, createRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	svc, mockRepo, _, _, _ := newBookingService(t)

	booking := model.Booking{
		ID:     "booking-id",
		UserID: "owner-id",
		Status: model.StatusConfirmed,
	}

	t.Run("owner can read their booking", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		res, err := svc.Get(userContext("owner-id", constant.RoleUser), "booking-id")

		assert.NoError(t, err)
		assert.Equal(t, "booking-id", res.ID)
	})

	t.Run("other users are rejected", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := svc.Get(userContext("someone-else", constant.RoleUser), "booking-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("admins can read any booking", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := svc.Get(userContext("admin-id", constant.RoleAdmin), "booking-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(userContext("owner-id", constant.RoleUser), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	svc, mockRepo, mockRoomRepo, mockActivity, _ := newBookingService(t)

	booking := model.Booking{
		ID:     "booking-id",
		RoomID: "room-id",
		UserID: "owner-id",
		Status: model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}

	t.Run("cancel restores availability", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mockRoomRepo.EXPECT().RestoreAvailability(gomock.Any(), "room-id", "owner-id").Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		err := svc.Cancel(userContext("owner-id", constant.RoleUser), "booking-id")

		assert.NoError(t, err)
	})

	t.Run("cancelling twice conflicts", func(t *testing.T) {
		cancelled := booking
		cancelled.Status = model.StatusCancelled

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		err := svc.Cancel(userContext("owner-id", constant.RoleUser), "booking-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("users cannot cancel bookings they do not own", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := svc.Cancel(userContext("someone-else", constant.RoleUser), "booking-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_GetMy(t *testing.T) {
	svc, mockRepo, _, _, mockCache := newBookingService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Len(t, filter.Filters, 1)

			userFilter, ok := filter.Filters[0].(gDto.Filter)
			assert.True(t, ok)
			assert.Equal(t, model.FieldUserID, userFilter.Field)
			assert.Equal(t, "owner-id", userFilter.Value)

			return []model.Booking{{ID: "booking-id", UserID: "owner-id"}}, nil
		})

	res, err := svc.GetMy(userContext("owner-id", constant.RoleUser), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 1, res.TotalData)
}
