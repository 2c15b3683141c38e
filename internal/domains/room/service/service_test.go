package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manzil/config"
	"manzil/infras/otel/mocks"
	hotelMocks "manzil/internal/domains/hotel/mocks"
	roomMocks "manzil/internal/domains/room/mocks"
	"manzil/internal/domains/room/model"
	"manzil/internal/domains/room/model/dto"
	"manzil/internal/domains/room/service"
	cacheMocks "manzil/shared/cache/mocks"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHotelRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockHotelRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, mockHotelRepo, _ := newRoomService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	req := dto.CreateRoomRequest{
		HotelID:   "14cfb723-04bb-4701-b899-a2c0a8e9e6fc",
		Name:      "Deluxe Sea View",
		NameAr:    "غرفة ديلوكس بإطلالة بحرية",
		Price:     150,
		Capacity:  2,
		Available: 10,
	}

	t.Run("successful creation", func(t *testing.T) {
		mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, req.HotelID, room.HotelID)
				assert.Equal(t, req.Price, room.Price)
				assert.Equal(t, "admin-id", room.CreatedBy)

				return nil
			})

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("unknown hotel is rejected", func(t *testing.T) {
		mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomService_GetByHotel(t *testing.T) {
	svc, mockRepo, _, mockCache := newRoomService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			hotelFilter, ok := filter.Filters[0].(gDto.Filter)
			assert.True(t, ok)
			assert.Equal(t, model.FieldHotelID, hotelFilter.Field)
			assert.Equal(t, "hotel-id", hotelFilter.Value)

			return []model.Room{{ID: "room-1", HotelID: "hotel-id"}}, nil
		})

	res, err := svc.GetByHotel(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "hotel-id")

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_Get(t *testing.T) {
	svc, mockRepo, _, mockCache := newRoomService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()

	t.Run("existing room", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:        "room-1",
			Name:      "Deluxe Sea View",
			Available: 3,
		}, nil)

		res, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Available)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Update(t *testing.T) {
	svc, mockRepo, _, _ := newRoomService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("successful update", func(t *testing.T) {
		available := 5

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, &available, fields[model.FieldAvailable])

				return nil
			})

		err := svc.Update(ctx, dto.UpdateRoomRequest{Available: &available}, "room-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(ctx, dto.UpdateRoomRequest{}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
