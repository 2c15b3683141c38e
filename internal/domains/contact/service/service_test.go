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
	contactMocks "manzil/internal/domains/contact/mocks"
	"manzil/internal/domains/contact/model"
	"manzil/internal/domains/contact/model/dto"
	"manzil/internal/domains/contact/service"
	cacheMocks "manzil/shared/cache/mocks"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"
)

func newContactService(t *testing.T) (service.Contact, *contactMocks.MockContact, *contactMocks.MockNewsletter, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockContactRepo := contactMocks.NewMockContact(ctrl)
	mockNewsletterRepo := contactMocks.NewMockNewsletter(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockContactRepo, mockNewsletterRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockContactRepo, mockNewsletterRepo, mockCache
}

func TestContactService_CreateMessage(t *testing.T) {
	svc, mockContactRepo, _, _ := newContactService(t)

	req := dto.CreateContactMessageRequest{
		Name:    "Layla Hassan",
		Email:   "layla@example.com",
		Subject: "Booking question",
		Message: "Is late checkout available?",
	}

	t.Run("message is stored", func(t *testing.T) {
		mockContactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.ContactMessage) error {
				assert.Equal(t, req.Email, message.Email)
				assert.Equal(t, req.Message, message.Message)

				return nil
			})

		err := svc.CreateMessage(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockContactRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := svc.CreateMessage(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestContactService_Subscribe(t *testing.T) {
	svc, _, mockNewsletterRepo, _ := newContactService(t)

	req := dto.SubscribeNewsletterRequest{Email: "layla@example.com"}

	t.Run("new subscriber", func(t *testing.T) {
		mockNewsletterRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockNewsletterRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Subscribe(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate subscription conflicts", func(t *testing.T) {
		mockNewsletterRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Subscribe(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestContactService_Unsubscribe(t *testing.T) {
	svc, _, mockNewsletterRepo, _ := newContactService(t)

	t.Run("existing subscription is removed", func(t *testing.T) {
		mockNewsletterRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockNewsletterRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Unsubscribe(context.Background(), "layla@example.com")

		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockNewsletterRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Unsubscribe(context.Background(), "unknown@example.com")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestContactService_GetMessages(t *testing.T) {
	svc, mockContactRepo, _, mockCache := newContactService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()

	mockContactRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockContactRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ContactMessage{{ID: "message-id", Email: "layla@example.com"}}, nil)

	res, err := svc.GetMessages(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Messages, 1)
	assert.Equal(t, 1, res.TotalData)
}
