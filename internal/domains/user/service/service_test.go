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
	activityMocks "manzil/internal/domains/activity/service/mocks"
	userMocks "manzil/internal/domains/user/mocks"
	"manzil/internal/domains/user/model"
	"manzil/internal/domains/user/model/dto"
	"manzil/internal/domains/user/service"
	cacheMocks "manzil/shared/cache/mocks"
	"manzil/shared/constant"
	"manzil/shared/failure"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *activityMocks.MockActivity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockActivity := activityMocks.NewMockActivity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockActivity, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockActivity, mockCache
}

func actorContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestUserService_GetProfile(t *testing.T) {
	svc, mockRepo, _, mockCache := newUserService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
		ID:       "user-id",
		Email:    "layla@example.com",
		FullName: "Layla Hassan",
		Role:     constant.RoleUser,
		Active:   true,
	}, nil)

	res, err := svc.GetProfile(actorContext("user-id"))

	assert.NoError(t, err)
	assert.Equal(t, "user-id", res.ID)
	assert.Equal(t, "layla@example.com", res.Email)
}

func TestUserService_ChangeRole(t *testing.T) {
	svc, mockRepo, mockActivity, _ := newUserService(t)

	ctx := actorContext("super-admin-id")

	t.Run("successful role change", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, constant.RoleAdmin, fields[model.FieldRole])

				return nil
			})
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		err := svc.ChangeRole(ctx, dto.ChangeRoleRequest{Role: constant.RoleAdmin}, "user-id")

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.ChangeRole(ctx, dto.ChangeRoleRequest{Role: constant.RoleAdmin}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	svc, mockRepo, mockActivity, _ := newUserService(t)

	t.Run("deleting another account succeeds", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		err := svc.Delete(actorContext("super-admin-id"), "user-id")

		assert.NoError(t, err)
	})

	t.Run("deleting your own account is forbidden", func(t *testing.T) {
		err := svc.Delete(actorContext("super-admin-id"), "super-admin-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(actorContext("super-admin-id"), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
