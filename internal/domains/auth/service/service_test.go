package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manzil/config"
	"manzil/infras/jwt"
	jwtMocks "manzil/infras/jwt/mocks"
	"manzil/infras/otel/mocks"
	activityMocks "manzil/internal/domains/activity/service/mocks"
	"manzil/internal/domains/auth/model/dto"
	"manzil/internal/domains/auth/service"
	userMocks "manzil/internal/domains/user/mocks"
	userModel "manzil/internal/domains/user/model"
	"manzil/shared/constant"
	"manzil/shared/failure"
	"manzil/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT, *activityMocks.MockActivity) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockActivity := activityMocks.NewMockActivity(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockJWT, mockActivity, cfg, mockOtel)

	return svc, mockUserRepo, mockJWT, mockActivity
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func activeUser(t *testing.T) userModel.User {
	t.Helper()

	hashed, err := password.Hash("correct horse battery")
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-id",
		Email:    "layla@example.com",
		Password: hashed,
		FullName: "Layla Hassan",
		Role:     constant.RoleUser,
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, mockUserRepo, mockJWT, mockActivity := newAuthService(t)

	req := dto.RegisterRequest{
		FullName: "Layla Hassan",
		Email:    "layla@example.com",
		Password: "correct horse battery",
	}

	t.Run("successful registration", func(t *testing.T) {
		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.True(t, user.Active)
				assert.NoError(t, password.Verify(req.Password, user.Password))

				return nil
			})
		mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), req.Email, constant.RoleUser).Return(tokenPair(), nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		res, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, req.Email, res.User.Email)
		assert.Equal(t, "access-token", res.Tokens.AccessToken)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	svc, mockUserRepo, mockJWT, mockActivity := newAuthService(t)

	req := dto.LoginRequest{
		Email:    "layla@example.com",
		Password: "correct horse battery",
	}

	t.Run("successful login", func(t *testing.T) {
		user := activeUser(t)

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockJWT.EXPECT().GenerateTokenPair(user.ID, user.Email, user.Role).Return(tokenPair(), nil)
		mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		res, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, user.Email, res.User.Email)
		assert.NotNil(t, res.User.LastLogin)
	})

	t.Run("unknown email and wrong password share a message", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, unknownErr := svc.Login(context.Background(), req)

		assert.Error(t, unknownErr)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(unknownErr))

		wrongReq := req
		wrongReq.Password = "not the password"

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)

		_, wrongErr := svc.Login(context.Background(), wrongReq)

		assert.Error(t, wrongErr)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(wrongErr))
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		user := activeUser(t)
		user.Active = false

		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _, mockJWT, _ := newAuthService(t)

	t.Run("valid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("refresh-token").Return(tokenPair(), nil)

		tokens, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", tokens.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("bad-token").Return(nil, errors.New("token is expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, mockUserRepo, _, mockActivity := newAuthService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")

	t.Run("successful change", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)
		mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), gomock.Any())

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
			OldPassword: "correct horse battery",
			NewPassword: "a brand new passphrase",
		})

		assert.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t), nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
			OldPassword: "not the password",
			NewPassword: "a brand new passphrase",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
