package service

import (
	"context"
	"fmt"
	"manzil/config"
	"manzil/infras/jwt"
	"manzil/infras/otel"
	activityDto "manzil/internal/domains/activity/model/dto"
	activitySvc "manzil/internal/domains/activity/service"
	"manzil/internal/domains/auth/model/dto"
	userModel "manzil/internal/domains/user/model"
	userRepo "manzil/internal/domains/user/repository"
	"manzil/shared"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"
	"manzil/shared/password"
	"manzil/shared/timezone"

	"github.com/rs/zerolog/log"
)

const invalidCredentialsMessage = "invalid email or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*jwt.TokenPair, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	jwtService jwt.JWT
	activity   activitySvc.Activity
	cfg        *config.Config
	otel       otel.Otel
}

func New(userRepo userRepo.User, jwtService jwt.JWT, activity activitySvc.Activity, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		activity:   activity,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailTaken, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email exists")

		return res, fmt.Errorf("failed to check if email exists: %w", err)
	}

	if emailTaken {
		return res, failure.Conflict("email is already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to register user")

		return res, fmt.Errorf("failed to register user: %w", err)
	}

	tokens, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.FromModel(user, tokens)

	s.activity.Record(ctx, activityDto.RecordActivityRequest{
		Action:   "auth.registered",
		Entity:   userModel.EntityName,
		EntityID: user.ID,
	})

	return res, nil
}

// Login verifies credentials. Unknown email and wrong password return the
// same message so the response does not reveal which one failed.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized(invalidCredentialsMessage) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized(invalidCredentialsMessage) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("account is deactivated") // nolint:wrapcheck
	}

	tokens, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	now := timezone.Now()

	if updateErr := s.userRepo.Update(ctx, map[string]any{
		"last_login":             now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user.ID,
	}, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); updateErr != nil {
		log.Error().Err(updateErr).Msg("failed to update last login")
	}

	user.LastLogin = &now

	res.FromModel(user, tokens)

	s.activity.Record(ctx, activityDto.RecordActivityRequest{
		Action:   "auth.logged_in",
		Entity:   userModel.EntityName,
		EntityID: user.ID,
	})

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res *jwt.TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokens, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh tokens")

		return nil, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return tokens, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.OldPassword, user.Password); err != nil {
		return failure.Unauthorized("old password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Update(ctx, map[string]any{
		"password":               hashedPassword,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user.ID,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return fmt.Errorf("failed to change password: %w", err)
	}

	s.activity.Record(ctx, activityDto.RecordActivityRequest{
		Action:   "auth.password_changed",
		Entity:   userModel.EntityName,
		EntityID: user.ID,
	})

	return nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
