package dto

import (
	"manzil/infras/jwt"
	userModel "manzil/internal/domains/user/model"
	userDto "manzil/internal/domains/user/model/dto"
	"manzil/shared/constant"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	Phone    string `json:"phone"     validate:"omitempty,max=30"`
}

// ToModel builds a regular active user. Elevated roles are only assigned
// later by a super admin.
func (c *RegisterRequest) ToModel(hashedPassword string) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:       id,
		Email:    c.Email,
		Password: hashedPassword,
		FullName: c.FullName,
		Phone:    c.Phone,
		Role:     constant.RoleUser,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type AuthResponse struct {
	User   userDto.UserResponse `json:"user"`
	Tokens jwt.TokenPair        `json:"tokens"`
}

func (r *AuthResponse) FromModel(model userModel.User, tokens *jwt.TokenPair) {
	r.User.FromModel(model)

	if tokens != nil {
		r.Tokens = *tokens
	}
}
