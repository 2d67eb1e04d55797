package dto

import "github.com/agrifusion/agrifusion-backend/internal/core/domain"

// RegisterRequest carries the registration payload. Email and phone are
// individually optional; at least one must be present.
type RegisterRequest struct {
	FullName     string  `json:"fullName" binding:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Password     *string `json:"password"`
	FarmLocation *string `json:"farmLocation"`
}

// LoginRequest carries login credentials. Email takes precedence when both
// identifiers are supplied.
type LoginRequest struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" binding:"required"`
}

// UpdateProfileRequest defines the fields a user may change on their own
// profile. Pointers distinguish omitted fields from zero values; anything
// outside this struct is dropped during JSON decoding and never reaches the
// store.
type UpdateProfileRequest struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	FarmLocation *string `json:"farmLocation"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	UserID       string  `json:"id"`
	FullName     string  `json:"fullName"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	FarmLocation *string `json:"farmLocation,omitempty"`
}

// AuthResponse is returned by register and login: public user fields plus a
// freshly issued bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		FullName:     user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		FarmLocation: user.FarmLocation,
	}
}
