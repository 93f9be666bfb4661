package user

import (
	"errors"
	"strings"
)

// SignupDTO is the request payload for POST /users.
type SignupDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   int64  `json:"roleId,omitempty"`
}

func (dto *SignupDTO) Validate() error {
	dto.Name = strings.TrimSpace(dto.Name)
	dto.Email = strings.TrimSpace(dto.Email)
	dto.Username = strings.TrimSpace(dto.Username)

	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if dto.Username == "" {
		return errors.New("username is required")
	}
	if len(dto.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if dto.RoleID < 0 {
		return errors.New("roleId must be a positive integer")
	}
	return nil
}

// UpdateUserDTO is the request payload for PUT /users/:id. Zero fields are
// left untouched; RoleID changes require superadmin rank.
type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	RoleID   *int64  `json:"roleId,omitempty"`
}

func (dto *UpdateUserDTO) Validate() error {
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return errors.New("name must not be empty")
	}
	if dto.Email != nil && !strings.Contains(*dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if dto.Password != nil && len(*dto.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if dto.RoleID != nil && *dto.RoleID <= 0 {
		return errors.New("roleId must be a positive integer")
	}
	return nil
}
