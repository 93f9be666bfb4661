package auth

import "github.com/docmanpro/docman/internal"

// LoginDTO is the request payload for POST /users/login.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if dto.Username == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
