package role

import (
	"errors"
	"strings"
)

// CreateRoleDTO is the request payload for POST /roles.
type CreateRoleDTO struct {
	Title string `json:"title"`
}

// Validate enforces the role title charset: lowercase letters only, at most
// 20 characters.
func (dto *CreateRoleDTO) Validate() error {
	dto.Title = strings.TrimSpace(dto.Title)
	if dto.Title == "" {
		return errors.New("title is required")
	}
	if len(dto.Title) > 20 {
		return errors.New("title must not exceed 20 characters")
	}
	for _, r := range dto.Title {
		if r < 'a' || r > 'z' {
			return errors.New("title must contain only lowercase letters")
		}
	}
	return nil
}
