package document

import (
	"errors"
	"strings"

	"github.com/docmanpro/docman/internal/accesspolicy"
)

// CreateDocumentDTO is the request payload for POST /documents.
type CreateDocumentDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Access  string `json:"access"`
}

func (dto *CreateDocumentDTO) Validate() error {
	dto.Title = strings.TrimSpace(dto.Title)
	if dto.Title == "" {
		return errors.New("title is required")
	}
	if len(dto.Title) > 30 {
		return errors.New("title must not exceed 30 characters")
	}
	if dto.Content == "" {
		return errors.New("content is required")
	}
	if dto.Access == "" {
		dto.Access = accesspolicy.AccessPublic
	}
	if !accesspolicy.ValidAccess(dto.Access) {
		return errors.New("access must be public, private or role")
	}
	return nil
}

// UpdateDocumentDTO is the request payload for PUT /documents/:id. Zero
// fields are left untouched.
type UpdateDocumentDTO struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Access  *string `json:"access,omitempty"`
}

func (dto *UpdateDocumentDTO) Validate() error {
	if dto.Title != nil {
		trimmed := strings.TrimSpace(*dto.Title)
		if trimmed == "" {
			return errors.New("title must not be empty")
		}
		if len(trimmed) > 30 {
			return errors.New("title must not exceed 30 characters")
		}
		dto.Title = &trimmed
	}
	if dto.Access != nil && !accesspolicy.ValidAccess(*dto.Access) {
		return errors.New("access must be public, private or role")
	}
	return nil
}
