package document

import (
	"time"

	documentDatamodel "github.com/docmanpro/docman/internal/core/datamodel/document"
)

// Document is the API-facing document shape. OwnerRoleID is the owner's
// role at creation time; it never follows later role changes.
type Document struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Access      string    `json:"access"`
	UserID      int64     `json:"userId"`
	OwnerRoleID int64     `json:"ownerRoleId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        *Owner    `json:"User,omitempty"`
}

// Owner is the slice of the owning user embedded in single-document reads.
type Owner struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func ToDataModel(d *Document) *documentDatamodel.Document {
	return &documentDatamodel.Document{
		ID:          d.ID,
		Title:       d.Title,
		Content:     d.Content,
		Access:      d.Access,
		UserID:      d.UserID,
		OwnerRoleID: d.OwnerRoleID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDataModel(d *documentDatamodel.Document) *Document {
	doc := &Document{
		ID:          d.ID,
		Title:       d.Title,
		Content:     d.Content,
		Access:      d.Access,
		UserID:      d.UserID,
		OwnerRoleID: d.OwnerRoleID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.User != nil {
		doc.User = &Owner{
			ID:       d.User.ID,
			Name:     d.User.Name,
			Username: d.User.Username,
		}
	}
	return doc
}

func FromDataModelSlice(docs []*documentDatamodel.Document) []*Document {
	result := make([]*Document, len(docs))
	for i, d := range docs {
		result[i] = FromDataModel(d)
	}
	return result
}
