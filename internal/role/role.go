package role

import (
	"time"

	roleDatamodel "github.com/docmanpro/docman/internal/core/datamodel/role"
)

// Role is the API-facing role shape.
type Role struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToDataModel(r *Role) *roleDatamodel.Role {
	return &roleDatamodel.Role{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromDataModel(r *roleDatamodel.Role) *Role {
	return &Role{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromDataModelSlice(roles []*roleDatamodel.Role) []*Role {
	result := make([]*Role, len(roles))
	for i, r := range roles {
		result[i] = FromDataModel(r)
	}
	return result
}
