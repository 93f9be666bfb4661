package document

import (
	"time"

	userDatamodel "github.com/docmanpro/docman/internal/core/datamodel/user"
)

// Document rows keep owner_role_id as a snapshot of the owner's role at
// creation time. Role-scoped visibility compares against this snapshot, not
// the owner's current role.
type Document struct {
	ID          int64               `gorm:"primaryKey"`
	Title       string              `gorm:"column:title;not null;uniqueIndex"`
	Content     string              `gorm:"column:content"`
	Access      string              `gorm:"column:access;not null;default:public"`
	UserID      int64               `gorm:"column:user_id;not null"`
	OwnerRoleID int64               `gorm:"column:owner_role_id;not null"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
	User        *userDatamodel.User `gorm:"foreignKey:UserID"`
}

func (Document) TableName() string {
	return "documents"
}
