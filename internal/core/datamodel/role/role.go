package role

import "time"

type Role struct {
	ID        int64     `gorm:"primaryKey"`
	Title     string    `gorm:"column:title;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Role) TableName() string {
	return "roles"
}
