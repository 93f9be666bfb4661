package postgres

import (
	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal"
	roleDatamodel "github.com/docmanpro/docman/internal/core/datamodel/role"
	"github.com/docmanpro/docman/internal/role"
)

// RoleRepository implements role.RepositoryAPI using GORM.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetAll() ([]*roleDatamodel.Role, error) {
	var roles []*roleDatamodel.Role
	err := r.db.Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) GetByID(id int64) (*roleDatamodel.Role, error) {
	var rl roleDatamodel.Role
	err := r.db.Where("id = ?", id).First(&rl).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrRoleNotFound
		}
		return nil, err
	}
	return &rl, nil
}

func (r *RoleRepository) TitleTaken(title string) (bool, error) {
	var count int64
	err := r.db.Model(&roleDatamodel.Role{}).Where("title = ?", title).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RoleRepository) Create(rl *roleDatamodel.Role) error {
	return r.db.Create(rl).Error
}

func (r *RoleRepository) Delete(id int64) error {
	return r.db.Delete(&roleDatamodel.Role{}, id).Error
}
