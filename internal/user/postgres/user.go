package postgres

import (
	"strings"

	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal"
	userDatamodel "github.com/docmanpro/docman/internal/core/datamodel/user"
	"github.com/docmanpro/docman/internal/user"
)

// UserRepository implements user.RepositoryAPI and doubles as the auth
// package's credential store.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ user.RepositoryAPI = (*UserRepository)(nil)

func (r *UserRepository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetCredentials implements auth.CredentialStore.
func (r *UserRepository) GetCredentials(username string) (int64, int64, string, error) {
	var u userDatamodel.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, "", internal.ErrUserNotFound
		}
		return 0, 0, "", err
	}
	return u.ID, u.RoleID, u.PasswordHash, nil
}

func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List pages through users ordered by creation, most recent first. A
// non-empty query narrows to case-insensitive username matches.
func (r *UserRepository) List(query string, limit, offset int) ([]*userDatamodel.User, int64, error) {
	scoped := r.db.Model(&userDatamodel.User{})
	if query != "" {
		scoped = scoped.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var count int64
	if err := scoped.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []*userDatamodel.User
	err := scoped.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *UserRepository) Update(u *userDatamodel.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&userDatamodel.User{}, id).Error
}

// Exists implements the document service's user lookup.
func (r *UserRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
