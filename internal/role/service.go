package role

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal"
	"github.com/docmanpro/docman/internal/accesspolicy"
	"github.com/docmanpro/docman/internal/auth"
	roleDatamodel "github.com/docmanpro/docman/internal/core/datamodel/role"
)

// RepositoryAPI defines the data access methods for roles.
type RepositoryAPI interface {
	GetAll() ([]*roleDatamodel.Role, error)
	GetByID(id int64) (*roleDatamodel.Role, error)
	TitleTaken(title string) (bool, error)
	Create(role *roleDatamodel.Role) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns all roles. Superadmin only.
func (s *Service) List(identity *auth.Identity) ([]*Role, error) {
	if !accesspolicy.CanManageRoles(identity) {
		s.logger.Warn("role listing denied", "user_id", identity.UserID, "role_id", identity.RoleID)
		return nil, internal.ErrSuperadminRequired
	}

	roles, err := s.repo.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list roles", err)
	}

	return FromDataModelSlice(roles), nil
}

// Create adds a new role. Superadmin only; titles are unique.
func (s *Service) Create(identity *auth.Identity, dto CreateRoleDTO) (*Role, error) {
	if !accesspolicy.CanManageRoles(identity) {
		s.logger.Warn("role creation denied", "user_id", identity.UserID, "role_id", identity.RoleID)
		return nil, internal.ErrSuperadminRequired
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.TitleTaken(dto.Title)
	if err != nil {
		return nil, internal.NewInternalError("failed to check role title", err)
	}
	if taken {
		return nil, internal.ErrRoleTitleExists
	}

	role := &roleDatamodel.Role{Title: dto.Title}
	if err := s.repo.Create(role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrRoleTitleExists
		}
		return nil, internal.NewInternalError("failed to create role", err)
	}

	s.logger.Info("role created", "role_id", role.ID, "title", role.Title, "created_by", identity.UserID)

	return FromDataModel(role), nil
}

// Delete removes a role. Existence is checked before permission so an
// absent role answers 404 regardless of the caller's rank; seeded roles are
// never deletable.
func (s *Service) Delete(identity *auth.Identity, id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if !accesspolicy.CanManageRoles(identity) {
		s.logger.Warn("role deletion denied", "role_id", id, "user_id", identity.UserID)
		return internal.ErrSuperadminRequired
	}

	if accesspolicy.IsProtectedRole(id) {
		return internal.ErrProtectedRole
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete role", err)
	}

	s.logger.Info("role deleted", "role_id", id, "deleted_by", identity.UserID)

	return nil
}
