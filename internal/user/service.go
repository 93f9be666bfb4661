package user

import (
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal"
	"github.com/docmanpro/docman/internal/accesspolicy"
	"github.com/docmanpro/docman/internal/auth"
	userDatamodel "github.com/docmanpro/docman/internal/core/datamodel/user"
	"github.com/docmanpro/docman/internal/pagination"
)

// RepositoryAPI defines the data access methods for users.
type RepositoryAPI interface {
	Create(u *userDatamodel.User) error
	GetByID(id int64) (*userDatamodel.User, error)
	UsernameTaken(username string) (bool, error)
	EmailTaken(email string) (bool, error)
	List(query string, limit, offset int) ([]*userDatamodel.User, int64, error)
	Update(u *userDatamodel.User) error
	Delete(id int64) error
	Exists(id int64) (bool, error)
}

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   RepositoryAPI
	tokens auth.TokenGenerator
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens auth.TokenGenerator, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Signup creates an account and signs the new user in by returning a token.
func (s *Service) Signup(dto SignupDTO) (*User, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	taken, err := s.repo.UsernameTaken(dto.Username)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to check username", err)
	}
	if taken {
		return nil, "", errors.New("username must be unique")
	}

	taken, err = s.repo.EmailTaken(dto.Email)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to check email", err)
	}
	if taken {
		return nil, "", errors.New("email must be unique")
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to hash password", err)
	}

	roleID := dto.RoleID
	if roleID == 0 {
		roleID = DefaultRoleID
	}
	// Self-service signup never grants a seeded role above the default.
	// Elevated roles are assigned afterwards by a superadmin via update.
	if roleID != DefaultRoleID && accesspolicy.IsProtectedRole(roleID) {
		return nil, "", errors.New("roleId refers to a reserved role")
	}

	u := &userDatamodel.User{
		Name:         dto.Name,
		Email:        dto.Email,
		Username:     dto.Username,
		PasswordHash: hash,
		RoleID:       roleID,
	}

	if err := s.repo.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errors.New("username must be unique")
		}
		return nil, "", internal.NewInternalError("failed to create user", err)
	}

	token, err := s.tokens.GenerateToken(u.ID, u.RoleID)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to sign token", err)
	}

	s.logger.Info("user signed up", "user_id", u.ID, "username", u.Username, "role_id", u.RoleID)

	return FromDataModel(u), token, nil
}

// Get retrieves a single user profile.
func (s *Service) Get(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(u), nil
}

// List returns the administrative page of all users. Admin or superadmin
// rank required.
func (s *Service) List(identity *auth.Identity, w pagination.Window) ([]*User, pagination.PageData, error) {
	if !accesspolicy.CanListUsers(identity) {
		s.logger.Warn("user listing denied", "user_id", identity.UserID, "role_id", identity.RoleID)
		return nil, pagination.PageData{}, internal.ErrAdminRequired
	}

	return s.page(w)
}

// Search pages through users whose username matches the term. Any
// authenticated caller may search; profiles carry no private fields.
func (s *Service) Search(w pagination.Window) ([]*User, pagination.PageData, error) {
	return s.page(w)
}

func (s *Service) page(w pagination.Window) ([]*User, pagination.PageData, error) {
	users, count, err := s.repo.List(strings.TrimSpace(w.Query), w.Limit, w.Offset)
	if err != nil {
		return nil, pagination.PageData{}, internal.NewInternalError("failed to list users", err)
	}

	return FromDataModelSlice(users), pagination.BuildPageData(w, count, len(users)), nil
}

// Update mutates a user profile. Self or superadmin; role changes are
// superadmin only.
func (s *Service) Update(identity *auth.Identity, id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !accesspolicy.CanManageUser(identity, id) {
		s.logger.Warn("user update denied", "target_id", id, "user_id", identity.UserID)
		return nil, internal.ErrUserUpdateDenied
	}

	if dto.Name != nil {
		u.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Email != nil {
		email := strings.TrimSpace(*dto.Email)
		if email != u.Email {
			taken, err := s.repo.EmailTaken(email)
			if err != nil {
				return nil, internal.NewInternalError("failed to check email", err)
			}
			if taken {
				return nil, errors.New("email must be unique")
			}
		}
		u.Email = email
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		u.PasswordHash = hash
	}
	if dto.RoleID != nil && *dto.RoleID != u.RoleID {
		if !accesspolicy.RankOf(identity.RoleID).IsSuperadmin() {
			return nil, internal.ErrUserUpdateDenied
		}
		u.RoleID = *dto.RoleID
	}

	if err := s.repo.Update(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("email must be unique")
		}
		return nil, internal.NewInternalError("failed to update user", err)
	}

	s.logger.Info("user updated", "target_id", id, "updated_by", identity.UserID)

	return FromDataModel(u), nil
}

// Delete removes a user account. Self or superadmin.
func (s *Service) Delete(identity *auth.Identity, id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if !accesspolicy.CanManageUser(identity, id) {
		s.logger.Warn("user delete denied", "target_id", id, "user_id", identity.UserID)
		return internal.ErrUserDeleteDenied
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "target_id", id, "deleted_by", identity.UserID)

	return nil
}
