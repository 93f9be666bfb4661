package document

import (
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal"
	"github.com/docmanpro/docman/internal/accesspolicy"
	"github.com/docmanpro/docman/internal/auth"
	documentDatamodel "github.com/docmanpro/docman/internal/core/datamodel/document"
	"github.com/docmanpro/docman/internal/pagination"
)

// RepositoryAPI defines the data access methods for documents.
type RepositoryAPI interface {
	Create(doc *documentDatamodel.Document) error
	GetByID(id int64) (*documentDatamodel.Document, error)
	ListVisible(identity *auth.Identity, query string, limit, offset int) ([]*documentDatamodel.Document, int64, error)
	ListByOwner(identity *auth.Identity, ownerID int64, limit, offset int) ([]*documentDatamodel.Document, int64, error)
	TitleTaken(title string, excludeID int64) (bool, error)
	Update(doc *documentDatamodel.Document) error
	Delete(id int64) error
}

// UserFinder is the slice of the user store this service needs to answer
// 404 for per-user document listings.
type UserFinder interface {
	Exists(userID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	users  UserFinder
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, users UserFinder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

// Create persists a new document owned by the caller. The owner's role id
// is snapshotted onto the document and never updated afterwards.
func (s *Service) Create(identity *auth.Identity, dto CreateDocumentDTO) (*Document, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("document validation failed", "error", err, "user_id", identity.UserID)
		return nil, err
	}

	taken, err := s.repo.TitleTaken(dto.Title, 0)
	if err != nil {
		return nil, internal.NewInternalError("failed to check document title", err)
	}
	if taken {
		return nil, internal.ErrTitleExists
	}

	doc := &documentDatamodel.Document{
		Title:       dto.Title,
		Content:     dto.Content,
		Access:      dto.Access,
		UserID:      identity.UserID,
		OwnerRoleID: identity.RoleID,
	}

	if err := s.repo.Create(doc); err != nil {
		// The unique index closes the race between the title check and the
		// insert; a concurrent duplicate surfaces here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrTitleExists
		}
		return nil, internal.NewInternalError("failed to create document", err)
	}

	s.logger.Info("document created",
		"document_id", doc.ID,
		"user_id", identity.UserID,
		"access", doc.Access)

	return FromDataModel(doc), nil
}

// Get retrieves a single document. Existence is checked before permission
// so an absent document answers 404 even for a caller who could never have
// viewed it.
func (s *Service) Get(identity *auth.Identity, id int64) (*Document, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !accesspolicy.CanView(identity, doc) {
		s.logger.Warn("document access denied",
			"document_id", id,
			"user_id", identity.UserID,
			"owner_id", doc.UserID)
		return nil, internal.ErrDocumentAccess
	}

	return FromDataModel(doc), nil
}

// List returns the page of documents visible to the caller.
func (s *Service) List(identity *auth.Identity, w pagination.Window) ([]*Document, pagination.PageData, error) {
	docs, count, err := s.repo.ListVisible(identity, strings.TrimSpace(w.Query), w.Limit, w.Offset)
	if err != nil {
		return nil, pagination.PageData{}, internal.NewInternalError("failed to list documents", err)
	}

	return FromDataModelSlice(docs), pagination.BuildPageData(w, count, len(docs)), nil
}

// ListForUser returns the page of documents owned by ownerID that the
// caller may see.
func (s *Service) ListForUser(identity *auth.Identity, ownerID int64, w pagination.Window) ([]*Document, pagination.PageData, error) {
	exists, err := s.users.Exists(ownerID)
	if err != nil {
		return nil, pagination.PageData{}, internal.NewInternalError("failed to look up user", err)
	}
	if !exists {
		return nil, pagination.PageData{}, internal.ErrUserNotFound
	}

	docs, count, err := s.repo.ListByOwner(identity, ownerID, w.Limit, w.Offset)
	if err != nil {
		return nil, pagination.PageData{}, internal.NewInternalError("failed to list user documents", err)
	}

	return FromDataModelSlice(docs), pagination.BuildPageData(w, count, len(docs)), nil
}

// Update mutates a document's title, content or access level. Only the
// owner or a superadmin may update; the title-uniqueness check runs even
// for authorized callers.
func (s *Service) Update(identity *auth.Identity, id int64, dto UpdateDocumentDTO) (*Document, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !accesspolicy.CanModify(identity, doc) {
		s.logger.Warn("document edit denied",
			"document_id", id,
			"user_id", identity.UserID,
			"owner_id", doc.UserID)
		return nil, internal.ErrDocumentEdit
	}

	if dto.Title != nil && *dto.Title != doc.Title {
		taken, err := s.repo.TitleTaken(*dto.Title, doc.ID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check document title", err)
		}
		if taken {
			return nil, internal.ErrTitleExists
		}
		doc.Title = *dto.Title
	}
	if dto.Content != nil {
		doc.Content = *dto.Content
	}
	if dto.Access != nil {
		doc.Access = *dto.Access
	}

	if err := s.repo.Update(doc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, internal.ErrTitleExists
		}
		return nil, internal.NewInternalError("failed to update document", err)
	}

	s.logger.Info("document updated", "document_id", doc.ID, "user_id", identity.UserID)

	return FromDataModel(doc), nil
}

// Delete removes a document. Only the owner or a superadmin may delete.
func (s *Service) Delete(identity *auth.Identity, id int64) error {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if !accesspolicy.CanModify(identity, doc) {
		s.logger.Warn("document delete denied",
			"document_id", id,
			"user_id", identity.UserID,
			"owner_id", doc.UserID)
		return internal.ErrDocumentDelete
	}

	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete document", err)
	}

	s.logger.Info("document deleted", "document_id", id, "user_id", identity.UserID)

	return nil
}
