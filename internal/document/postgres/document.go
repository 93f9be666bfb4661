package postgres

import (
	"strings"

	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal"
	"github.com/docmanpro/docman/internal/accesspolicy"
	"github.com/docmanpro/docman/internal/auth"
	documentDatamodel "github.com/docmanpro/docman/internal/core/datamodel/document"
	"github.com/docmanpro/docman/internal/document"
)

// DocumentRepository implements document.RepositoryAPI using GORM.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) document.RepositoryAPI {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(doc *documentDatamodel.Document) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepository) GetByID(id int64) (*documentDatamodel.Document, error) {
	var doc documentDatamodel.Document
	err := r.db.Preload("User").Where("id = ?", id).First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// ListVisible returns one page of documents the identity may read, most
// recent first, together with the total count of visible rows. A non-empty
// query narrows the page to case-insensitive title matches; the match is
// ANDed with the visibility predicate so search can never widen what the
// caller sees.
func (r *DocumentRepository) ListVisible(identity *auth.Identity, query string, limit, offset int) ([]*documentDatamodel.Document, int64, error) {
	scoped := r.db.Model(&documentDatamodel.Document{}).
		Scopes(accesspolicy.VisibilityScope(identity))

	if query != "" {
		scoped = scoped.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var count int64
	if err := scoped.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var docs []*documentDatamodel.Document
	err := scoped.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, count, nil
}

// ListByOwner returns one page of ownerID's documents that the identity may
// read, with the same ordering as ListVisible.
func (r *DocumentRepository) ListByOwner(identity *auth.Identity, ownerID int64, limit, offset int) ([]*documentDatamodel.Document, int64, error) {
	scoped := r.db.Model(&documentDatamodel.Document{}).
		Scopes(accesspolicy.VisibilityScope(identity)).
		Where("user_id = ?", ownerID)

	var count int64
	if err := scoped.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var docs []*documentDatamodel.Document
	err := scoped.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, count, nil
}

// TitleTaken reports whether another document already holds the title.
// Title uniqueness is global, independent of access level.
func (r *DocumentRepository) TitleTaken(title string, excludeID int64) (bool, error) {
	var count int64
	scoped := r.db.Model(&documentDatamodel.Document{}).Where("title = ?", title)
	if excludeID > 0 {
		scoped = scoped.Where("id <> ?", excludeID)
	}
	if err := scoped.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DocumentRepository) Update(doc *documentDatamodel.Document) error {
	return r.db.Omit("User").Save(doc).Error
}

func (r *DocumentRepository) Delete(id int64) error {
	return r.db.Delete(&documentDatamodel.Document{}, id).Error
}
