// Package accesspolicy is the single authority for document visibility and
// mutation decisions. Handlers and services never compare role ids directly;
// they ask this package.
package accesspolicy

import (
	"gorm.io/gorm"

	"github.com/docmanpro/docman/internal/auth"
	documentDatamodel "github.com/docmanpro/docman/internal/core/datamodel/document"
)

// Access levels a document can carry.
const (
	AccessPublic  = "public"
	AccessPrivate = "private"
	AccessRole    = "role"
)

// ValidAccess reports whether the given access level is one of the three
// the API understands.
func ValidAccess(access string) bool {
	return access == AccessPublic || access == AccessPrivate || access == AccessRole
}

// CanView is the visibility predicate for a single document: public
// documents are visible to everyone, owners always see their own documents,
// and role-scoped documents are visible to identities whose role matches the
// owner's role snapshot. Superadmins get no extra visibility here; the
// predicate applies uniformly.
func CanView(identity *auth.Identity, doc *documentDatamodel.Document) bool {
	if doc.Access == AccessPublic {
		return true
	}
	if doc.UserID == identity.UserID {
		return true
	}
	return doc.Access == AccessRole && doc.OwnerRoleID == identity.RoleID
}

// CanModify decides update and delete rights: the owner or a superadmin.
func CanModify(identity *auth.Identity, doc *documentDatamodel.Document) bool {
	if doc.UserID == identity.UserID {
		return true
	}
	return RankOf(identity.RoleID).IsSuperadmin()
}

// CanManageRoles gates role listing, creation and deletion.
func CanManageRoles(identity *auth.Identity) bool {
	return RankOf(identity.RoleID).IsSuperadmin()
}

// CanListUsers gates the administrative user listing.
func CanListUsers(identity *auth.Identity) bool {
	rank := RankOf(identity.RoleID)
	return rank.IsSuperadmin() || rank.IsAdmin()
}

// CanManageUser decides whether identity may update or delete the given
// user account: the account owner or a superadmin.
func CanManageUser(identity *auth.Identity, userID int64) bool {
	if identity.UserID == userID {
		return true
	}
	return RankOf(identity.RoleID).IsSuperadmin()
}

// VisibilityScope renders the CanView predicate as a query filter so list
// and search endpoints return exactly the documents the identity may read.
func VisibilityScope(identity *auth.Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"access = ? OR user_id = ? OR (access = ? AND owner_role_id = ?)",
			AccessPublic, identity.UserID, AccessRole, identity.RoleID,
		)
	}
}
