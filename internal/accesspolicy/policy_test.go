package accesspolicy_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docmanpro/docman/internal/accesspolicy"
	"github.com/docmanpro/docman/internal/auth"
	documentDatamodel "github.com/docmanpro/docman/internal/core/datamodel/document"
)

func TestAccessPolicy(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AccessPolicy Suite")
}

var _ = Describe("CanView", func() {
	owner := &auth.Identity{UserID: 10, RoleID: 3}
	sameRole := &auth.Identity{UserID: 11, RoleID: 3}
	otherRole := &auth.Identity{UserID: 12, RoleID: 4}
	superadmin := &auth.Identity{UserID: 1, RoleID: 1}

	It("should show public documents to everyone", func() {
		doc := &documentDatamodel.Document{Access: accesspolicy.AccessPublic, UserID: 10, OwnerRoleID: 3}
		Expect(accesspolicy.CanView(otherRole, doc)).To(BeTrue())
	})

	It("should always show owners their own documents", func() {
		doc := &documentDatamodel.Document{Access: accesspolicy.AccessPrivate, UserID: 10, OwnerRoleID: 3}
		Expect(accesspolicy.CanView(owner, doc)).To(BeTrue())
	})

	It("should hide private documents from everyone but the owner", func() {
		doc := &documentDatamodel.Document{Access: accesspolicy.AccessPrivate, UserID: 10, OwnerRoleID: 3}
		Expect(accesspolicy.CanView(sameRole, doc)).To(BeFalse())
		Expect(accesspolicy.CanView(otherRole, doc)).To(BeFalse())
	})

	It("should show role documents to identities sharing the owner's role snapshot", func() {
		doc := &documentDatamodel.Document{Access: accesspolicy.AccessRole, UserID: 10, OwnerRoleID: 3}
		Expect(accesspolicy.CanView(sameRole, doc)).To(BeTrue())
		Expect(accesspolicy.CanView(otherRole, doc)).To(BeFalse())
	})

	It("should give superadmins no extra visibility", func() {
		doc := &documentDatamodel.Document{Access: accesspolicy.AccessPrivate, UserID: 10, OwnerRoleID: 3}
		Expect(accesspolicy.CanView(superadmin, doc)).To(BeFalse())

		roleDoc := &documentDatamodel.Document{Access: accesspolicy.AccessRole, UserID: 10, OwnerRoleID: 3}
		Expect(accesspolicy.CanView(superadmin, roleDoc)).To(BeFalse())
	})
})

var _ = Describe("CanModify", func() {
	It("should allow the owner", func() {
		doc := &documentDatamodel.Document{UserID: 10}
		Expect(accesspolicy.CanModify(&auth.Identity{UserID: 10, RoleID: 4}, doc)).To(BeTrue())
	})

	It("should allow a superadmin who does not own the document", func() {
		doc := &documentDatamodel.Document{UserID: 10}
		Expect(accesspolicy.CanModify(&auth.Identity{UserID: 1, RoleID: 1}, doc)).To(BeTrue())
	})

	It("should deny everyone else, admins included", func() {
		doc := &documentDatamodel.Document{UserID: 10}
		Expect(accesspolicy.CanModify(&auth.Identity{UserID: 2, RoleID: 2}, doc)).To(BeFalse())
		Expect(accesspolicy.CanModify(&auth.Identity{UserID: 11, RoleID: 4}, doc)).To(BeFalse())
	})
})

var _ = Describe("Role gates", func() {
	It("should restrict role management to superadmins", func() {
		Expect(accesspolicy.CanManageRoles(&auth.Identity{UserID: 1, RoleID: 1})).To(BeTrue())
		Expect(accesspolicy.CanManageRoles(&auth.Identity{UserID: 2, RoleID: 2})).To(BeFalse())
		Expect(accesspolicy.CanManageRoles(&auth.Identity{UserID: 3, RoleID: 7})).To(BeFalse())
	})

	It("should let admins and superadmins list users", func() {
		Expect(accesspolicy.CanListUsers(&auth.Identity{UserID: 1, RoleID: 1})).To(BeTrue())
		Expect(accesspolicy.CanListUsers(&auth.Identity{UserID: 2, RoleID: 2})).To(BeTrue())
		Expect(accesspolicy.CanListUsers(&auth.Identity{UserID: 3, RoleID: 3})).To(BeFalse())
	})

	It("should let an account manage itself and superadmins manage anyone", func() {
		Expect(accesspolicy.CanManageUser(&auth.Identity{UserID: 5, RoleID: 4}, 5)).To(BeTrue())
		Expect(accesspolicy.CanManageUser(&auth.Identity{UserID: 1, RoleID: 1}, 5)).To(BeTrue())
		Expect(accesspolicy.CanManageUser(&auth.Identity{UserID: 6, RoleID: 2}, 5)).To(BeFalse())
	})
})

var _ = Describe("Rank", func() {
	It("should order seeded ranks by privilege", func() {
		Expect(accesspolicy.RankSuperadmin.Dominates(accesspolicy.RankAdmin)).To(BeTrue())
		Expect(accesspolicy.RankAdmin.Dominates(accesspolicy.RankEditor)).To(BeTrue())
		Expect(accesspolicy.RankAuthor.Dominates(accesspolicy.RankAdmin)).To(BeFalse())
	})

	It("should classify runtime-created roles as custom", func() {
		Expect(accesspolicy.RankOf(5).IsCustom()).To(BeTrue())
		Expect(accesspolicy.RankOf(4).IsCustom()).To(BeFalse())
	})

	It("should protect the seeded roles from deletion", func() {
		for id := int64(1); id < 5; id++ {
			Expect(accesspolicy.IsProtectedRole(id)).To(BeTrue())
		}
		Expect(accesspolicy.IsProtectedRole(5)).To(BeFalse())
		Expect(accesspolicy.IsProtectedRole(99)).To(BeFalse())
	})

	It("should accept only the three access levels", func() {
		Expect(accesspolicy.ValidAccess("public")).To(BeTrue())
		Expect(accesspolicy.ValidAccess("private")).To(BeTrue())
		Expect(accesspolicy.ValidAccess("role")).To(BeTrue())
		Expect(accesspolicy.ValidAccess("secret")).To(BeFalse())
		Expect(accesspolicy.ValidAccess("")).To(BeFalse())
	})
})
