package accesspolicy

// Rank is the privilege order over roles. Lower ordinal means more
// privilege; the superadmin rank dominates every check. Roles created at
// runtime (id >= 5) are custom ranks and never dominate a seeded rank.
type Rank int64

const (
	RankSuperadmin Rank = 1
	RankAdmin      Rank = 2
	RankEditor     Rank = 3
	RankAuthor     Rank = 4
)

// firstCustomRoleID is where user-created roles start. Roles below this are
// seeded and protected from deletion.
const firstCustomRoleID int64 = 5

// RankOf maps a role id onto the privilege order.
func RankOf(roleID int64) Rank {
	return Rank(roleID)
}

// Dominates reports whether r is at least as privileged as other.
func (r Rank) Dominates(other Rank) bool {
	return r <= other
}

func (r Rank) IsSuperadmin() bool {
	return r == RankSuperadmin
}

func (r Rank) IsAdmin() bool {
	return r == RankAdmin
}

func (r Rank) IsCustom() bool {
	return int64(r) >= firstCustomRoleID
}

// IsProtectedRole reports whether a role id belongs to the seeded set that
// can never be deleted.
func IsProtectedRole(roleID int64) bool {
	return roleID < firstCustomRoleID
}
