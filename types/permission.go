package types

import "strconv"

// Permission is one of the basic permissions a Client API access key can be
// granted.
type Permission int

const (
	PermissionModifyURLs              Permission = 0
	PermissionModifyFiles             Permission = 1
	PermissionModifyTags              Permission = 2
	PermissionSearchAndFetchFiles     Permission = 3
	PermissionManagePages             Permission = 4
	PermissionManageCookiesAndHeaders Permission = 5
	PermissionManageDatabase          Permission = 6
	PermissionEditNotes               Permission = 7
	PermissionEditFileRelationships   Permission = 8
	PermissionEditFileRatings         Permission = 9
	PermissionManagePopups            Permission = 10
	PermissionEditFileTimes           Permission = 11
	PermissionCommitPending           Permission = 12
	PermissionSeeLocalPaths           Permission = 13
)

// AllPermissions returns every basic permission in ascending order. A new slice
// is returned on every call so callers are free to modify it.
func AllPermissions() []Permission {
	return []Permission{
		PermissionModifyURLs,
		PermissionModifyFiles,
		PermissionModifyTags,
		PermissionSearchAndFetchFiles,
		PermissionManagePages,
		PermissionManageCookiesAndHeaders,
		PermissionManageDatabase,
		PermissionEditNotes,
		PermissionEditFileRelationships,
		PermissionEditFileRatings,
		PermissionManagePopups,
		PermissionEditFileTimes,
		PermissionCommitPending,
		PermissionSeeLocalPaths,
	}
}

func (p Permission) Valid() bool {
	return p >= PermissionModifyURLs && p <= PermissionSeeLocalPaths
}

func (p Permission) String() string {
	switch p {
	case PermissionModifyURLs:
		return "modify urls"
	case PermissionModifyFiles:
		return "modify files"
	case PermissionModifyTags:
		return "modify tags"
	case PermissionSearchAndFetchFiles:
		return "search and fetch files"
	case PermissionManagePages:
		return "manage pages"
	case PermissionManageCookiesAndHeaders:
		return "manage cookies and headers"
	case PermissionManageDatabase:
		return "manage database"
	case PermissionEditNotes:
		return "edit notes"
	case PermissionEditFileRelationships:
		return "edit file relationships"
	case PermissionEditFileRatings:
		return "edit file ratings"
	case PermissionManagePopups:
		return "manage popups"
	case PermissionEditFileTimes:
		return "edit file times"
	case PermissionCommitPending:
		return "commit pending"
	case PermissionSeeLocalPaths:
		return "see local paths"
	}
	return "permission(" + strconv.Itoa(int(p)) + ")"
}
