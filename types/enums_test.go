package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPermissions(t *testing.T) {
	perms := AllPermissions()
	require.Len(t, perms, 14)
	for i, p := range perms {
		assert.Equal(t, Permission(i), p)
		assert.True(t, p.Valid())
		assert.NotContains(t, p.String(), "permission(")
	}

	perms[0] = PermissionSeeLocalPaths
	assert.Equal(t, PermissionModifyURLs, AllPermissions()[0])

	assert.False(t, Permission(14).Valid())
	assert.Equal(t, "permission(14)", Permission(14).String())
}

func TestServiceType_Valid(t *testing.T) {
	assert.True(t, ServiceTypeAllMyFiles.Valid())
	assert.True(t, ServiceTypeServerAdministration.Valid())
	assert.False(t, ServiceType(3).Valid())
	assert.False(t, ServiceType(16).Valid())
	assert.Equal(t, "all known files", ServiceTypeAllKnownFiles.String())
}

func TestEnums_Invalid(t *testing.T) {
	type testData struct {
		name  string
		valid bool
		str   string
	}

	testCases := []testData{
		{"timestamp", TimestampType(2).Valid(), TimestampType(2).String()},
		{"canvas", CanvasType(2).Valid(), CanvasType(2).String()},
		{"potentialsSearch", PotentialsSearchType(3).Valid(), PotentialsSearchType(3).String()},
		{"pixelDuplicates", PixelDuplicates(3).Valid(), PixelDuplicates(3).String()},
		{"dupPairSort", DupPairSortType(3).Valid(), DupPairSortType(3).String()},
		{"addFileStatus", AddFileStatus(5).Valid(), AddFileStatus(5).String()},
		{"urlType", URLType(1).Valid(), URLType(1).String()},
		{"pageType", PageType(4).Valid(), PageType(4).String()},
		{"pageState", PageState(4).Valid(), PageState(4).String()},
		{"relationship", DuplicateRelationship(5).Valid(), DuplicateRelationship(5).String()},
		{"tagAction", TagAction(6).Valid(), TagAction(6).String()},
		{"noteConflict", NoteConflictResolution(4).Valid(), NoteConflictResolution(4).String()},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			assert.False(t, td.valid)
			assert.Contains(t, td.str, "(")
		})
	}
}

func TestAddFileStatus_Imported(t *testing.T) {
	assert.True(t, AddFileSuccess.Imported())
	assert.True(t, AddFileAlreadyInDB.Imported())
	assert.False(t, AddFilePreviouslyDeleted.Imported())
	assert.False(t, AddFileFailed.Imported())
	assert.False(t, AddFileVetoed.Imported())
}

func TestTagAction_MapKey(t *testing.T) {
	in := map[TagAction][]string{
		TagActionAdd:      {"samus aran"},
		TagActionPetition: {"lara croft"},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"0":["samus aran"],"4":["lara croft"]}`, string(b))

	var out map[TagAction][]string
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
