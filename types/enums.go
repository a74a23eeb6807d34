package types

import "strconv"

// ServiceType identifies the kind of a Hydrus service.
type ServiceType int

const (
	ServiceTypeTagRepository        ServiceType = 0
	ServiceTypeFileRepository       ServiceType = 1
	ServiceTypeLocalFileDomain      ServiceType = 2
	ServiceTypeLocalTagDomain       ServiceType = 5
	ServiceTypeRatingNumerical      ServiceType = 6
	ServiceTypeRatingBoolean        ServiceType = 7
	ServiceTypeAllKnownTags         ServiceType = 10
	ServiceTypeAllKnownFiles        ServiceType = 11
	ServiceTypeLocalBooru           ServiceType = 12
	ServiceTypeIPFS                 ServiceType = 13
	ServiceTypeTrash                ServiceType = 14
	ServiceTypeAllLocalFiles        ServiceType = 15
	ServiceTypeFileNotes            ServiceType = 17
	ServiceTypeClientAPI            ServiceType = 18
	ServiceTypeDeletedFromAnywhere  ServiceType = 19
	ServiceTypeLocalUpdates         ServiceType = 20
	ServiceTypeAllMyFiles           ServiceType = 21
	ServiceTypeRatingIncDec         ServiceType = 22
	ServiceTypeServerAdministration ServiceType = 99
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeTagRepository, ServiceTypeFileRepository, ServiceTypeLocalFileDomain,
		ServiceTypeLocalTagDomain, ServiceTypeRatingNumerical, ServiceTypeRatingBoolean,
		ServiceTypeAllKnownTags, ServiceTypeAllKnownFiles, ServiceTypeLocalBooru,
		ServiceTypeIPFS, ServiceTypeTrash, ServiceTypeAllLocalFiles, ServiceTypeFileNotes,
		ServiceTypeClientAPI, ServiceTypeDeletedFromAnywhere, ServiceTypeLocalUpdates,
		ServiceTypeAllMyFiles, ServiceTypeRatingIncDec, ServiceTypeServerAdministration:
		return true
	}
	return false
}

func (t ServiceType) String() string {
	switch t {
	case ServiceTypeTagRepository:
		return "tag repository"
	case ServiceTypeFileRepository:
		return "file repository"
	case ServiceTypeLocalFileDomain:
		return "local file domain"
	case ServiceTypeLocalTagDomain:
		return "local tag domain"
	case ServiceTypeRatingNumerical:
		return "numerical rating service"
	case ServiceTypeRatingBoolean:
		return "like/dislike rating service"
	case ServiceTypeAllKnownTags:
		return "all known tags"
	case ServiceTypeAllKnownFiles:
		return "all known files"
	case ServiceTypeLocalBooru:
		return "local booru"
	case ServiceTypeIPFS:
		return "ipfs"
	case ServiceTypeTrash:
		return "trash"
	case ServiceTypeAllLocalFiles:
		return "all local files"
	case ServiceTypeFileNotes:
		return "file notes"
	case ServiceTypeClientAPI:
		return "client api"
	case ServiceTypeDeletedFromAnywhere:
		return "deleted from anywhere"
	case ServiceTypeLocalUpdates:
		return "local updates"
	case ServiceTypeAllMyFiles:
		return "all my files"
	case ServiceTypeRatingIncDec:
		return "inc/dec rating service"
	case ServiceTypeServerAdministration:
		return "server administration"
	}
	return "service type(" + strconv.Itoa(int(t)) + ")"
}

// TimestampType selects which of a file's timestamps /edit_times/set_time
// edits.
type TimestampType int

const (
	TimestampModifiedWebDomain TimestampType = 0
	TimestampModifiedDisk      TimestampType = 1
	TimestampImported          TimestampType = 3
	TimestampDeleted           TimestampType = 4
	TimestampArchived          TimestampType = 5
	TimestampLastViewed        TimestampType = 6
	TimestampOriginalImport    TimestampType = 7
)

func (t TimestampType) Valid() bool {
	switch t {
	case TimestampModifiedWebDomain, TimestampModifiedDisk, TimestampImported,
		TimestampDeleted, TimestampArchived, TimestampLastViewed, TimestampOriginalImport:
		return true
	}
	return false
}

func (t TimestampType) String() string {
	switch t {
	case TimestampModifiedWebDomain:
		return "modified time (web domain)"
	case TimestampModifiedDisk:
		return "modified time (disk)"
	case TimestampImported:
		return "import time"
	case TimestampDeleted:
		return "delete time"
	case TimestampArchived:
		return "archived time"
	case TimestampLastViewed:
		return "last viewed time"
	case TimestampOriginalImport:
		return "original import time"
	}
	return "timestamp type(" + strconv.Itoa(int(t)) + ")"
}

// CanvasType is where a file was viewed.
type CanvasType int

const (
	CanvasMediaViewer   CanvasType = 0
	CanvasPreviewViewer CanvasType = 1
	CanvasAPIViewer     CanvasType = 4
)

func (t CanvasType) Valid() bool {
	switch t {
	case CanvasMediaViewer, CanvasPreviewViewer, CanvasAPIViewer:
		return true
	}
	return false
}

func (t CanvasType) String() string {
	switch t {
	case CanvasMediaViewer:
		return "media viewer"
	case CanvasPreviewViewer:
		return "preview viewer"
	case CanvasAPIViewer:
		return "client api viewer"
	}
	return "canvas type(" + strconv.Itoa(int(t)) + ")"
}

type PotentialsSearchType int

const (
	PotentialsOneFileMatchesSearchOne       PotentialsSearchType = 0
	PotentialsBothFilesMatchSearchOne       PotentialsSearchType = 1
	PotentialsEachFileMatchesSeparateSearch PotentialsSearchType = 2
)

func (t PotentialsSearchType) Valid() bool {
	return t >= PotentialsOneFileMatchesSearchOne && t <= PotentialsEachFileMatchesSeparateSearch
}

func (t PotentialsSearchType) String() string {
	switch t {
	case PotentialsOneFileMatchesSearchOne:
		return "one file matches search 1"
	case PotentialsBothFilesMatchSearchOne:
		return "both files match search 1"
	case PotentialsEachFileMatchesSeparateSearch:
		return "one file matches search 1, the other 2"
	}
	return "potentials search type(" + strconv.Itoa(int(t)) + ")"
}

type PixelDuplicates int

const (
	PixelDuplicatesRequired PixelDuplicates = 0
	PixelDuplicatesAllowed  PixelDuplicates = 1
	PixelDuplicatesExcluded PixelDuplicates = 2
)

func (p PixelDuplicates) Valid() bool {
	return p >= PixelDuplicatesRequired && p <= PixelDuplicatesExcluded
}

func (p PixelDuplicates) String() string {
	switch p {
	case PixelDuplicatesRequired:
		return "must be pixel duplicates"
	case PixelDuplicatesAllowed:
		return "can be pixel duplicates"
	case PixelDuplicatesExcluded:
		return "must not be pixel duplicates"
	}
	return "pixel duplicates(" + strconv.Itoa(int(p)) + ")"
}

type DupPairSortType int

const (
	DupPairSortLargerFileSize  DupPairSortType = 0
	DupPairSortSimilarity      DupPairSortType = 1
	DupPairSortSmallerFileSize DupPairSortType = 2
	DupPairSortRandom          DupPairSortType = 4
)

func (t DupPairSortType) Valid() bool {
	switch t {
	case DupPairSortLargerFileSize, DupPairSortSimilarity, DupPairSortSmallerFileSize, DupPairSortRandom:
		return true
	}
	return false
}

func (t DupPairSortType) String() string {
	switch t {
	case DupPairSortLargerFileSize:
		return "filesize of larger file"
	case DupPairSortSimilarity:
		return "similarity"
	case DupPairSortSmallerFileSize:
		return "filesize of smaller file"
	case DupPairSortRandom:
		return "random"
	}
	return "duplicate pair sort type(" + strconv.Itoa(int(t)) + ")"
}

// AddFileStatus is the outcome of importing a single file.
type AddFileStatus int

const (
	AddFileSuccess           AddFileStatus = 1
	AddFileAlreadyInDB       AddFileStatus = 2
	AddFilePreviouslyDeleted AddFileStatus = 3
	AddFileFailed            AddFileStatus = 4
	AddFileVetoed            AddFileStatus = 7
)

func (s AddFileStatus) Valid() bool {
	switch s {
	case AddFileSuccess, AddFileAlreadyInDB, AddFilePreviouslyDeleted, AddFileFailed, AddFileVetoed:
		return true
	}
	return false
}

// Imported reports whether the file is now in the database, either because it
// was just imported or because it already was.
func (s AddFileStatus) Imported() bool {
	return s == AddFileSuccess || s == AddFileAlreadyInDB
}

func (s AddFileStatus) String() string {
	switch s {
	case AddFileSuccess:
		return "successfully imported"
	case AddFileAlreadyInDB:
		return "already in database"
	case AddFilePreviouslyDeleted:
		return "previously deleted"
	case AddFileFailed:
		return "failed to import"
	case AddFileVetoed:
		return "vetoed"
	}
	return "add file status(" + strconv.Itoa(int(s)) + ")"
}

type URLType int

const (
	URLTypePost      URLType = 0
	URLTypeFile      URLType = 2
	URLTypeGallery   URLType = 3
	URLTypeWatchable URLType = 4
	URLTypeUnknown   URLType = 5
)

func (t URLType) Valid() bool {
	switch t {
	case URLTypePost, URLTypeFile, URLTypeGallery, URLTypeWatchable, URLTypeUnknown:
		return true
	}
	return false
}

func (t URLType) String() string {
	switch t {
	case URLTypePost:
		return "post url"
	case URLTypeFile:
		return "file url"
	case URLTypeGallery:
		return "gallery url"
	case URLTypeWatchable:
		return "watchable url"
	case URLTypeUnknown:
		return "unknown url"
	}
	return "url type(" + strconv.Itoa(int(t)) + ")"
}

type PageType int

const (
	PageGalleryDownloader PageType = 1
	PageSimpleDownloader  PageType = 2
	PageHardDriveImport   PageType = 3
	PagePetitions         PageType = 5
	PageFileSearch        PageType = 6
	PageURLDownloader     PageType = 7
	PageDuplicates        PageType = 8
	PageThreadWatcher     PageType = 9
	PagePageOfPages       PageType = 10
)

func (t PageType) Valid() bool {
	switch t {
	case PageGalleryDownloader, PageSimpleDownloader, PageHardDriveImport, PagePetitions,
		PageFileSearch, PageURLDownloader, PageDuplicates, PageThreadWatcher, PagePageOfPages:
		return true
	}
	return false
}

func (t PageType) String() string {
	switch t {
	case PageGalleryDownloader:
		return "gallery downloader"
	case PageSimpleDownloader:
		return "simple downloader"
	case PageHardDriveImport:
		return "hard drive import"
	case PagePetitions:
		return "petitions"
	case PageFileSearch:
		return "file search"
	case PageURLDownloader:
		return "url downloader"
	case PageDuplicates:
		return "duplicates"
	case PageThreadWatcher:
		return "thread watcher"
	case PagePageOfPages:
		return "page of pages"
	}
	return "page type(" + strconv.Itoa(int(t)) + ")"
}

type PageState int

const (
	PageStateReady           PageState = 0
	PageStateInitialising    PageState = 1
	PageStateSearching       PageState = 2
	PageStateSearchCancelled PageState = 3
)

func (s PageState) Valid() bool {
	return s >= PageStateReady && s <= PageStateSearchCancelled
}

func (s PageState) String() string {
	switch s {
	case PageStateReady:
		return "ready"
	case PageStateInitialising:
		return "initialising"
	case PageStateSearching:
		return "searching"
	case PageStateSearchCancelled:
		return "search cancelled"
	}
	return "page state(" + strconv.Itoa(int(s)) + ")"
}

// DuplicateRelationship is the relationship set between two files by
// /manage_file_relationships/set_file_relationships.
type DuplicateRelationship int

const (
	RelationshipPotentialDuplicates DuplicateRelationship = 0
	RelationshipFalsePositive       DuplicateRelationship = 1
	RelationshipSameQuality         DuplicateRelationship = 2
	RelationshipAlternates          DuplicateRelationship = 3
	RelationshipABetter             DuplicateRelationship = 4
	RelationshipBBetter             DuplicateRelationship = 7
)

func (r DuplicateRelationship) Valid() bool {
	switch r {
	case RelationshipPotentialDuplicates, RelationshipFalsePositive, RelationshipSameQuality,
		RelationshipAlternates, RelationshipABetter, RelationshipBBetter:
		return true
	}
	return false
}

func (r DuplicateRelationship) String() string {
	switch r {
	case RelationshipPotentialDuplicates:
		return "potential duplicates"
	case RelationshipFalsePositive:
		return "false positive"
	case RelationshipSameQuality:
		return "same quality"
	case RelationshipAlternates:
		return "alternates"
	case RelationshipABetter:
		return "A is better"
	case RelationshipBBetter:
		return "B is better"
	}
	return "relationship(" + strconv.Itoa(int(r)) + ")"
}

// TagAction is an action key of service_keys_to_actions_to_tags.
type TagAction int

const (
	TagActionAdd             TagAction = 0
	TagActionDelete          TagAction = 1
	TagActionPend            TagAction = 2
	TagActionRescindPend     TagAction = 3
	TagActionPetition        TagAction = 4
	TagActionRescindPetition TagAction = 5
)

func (a TagAction) Valid() bool {
	return a >= TagActionAdd && a <= TagActionRescindPetition
}

func (a TagAction) String() string {
	switch a {
	case TagActionAdd:
		return "add"
	case TagActionDelete:
		return "delete"
	case TagActionPend:
		return "pend"
	case TagActionRescindPend:
		return "rescind pend"
	case TagActionPetition:
		return "petition"
	case TagActionRescindPetition:
		return "rescind petition"
	}
	return "tag action(" + strconv.Itoa(int(a)) + ")"
}

// MarshalText lets TagAction be used as a JSON object key.
func (a TagAction) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(a))), nil
}

func (a *TagAction) UnmarshalText(data []byte) error {
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*a = TagAction(v)
	return nil
}

type NoteConflictResolution int

const (
	NoteConflictReplace NoteConflictResolution = 0
	NoteConflictIgnore  NoteConflictResolution = 1
	NoteConflictAppend  NoteConflictResolution = 2
	NoteConflictRename  NoteConflictResolution = 3
)

func (r NoteConflictResolution) Valid() bool {
	return r >= NoteConflictReplace && r <= NoteConflictRename
}

func (r NoteConflictResolution) String() string {
	switch r {
	case NoteConflictReplace:
		return "replace"
	case NoteConflictIgnore:
		return "ignore"
	case NoteConflictAppend:
		return "append"
	case NoteConflictRename:
		return "rename"
	}
	return "note conflict resolution(" + strconv.Itoa(int(r)) + ")"
}
