package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// GetFilesService wraps the /get_files endpoints.
type GetFilesService service

// SearchFilesOptions describes a file search. Tags may contain nested string
// slices, which are OR predicates:
//
//	Tags: []any{"skirt", []string{"samus aran", "lara croft"}, "system:height > 1000"}
type SearchFilesOptions struct {
	Tags []any `json:"tags" validate:"required"`
	FileDomain
	TagServiceKey string `json:"tag_service_key,omitempty"`

	// IncludeCurrentTags and IncludePendingTags default to true on the Hydrus
	// side.
	IncludeCurrentTags *bool `json:"include_current_tags,omitempty"`
	IncludePendingTags *bool `json:"include_pending_tags,omitempty"`

	FileSortType *int  `json:"file_sort_type,omitempty"`
	FileSortAsc  *bool `json:"file_sort_asc,omitempty"`

	// ReturnFileIDs defaults to true and ReturnHashes to false on the Hydrus
	// side.
	ReturnFileIDs *bool `json:"return_file_ids,omitempty"`
	ReturnHashes  bool  `json:"return_hashes,omitempty"`
}

type SearchFilesResponse struct {
	APIVersionResponse
	FileIDs []int64  `json:"file_ids,omitempty"`
	Hashes  []string `json:"hashes,omitempty"`
}

type FileHashesOptions struct {
	Hash   string   `json:"hash,omitempty"`
	Hashes []string `json:"hashes,omitempty"`

	// SourceHashType defaults to sha256.
	SourceHashType  string `json:"source_hash_type,omitempty" validate:"omitempty,oneof=sha256 md5 sha1 sha512"`
	DesiredHashType string `json:"desired_hash_type" validate:"required,oneof=sha256 md5 sha1 sha512"`
}

type FileHashesResponse struct {
	APIVersionResponse

	// Hashes maps each known source hash to the desired hash.
	Hashes map[string]string `json:"hashes"`
}

type FileMetadataOptions struct {
	FileSelector
	CreateNewFileIDs           bool `json:"create_new_file_ids,omitempty"`
	OnlyReturnIdentifiers      bool `json:"only_return_identifiers,omitempty"`
	OnlyReturnBasicInformation bool `json:"only_return_basic_information,omitempty"`
	DetailedURLInformation     bool `json:"detailed_url_information,omitempty"`
	IncludeBlurhash            bool `json:"include_blurhash,omitempty"`
	IncludeMilliseconds        bool `json:"include_milliseconds,omitempty"`
	IncludeNotes               bool `json:"include_notes,omitempty"`

	// IncludeServicesObject defaults to true on the Hydrus side.
	IncludeServicesObject *bool `json:"include_services_object,omitempty"`
}

type FileViewingStatistics struct {
	CanvasType          types.CanvasType `json:"canvas_type"`
	CanvasTypePretty    string           `json:"canvas_type_pretty"`
	Views               int              `json:"views"`
	Viewtime            float64          `json:"viewtime"`
	LastViewedTimestamp *float64         `json:"last_viewed_timestamp"`
}

// FileTags are the tags of a file on one tag service, keyed by status: "0"
// current, "1" pending, "2" deleted and "3" petitioned.
type FileTags struct {
	StorageTags map[string][]string `json:"storage_tags"`
	DisplayTags map[string][]string `json:"display_tags"`
}

type FileServiceTimes struct {
	TimeImported *float64 `json:"time_imported"`
	TimeDeleted  *float64 `json:"time_deleted,omitempty"`
}

type FileServices struct {
	Current map[string]FileServiceTimes `json:"current"`
	Deleted map[string]FileServiceTimes `json:"deleted"`
}

// FileMetadata describes one file. Which fields are present depends on the
// options of the request.
type FileMetadata struct {
	FileID         *int64   `json:"file_id"`
	Hash           string   `json:"hash"`
	Size           int64    `json:"size,omitempty"`
	Mime           string   `json:"mime,omitempty"`
	FiletypeForced bool     `json:"filetype_forced,omitempty"`
	OriginalMime   string   `json:"original_mime,omitempty"`
	FiletypeHuman  string   `json:"filetype_human,omitempty"`
	Ext            string   `json:"ext,omitempty"`
	Width          int      `json:"width,omitempty"`
	Height         int      `json:"height,omitempty"`
	ThumbWidth     int      `json:"thumbnail_width,omitempty"`
	ThumbHeight    int      `json:"thumbnail_height,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	NumFrames      *int     `json:"num_frames,omitempty"`
	NumWords       *int     `json:"num_words,omitempty"`
	HasAudio       bool     `json:"has_audio,omitempty"`
	Blurhash       string   `json:"blurhash,omitempty"`
	PixelHash      string   `json:"pixel_hash,omitempty"`

	TimeModified        *float64           `json:"time_modified,omitempty"`
	TimeModifiedDetails map[string]float64 `json:"time_modified_details,omitempty"`
	FileServices        *FileServices      `json:"file_services,omitempty"`
	IPFSMultihashes     map[string]string  `json:"ipfs_multihashes,omitempty"`

	IsInbox                          bool `json:"is_inbox,omitempty"`
	IsLocal                          bool `json:"is_local,omitempty"`
	IsTrashed                        bool `json:"is_trashed,omitempty"`
	IsDeleted                        bool `json:"is_deleted,omitempty"`
	HasExif                          bool `json:"has_exif,omitempty"`
	HasHumanReadableEmbeddedMetadata bool `json:"has_human_readable_embedded_metadata,omitempty"`
	HasICCProfile                    bool `json:"has_icc_profile,omitempty"`
	HasTransparency                  bool `json:"has_transparency,omitempty"`

	KnownURLs             []string                `json:"known_urls,omitempty"`
	DetailedKnownURLs     []URLInfo               `json:"detailed_known_urls,omitempty"`
	Ratings               map[string]any          `json:"ratings,omitempty"`
	Tags                  map[string]FileTags     `json:"tags,omitempty"`
	Notes                 map[string]string       `json:"notes,omitempty"`
	FileViewingStatistics []FileViewingStatistics `json:"file_viewing_statistics,omitempty"`
}

type FileMetadataResponse struct {
	APIVersionResponse
	Services ServicesByKey  `json:"services,omitempty"`
	Metadata []FileMetadata `json:"metadata"`
}

type FileOptions struct {
	SingleFile

	// Download sets Content-Disposition to attachment.
	Download bool `json:"download,omitempty"`
}

type FilePathResponse struct {
	APIVersionResponse
	Path     string `json:"path"`
	Filetype string `json:"filetype"`
	Size     int64  `json:"size"`
}

type ThumbnailPathOptions struct {
	SingleFile
	IncludeThumbnailFiletype bool `json:"include_thumbnail_filetype,omitempty"`
}

type ThumbnailPathResponse struct {
	APIVersionResponse
	Path     string `json:"path"`
	Filetype string `json:"filetype,omitempty"`
}

type StorageLocation struct {
	Path        string   `json:"path"`
	IdealWeight int      `json:"ideal_weight"`
	MaxNumBytes *int64   `json:"max_num_bytes"`
	Prefixes    []string `json:"prefixes"`
}

type LocalFileStorageLocationsResponse struct {
	APIVersionResponse
	Locations []StorageLocation `json:"locations"`
}

// RenderOptions asks Hydrus to render a file to a common image format. Width
// and Height must be given together.
type RenderOptions struct {
	SingleFile
	Download bool `json:"download,omitempty"`

	// RenderFormat is 1 (jpeg), 2 (png) or 33 (webp) for images and 23 (apng)
	// or 83 (animated webp) for ugoiras.
	RenderFormat  int `json:"render_format,omitempty" validate:"omitempty,oneof=1 2 23 33 83"`
	RenderQuality int `json:"render_quality,omitempty"`
	Width         int `json:"width,omitempty" validate:"required_with=Height"`
	Height        int `json:"height,omitempty" validate:"required_with=Width"`
}

func (s *GetFilesService) SearchFiles(ctx context.Context, opts SearchFilesOptions, as ...ReturnAs) (*Result[SearchFilesResponse], error) {
	return get[SearchFilesResponse](ctx, s.c, "/get_files/search_files", opts, ReturnJSON, as)
}

// FileHashes converts between the hash types Hydrus knows for its files.
func (s *GetFilesService) FileHashes(ctx context.Context, opts FileHashesOptions, as ...ReturnAs) (*Result[FileHashesResponse], error) {
	const path = "/get_files/file_hashes"
	if err := requireOne(path, "hash, hashes", opts.Hash != "", len(opts.Hashes) > 0); err != nil {
		return nil, err
	}
	return get[FileHashesResponse](ctx, s.c, path, opts, ReturnJSON, as)
}

func (s *GetFilesService) FileMetadata(ctx context.Context, opts FileMetadataOptions, as ...ReturnAs) (*Result[FileMetadataResponse], error) {
	const path = "/get_files/file_metadata"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	return get[FileMetadataResponse](ctx, s.c, path, opts, ReturnJSON, as)
}

// File streams the file's contents. The caller must close Result.Stream.
func (s *GetFilesService) File(ctx context.Context, opts FileOptions, as ...ReturnAs) (*Result[any], error) {
	const path = "/get_files/file"
	if err := opts.SingleFile.check(path); err != nil {
		return nil, err
	}
	return get[any](ctx, s.c, path, opts, ReturnStream, as)
}

// Thumbnail streams the file's thumbnail. The caller must close
// Result.Stream.
func (s *GetFilesService) Thumbnail(ctx context.Context, file SingleFile, as ...ReturnAs) (*Result[any], error) {
	const path = "/get_files/thumbnail"
	if err := file.check(path); err != nil {
		return nil, err
	}
	return get[any](ctx, s.c, path, file, ReturnStream, as)
}

// FilePath gets where the file is stored on the machine Hydrus runs on.
func (s *GetFilesService) FilePath(ctx context.Context, file SingleFile, as ...ReturnAs) (*Result[FilePathResponse], error) {
	const path = "/get_files/file_path"
	if err := file.check(path); err != nil {
		return nil, err
	}
	return get[FilePathResponse](ctx, s.c, path, file, ReturnJSON, as)
}

func (s *GetFilesService) ThumbnailPath(ctx context.Context, opts ThumbnailPathOptions, as ...ReturnAs) (*Result[ThumbnailPathResponse], error) {
	const path = "/get_files/thumbnail_path"
	if err := opts.SingleFile.check(path); err != nil {
		return nil, err
	}
	return get[ThumbnailPathResponse](ctx, s.c, path, opts, ReturnJSON, as)
}

func (s *GetFilesService) LocalFileStorageLocations(ctx context.Context, as ...ReturnAs) (*Result[LocalFileStorageLocationsResponse], error) {
	return get[LocalFileStorageLocationsResponse](ctx, s.c, "/get_files/local_file_storage_locations", nil, ReturnJSON, as)
}

// Render streams the file rendered to the requested format. The caller must
// close Result.Stream.
func (s *GetFilesService) Render(ctx context.Context, opts RenderOptions, as ...ReturnAs) (*Result[any], error) {
	const path = "/get_files/render"
	if err := opts.SingleFile.check(path); err != nil {
		return nil, err
	}
	return get[any](ctx, s.c, path, opts, ReturnStream, as)
}
