package hydrus

import (
	"bytes"
	"context"
	"net/http"

	"github.com/anitschke/go-hydrus/types"
)

// AddFilesService wraps the /add_files endpoints.
type AddFilesService service

// FileSource is the file an upload style call acts on. Set exactly one of
// Path and Bytes. A non nil empty Bytes counts as set.
type FileSource struct {
	// Path is a path on the machine Hydrus runs on.
	Path string

	// Bytes is sent as the request body.
	Bytes []byte
}

type AddFileOptions struct {
	FileSource

	// DeleteAfterSuccessfulImport removes the file at Path once Hydrus has
	// imported it. Only used with Path.
	DeleteAfterSuccessfulImport bool

	// FileDomain chooses where the file is imported to. Only used with Path.
	FileDomain FileDomain
}

type AddFileResponse struct {
	APIVersionResponse
	Status types.AddFileStatus `json:"status"`
	Hash   types.Hash          `json:"hash"`
	Note   string              `json:"note"`
}

type DeleteFilesOptions struct {
	FileSelector
	FileDomain

	// Reason is recorded in the file's deletion record.
	Reason string `json:"reason,omitempty"`
}

type UndeleteFilesOptions struct {
	FileSelector
	FileDomain
}

type MigrateFilesOptions struct {
	FileSelector
	FileServiceKey  string   `json:"file_service_key,omitempty"`
	FileServiceKeys []string `json:"file_service_keys,omitempty"`
}

type GenerateHashesResponse struct {
	APIVersionResponse
	Hash             types.Hash `json:"hash"`
	PerceptualHashes []string   `json:"perceptual_hashes,omitempty"`
	PixelHash        string     `json:"pixel_hash,omitempty"`
}

type addFilePathRequest struct {
	Path                        string `json:"path"`
	DeleteAfterSuccessfulImport bool   `json:"delete_after_successful_import,omitempty"`
	FileDomain
}

// uploadCall builds the call for an endpoint that accepts either a JSON body
// naming a path or the raw file contents.
func (src FileSource) uploadCall(path string, pathPayload any, as ReturnAs) (Call, error) {
	hasPath := src.Path != ""
	hasBytes := src.Bytes != nil
	switch {
	case hasPath && hasBytes:
		return Call{}, &InvalidArgumentError{Op: path, Reason: "only one of path and bytes may be provided"}
	case hasPath:
		return Call{
			Path:     path,
			Method:   http.MethodPost,
			JSON:     pathPayload,
			ReturnAs: as,
		}, nil
	case hasBytes:
		return Call{
			Path:     path,
			Method:   http.MethodPost,
			Header:   http.Header{"Content-Type": {"application/octet-stream"}},
			Body:     bytes.NewReader(src.Bytes),
			ReturnAs: as,
		}, nil
	default:
		return Call{}, &InvalidArgumentError{Op: path, Reason: "one of path or bytes must be provided"}
	}
}

// AddFile imports a file, either from a path Hydrus can read or from the bytes
// given.
func (s *AddFilesService) AddFile(ctx context.Context, opts AddFileOptions, as ...ReturnAs) (*Result[AddFileResponse], error) {
	const path = "/add_files/add_file"
	payload := addFilePathRequest{
		Path:                        opts.Path,
		DeleteAfterSuccessfulImport: opts.DeleteAfterSuccessfulImport,
		FileDomain:                  opts.FileDomain,
	}
	call, err := opts.uploadCall(path, payload, pick(ReturnJSON, as))
	if err != nil {
		return nil, err
	}
	return do[AddFileResponse](ctx, s.c, call)
}

func (s *AddFilesService) DeleteFiles(ctx context.Context, opts DeleteFilesOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_files/delete_files"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

func (s *AddFilesService) UndeleteFiles(ctx context.Context, opts UndeleteFilesOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_files/undelete_files"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

// ClearFileDeletionRecord removes the deletion record of files that were
// deleted, so that they can be imported again without being flagged.
func (s *AddFilesService) ClearFileDeletionRecord(ctx context.Context, files FileSelector, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_files/clear_file_deletion_record"
	if err := files.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, files, ReturnSuccess, as)
}

// MigrateFiles copies files to other local file services.
func (s *AddFilesService) MigrateFiles(ctx context.Context, opts MigrateFilesOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_files/migrate_files"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	if err := requireOne(path, "file_service_key, file_service_keys", opts.FileServiceKey != "", len(opts.FileServiceKeys) > 0); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

func (s *AddFilesService) ArchiveFiles(ctx context.Context, files FileSelector, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_files/archive_files"
	if err := files.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, files, ReturnSuccess, as)
}

func (s *AddFilesService) UnarchiveFiles(ctx context.Context, files FileSelector, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_files/unarchive_files"
	if err := files.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, files, ReturnSuccess, as)
}

// GenerateHashes asks Hydrus for the hashes it would compute for a file
// without importing it.
func (s *AddFilesService) GenerateHashes(ctx context.Context, src FileSource, as ...ReturnAs) (*Result[GenerateHashesResponse], error) {
	const path = "/add_files/generate_hashes"
	call, err := src.uploadCall(path, map[string]string{"path": src.Path}, pick(ReturnJSON, as))
	if err != nil {
		return nil, err
	}
	return do[GenerateHashesResponse](ctx, s.c, call)
}
