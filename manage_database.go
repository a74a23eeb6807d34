package hydrus

import "context"

// DatabaseService wraps the /manage_database endpoints.
type DatabaseService service

type MrBonesOptions struct {
	FileDomain
	Tags          []string `json:"tags,omitempty"`
	TagServiceKey string   `json:"tag_service_key,omitempty"`
}

// BonedStats are the numbers of the 'how boned am I?' dialog. Sizes are in
// bytes and times in seconds.
type BonedStats struct {
	NumInbox           int64 `json:"num_inbox"`
	NumArchive         int64 `json:"num_archive"`
	NumDeleted         int64 `json:"num_deleted"`
	SizeInbox          int64 `json:"size_inbox"`
	SizeArchive        int64 `json:"size_archive"`
	SizeDeleted        int64 `json:"size_deleted"`
	EarliestImportTime int64 `json:"earliest_import_time"`

	// TotalViewtime is media views, media viewtime, preview views and preview
	// viewtime.
	TotalViewtime [4]float64 `json:"total_viewtime"`

	TotalAlternateGroups int64 `json:"total_alternate_groups"`
	TotalAlternateFiles  int64 `json:"total_alternate_files"`
	TotalDuplicateFiles  int64 `json:"total_duplicate_files"`
}

type MrBonesResponse struct {
	APIVersionResponse
	BonedStats BonedStats `json:"boned_stats"`
}

// ClientOptionsResponse is a dump of Hydrus's internal options. Its layout
// follows the Hydrus release, so it is left undecoded.
type ClientOptionsResponse struct {
	APIVersionResponse
	OldOptions map[string]any `json:"old_options"`
	Options    map[string]any `json:"options"`
}

// ForceCommit makes Hydrus write everything pending to disk. It returns once
// the commit has finished, which can take a while on a busy database.
func (s *DatabaseService) ForceCommit(ctx context.Context, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_database/force_commit", nil, ReturnSuccess, as)
}

// LockOn pauses the database and releases its files, for example for a
// backup. Every other call returns 503 until LockOff.
func (s *DatabaseService) LockOn(ctx context.Context, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_database/lock_on", nil, ReturnSuccess, as)
}

func (s *DatabaseService) LockOff(ctx context.Context, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_database/lock_off", nil, ReturnSuccess, as)
}

func (s *DatabaseService) MrBones(ctx context.Context, opts MrBonesOptions, as ...ReturnAs) (*Result[MrBonesResponse], error) {
	return get[MrBonesResponse](ctx, s.c, "/manage_database/mr_bones", opts, ReturnJSON, as)
}

// GetClientOptions only talks to the Hydrus release this library targets,
// since the response changes with Hydrus releases rather than API versions.
func (s *DatabaseService) GetClientOptions(ctx context.Context, as ...ReturnAs) (*Result[ClientOptionsResponse], error) {
	version, err := s.c.gate.ensure(ctx)
	if err != nil {
		return nil, err
	}
	if version.Value.HydrusVersion != TargetHydrusVersion {
		return nil, &VersionMismatchError{
			Component: ComponentHydrus,
			Supported: TargetHydrusVersion,
			Remote:    version.Value.HydrusVersion,
		}
	}
	return get[ClientOptionsResponse](ctx, s.c, "/manage_database/get_client_options", nil, ReturnJSON, as)
}
