package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// AddURLsService wraps the /add_urls endpoints.
type AddURLsService service

type GetURLFilesOptions struct {
	URL string `json:"url" validate:"required"`

	// DoublecheckFileSystem makes Hydrus check every file it reports actually
	// exists on disk.
	DoublecheckFileSystem bool `json:"doublecheck_file_system,omitempty"`
}

type URLFileStatus struct {
	// Status uses the same numbers as AddFileStatus, but only 0 (not in the
	// database), 2 (already in the database) and 3 (previously deleted) occur.
	Status int    `json:"status"`
	Hash   string `json:"hash"`
	Note   string `json:"note"`
}

type GetURLFilesResponse struct {
	APIVersionResponse
	NormalisedURL   string          `json:"normalised_url"`
	URLFileStatuses []URLFileStatus `json:"url_file_statuses"`
}

type URLInfo struct {
	RequestURL        string        `json:"request_url"`
	NormalisedURL     string        `json:"normalised_url"`
	URLType           types.URLType `json:"url_type"`
	URLTypeString     string        `json:"url_type_string"`
	MatchName         string        `json:"match_name"`
	CanParse          bool          `json:"can_parse"`
	CannotParseReason string        `json:"cannot_parse_reason,omitempty"`
}

type GetURLInfoResponse struct {
	APIVersionResponse
	URLInfo
}

type AddURLOptions struct {
	URL string `json:"url" validate:"required"`

	DestinationPageKey  string `json:"destination_page_key,omitempty"`
	DestinationPageName string `json:"destination_page_name,omitempty"`
	ShowDestinationPage bool   `json:"show_destination_page,omitempty"`

	FileDomain

	// ServiceKeysToAdditionalTags are given to every file imported from the
	// URL, keyed by tag service.
	ServiceKeysToAdditionalTags map[string][]string `json:"service_keys_to_additional_tags,omitempty"`

	// FilterableTags go through the tag import options that apply to the URL.
	FilterableTags []string `json:"filterable_tags,omitempty"`
}

type AddURLResponse struct {
	APIVersionResponse
	HumanResultText string `json:"human_result_text"`
	NormalisedURL   string `json:"normalised_url"`
}

type AssociateURLOptions struct {
	FileSelector
	URLToAdd     string   `json:"url_to_add,omitempty"`
	URLsToAdd    []string `json:"urls_to_add,omitempty"`
	URLToDelete  string   `json:"url_to_delete,omitempty"`
	URLsToDelete []string `json:"urls_to_delete,omitempty"`

	// NormaliseURLs defaults to true on the Hydrus side.
	NormaliseURLs *bool `json:"normalise_urls,omitempty"`
}

// GetURLFiles asks which files Hydrus has that are associated with a URL.
func (s *AddURLsService) GetURLFiles(ctx context.Context, opts GetURLFilesOptions, as ...ReturnAs) (*Result[GetURLFilesResponse], error) {
	return get[GetURLFilesResponse](ctx, s.c, "/add_urls/get_url_files", opts, ReturnJSON, as)
}

// GetURLInfo asks how Hydrus would parse a URL.
func (s *AddURLsService) GetURLInfo(ctx context.Context, url string, as ...ReturnAs) (*Result[GetURLInfoResponse], error) {
	const path = "/add_urls/get_url_info"
	if url == "" {
		return nil, &InvalidArgumentError{Op: path, Reason: "url is required"}
	}
	return get[GetURLInfoResponse](ctx, s.c, path, struct {
		URL string `json:"url"`
	}{URL: url}, ReturnJSON, as)
}

// AddURL queues a URL for download.
func (s *AddURLsService) AddURL(ctx context.Context, opts AddURLOptions, as ...ReturnAs) (*Result[AddURLResponse], error) {
	return post[AddURLResponse](ctx, s.c, "/add_urls/add_url", opts, ReturnJSON, as)
}

// AssociateURL adds or removes known URLs of files.
func (s *AddURLsService) AssociateURL(ctx context.Context, opts AssociateURLOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_urls/associate_url"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}
