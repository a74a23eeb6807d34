package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// AddTagsService wraps the /add_tags endpoints.
type AddTagsService service

type CleanTagsResponse struct {
	APIVersionResponse
	Tags []string `json:"tags"`
}

type FavouriteTagsResponse struct {
	APIVersionResponse
	FavouriteTags []string `json:"favourite_tags"`
}

type SiblingsAndParents struct {
	IdealTag    string   `json:"ideal_tag"`
	Siblings    []string `json:"siblings"`
	Descendants []string `json:"descendants"`
	Ancestors   []string `json:"ancestors"`
}

type GetSiblingsAndParentsResponse struct {
	APIVersionResponse
	Services ServicesByKey `json:"services"`

	// Tags maps each requested tag to its siblings and parents per tag
	// service key.
	Tags map[string]map[string]SiblingsAndParents `json:"tags"`
}

type SearchTagsOptions struct {
	Search string `json:"search" validate:"required"`
	FileDomain
	TagServiceKey string `json:"tag_service_key,omitempty"`

	// TagDisplayType is "storage" (the default) or "display".
	TagDisplayType string `json:"tag_display_type,omitempty" validate:"omitempty,oneof=storage display"`
}

type TagCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type SearchTagsResponse struct {
	APIVersionResponse
	Tags []TagCount `json:"tags"`
}

// AddTagsOptions needs at least one of ServiceKeysToTags and
// ServiceKeysToActionsToTags.
type AddTagsOptions struct {
	FileSelector

	// ServiceKeysToTags adds tags on each local tag service.
	ServiceKeysToTags map[string][]string `json:"service_keys_to_tags,omitempty"`

	ServiceKeysToActionsToTags map[string]map[types.TagAction][]string `json:"service_keys_to_actions_to_tags,omitempty"`

	// Both default to true on the Hydrus side.
	OverridePreviouslyDeletedMappings *bool `json:"override_previously_deleted_mappings,omitempty"`
	CreateNewDeletedMappings          *bool `json:"create_new_deleted_mappings,omitempty"`
}

// SetFavouriteTagsOptions either replaces the favourite tags with Set or
// edits them with Add and Remove.
type SetFavouriteTagsOptions struct {
	TagServiceKey string   `json:"tag_service_key,omitempty"`
	Set           []string `json:"set,omitempty"`
	Add           []string `json:"add,omitempty"`
	Remove        []string `json:"remove,omitempty"`
}

type tagsQuery struct {
	Tags []string `json:"tags"`
}

// CleanTags shows how Hydrus would normalise the given tags.
func (s *AddTagsService) CleanTags(ctx context.Context, tags []string, as ...ReturnAs) (*Result[CleanTagsResponse], error) {
	return get[CleanTagsResponse](ctx, s.c, "/add_tags/clean_tags", tagsQuery{Tags: nonNil(tags)}, ReturnJSON, as)
}

func (s *AddTagsService) GetFavouriteTags(ctx context.Context, as ...ReturnAs) (*Result[FavouriteTagsResponse], error) {
	return get[FavouriteTagsResponse](ctx, s.c, "/add_tags/get_favourite_tags", nil, ReturnJSON, as)
}

func (s *AddTagsService) GetSiblingsAndParents(ctx context.Context, tags []string, as ...ReturnAs) (*Result[GetSiblingsAndParentsResponse], error) {
	return get[GetSiblingsAndParentsResponse](ctx, s.c, "/add_tags/get_siblings_and_parents", tagsQuery{Tags: nonNil(tags)}, ReturnJSON, as)
}

// SearchTags runs the same tag autocomplete search the Hydrus UI uses.
func (s *AddTagsService) SearchTags(ctx context.Context, opts SearchTagsOptions, as ...ReturnAs) (*Result[SearchTagsResponse], error) {
	return get[SearchTagsResponse](ctx, s.c, "/add_tags/search_tags", opts, ReturnJSON, as)
}

func (s *AddTagsService) AddTags(ctx context.Context, opts AddTagsOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_tags/add_tags"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	if len(opts.ServiceKeysToTags) == 0 && len(opts.ServiceKeysToActionsToTags) == 0 {
		return nil, &InvalidArgumentError{Op: path, Reason: "one of service_keys_to_tags, service_keys_to_actions_to_tags must be set"}
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

func (s *AddTagsService) SetFavouriteTags(ctx context.Context, opts SetFavouriteTagsOptions, as ...ReturnAs) (*Result[FavouriteTagsResponse], error) {
	const path = "/add_tags/set_favourite_tags"
	if opts.Set != nil && (opts.Add != nil || opts.Remove != nil) {
		return nil, &InvalidArgumentError{Op: path, Reason: "set cannot be combined with add or remove"}
	}
	return post[FavouriteTagsResponse](ctx, s.c, path, opts, ReturnJSON, as)
}

// nonNil makes sure an empty list is sent as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
