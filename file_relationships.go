package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// FileRelationshipsService wraps the /manage_file_relationships endpoints.
type FileRelationshipsService service

type FileRelationshipsOptions struct {
	FileSelector
	FileDomain
}

// FileRelationship describes the duplicate group of one file.
type FileRelationship struct {
	IsKing bool `json:"is_king"`

	// King is the hash of the best file of the group. It may not be available
	// locally, check KingIsOnFileDomain and KingIsLocal.
	King               string `json:"king"`
	KingIsOnFileDomain bool   `json:"king_is_on_file_domain"`
	KingIsLocal        bool   `json:"king_is_local"`

	PotentialDuplicates []string `json:"0"`
	FalsePositives      []string `json:"1"`
	Alternates          []string `json:"3"`
	Duplicates          []string `json:"8"`
}

type FileRelationshipsResponse struct {
	APIVersionResponse
	FileRelationships map[string]FileRelationship `json:"file_relationships"`
}

// PotentialsSearch narrows which potential duplicate pairs are considered.
// Tag lists default to system:everything on the Hydrus side.
type PotentialsSearch struct {
	FileDomain
	TagServiceKey1       string                      `json:"tag_service_key_1,omitempty"`
	Tags1                []any                       `json:"tags_1,omitempty"`
	TagServiceKey2       string                      `json:"tag_service_key_2,omitempty"`
	Tags2                []any                       `json:"tags_2,omitempty"`
	PotentialsSearchType *types.PotentialsSearchType `json:"potentials_search_type,omitempty"`
	PixelDuplicates      *types.PixelDuplicates      `json:"pixel_duplicates,omitempty"`
	MaxHammingDistance   *int                        `json:"max_hamming_distance,omitempty" validate:"omitempty,gte=0"`
}

type PotentialsCountResponse struct {
	APIVersionResponse
	PotentialDuplicatesCount int `json:"potential_duplicates_count"`
}

type PotentialPairsOptions struct {
	PotentialsSearch
	MaxNumPairs int `json:"max_num_pairs,omitempty" validate:"gte=0"`

	// GroupMode returns a whole duplicate group, ignoring MaxNumPairs.
	GroupMode bool `json:"group_mode,omitempty"`

	DuplicatePairSortType *types.DupPairSortType `json:"duplicate_pair_sort_type,omitempty"`
	DuplicatePairSortAsc  *bool                  `json:"duplicate_pair_sort_asc,omitempty"`
}

type PotentialPairsResponse struct {
	APIVersionResponse
	PotentialDuplicatePairs [][2]string `json:"potential_duplicate_pairs"`
}

type RandomPotentialsResponse struct {
	APIVersionResponse
	RandomPotentialDuplicateHashes []string `json:"random_potential_duplicate_hashes"`
}

// RelationshipEdit sets the relationship between two files.
type RelationshipEdit struct {
	HashA        string                      `json:"hash_a" validate:"required,len=64,hexadecimal"`
	HashB        string                      `json:"hash_b" validate:"required,len=64,hexadecimal"`
	Relationship types.DuplicateRelationship `json:"relationship"`

	// DoDefaultContentMerge applies the duplicate merge options the user has
	// set up for this relationship.
	DoDefaultContentMerge bool `json:"do_default_content_merge"`
	DeleteA               bool `json:"delete_a,omitempty"`
	DeleteB               bool `json:"delete_b,omitempty"`
}

type SetFileRelationshipsOptions struct {
	Relationships []RelationshipEdit `json:"relationships" validate:"required,dive"`
}

func (s *FileRelationshipsService) GetFileRelationships(ctx context.Context, opts FileRelationshipsOptions, as ...ReturnAs) (*Result[FileRelationshipsResponse], error) {
	const path = "/manage_file_relationships/get_file_relationships"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	return get[FileRelationshipsResponse](ctx, s.c, path, opts, ReturnJSON, as)
}

func (s *FileRelationshipsService) GetPotentialsCount(ctx context.Context, opts PotentialsSearch, as ...ReturnAs) (*Result[PotentialsCountResponse], error) {
	return get[PotentialsCountResponse](ctx, s.c, "/manage_file_relationships/get_potentials_count", opts, ReturnJSON, as)
}

// GetPotentialPairs gets a batch of pairs for a duplicate filter.
func (s *FileRelationshipsService) GetPotentialPairs(ctx context.Context, opts PotentialPairsOptions, as ...ReturnAs) (*Result[PotentialPairsResponse], error) {
	return get[PotentialPairsResponse](ctx, s.c, "/manage_file_relationships/get_potential_pairs", opts, ReturnJSON, as)
}

// GetRandomPotentials gets the hashes of a random group of potential
// duplicates, the same as the 'show some random potential dupes' button.
func (s *FileRelationshipsService) GetRandomPotentials(ctx context.Context, opts PotentialsSearch, as ...ReturnAs) (*Result[RandomPotentialsResponse], error) {
	return get[RandomPotentialsResponse](ctx, s.c, "/manage_file_relationships/get_random_potentials", opts, ReturnJSON, as)
}

func (s *FileRelationshipsService) SetFileRelationships(ctx context.Context, opts SetFileRelationshipsOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/manage_file_relationships/set_file_relationships"
	for _, r := range opts.Relationships {
		if !r.Relationship.Valid() {
			return nil, &InvalidArgumentError{Op: path, Reason: "unknown relationship " + r.Relationship.String()}
		}
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

// SetKings makes each file the best file of its duplicate group.
func (s *FileRelationshipsService) SetKings(ctx context.Context, files FileSelector, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/manage_file_relationships/set_kings"
	if err := files.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, files, ReturnSuccess, as)
}

// RemovePotentials removes all potential duplicate pairs the files are part
// of.
func (s *FileRelationshipsService) RemovePotentials(ctx context.Context, files FileSelector, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/manage_file_relationships/remove_potentials"
	if err := files.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, files, ReturnSuccess, as)
}
