package hydrus

import "context"

// ManageServicesService wraps the /manage_services endpoints.
type ManageServicesService service

// PendingCounts are the content waiting to be uploaded to one repository.
type PendingCounts struct {
	PendingTagMappings    int `json:"pending_tag_mappings"`
	PetitionedTagMappings int `json:"petitioned_tag_mappings"`
	PendingTagSiblings    int `json:"pending_tag_siblings"`
	PetitionedTagSiblings int `json:"petitioned_tag_siblings"`
	PendingTagParents     int `json:"pending_tag_parents"`
	PetitionedTagParents  int `json:"petitioned_tag_parents"`
	PendingFiles          int `json:"pending_files"`
	PetitionedFiles       int `json:"petitioned_files"`
}

type PendingCountsResponse struct {
	APIVersionResponse
	Services ServicesByKey `json:"services"`

	// PendingCounts is keyed by service key.
	PendingCounts map[string]PendingCounts `json:"pending_counts"`
}

type serviceKeyRequest struct {
	ServiceKey string `json:"service_key" validate:"required"`
}

func (s *ManageServicesService) GetPendingCounts(ctx context.Context, as ...ReturnAs) (*Result[PendingCountsResponse], error) {
	return get[PendingCountsResponse](ctx, s.c, "/manage_services/get_pending_counts", nil, ReturnJSON, as)
}

// CommitPending uploads everything pending on a repository, the same as the
// 'pending' menu of the Hydrus UI.
func (s *ManageServicesService) CommitPending(ctx context.Context, serviceKey string, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_services/commit_pending", serviceKeyRequest{ServiceKey: serviceKey}, ReturnSuccess, as)
}

// ForgetPending discards everything pending on a repository.
func (s *ManageServicesService) ForgetPending(ctx context.Context, serviceKey string, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_services/forget_pending", serviceKeyRequest{ServiceKey: serviceKey}, ReturnSuccess, as)
}
