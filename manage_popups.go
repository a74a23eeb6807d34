package hydrus

import "context"

// PopupsService wraps the /manage_popups endpoints.
type PopupsService service

// PopupFiles are files attached to a popup as a button.
type PopupFiles struct {
	Hashes []string `json:"hashes"`
	Label  string   `json:"label"`
}

// JobStatus is a popup message and the job behind it. Fields the job does not
// use are left empty.
type JobStatus struct {
	Key          string  `json:"key"`
	CreationTime float64 `json:"creation_time"`

	StatusTitle string `json:"status_title,omitempty"`
	StatusText1 string `json:"status_text_1,omitempty"`
	StatusText2 string `json:"status_text_2,omitempty"`
	Traceback   string `json:"traceback,omitempty"`
	NiceString  string `json:"nice_string,omitempty"`

	HadError              bool `json:"had_error"`
	IsCancellable         bool `json:"is_cancellable"`
	IsCancelled           bool `json:"is_cancelled"`
	IsDone                bool `json:"is_done"`
	IsPausable            bool `json:"is_pausable"`
	IsPaused              bool `json:"is_paused"`
	AttachedFilesMergable bool `json:"attached_files_mergable"`

	// PopupGauge1 and PopupGauge2 are [value, range] progress bars.
	PopupGauge1 []int `json:"popup_gauge_1,omitempty"`
	PopupGauge2 []int `json:"popup_gauge_2,omitempty"`

	APIData           any            `json:"api_data,omitempty"`
	Files             *PopupFiles    `json:"files,omitempty"`
	UserCallableLabel string         `json:"user_callable_label,omitempty"`
	NetworkJob        map[string]any `json:"network_job,omitempty"`
}

type GetPopupsResponse struct {
	APIVersionResponse
	JobStatuses []JobStatus `json:"job_statuses"`
}

type JobStatusResponse struct {
	APIVersionResponse
	JobStatus JobStatus `json:"job_status"`
}

// PopupOptions are the fields of a popup a caller can set. Pointer fields are
// left untouched by UpdatePopup when nil.
type PopupOptions struct {
	StatusTitle *string `json:"status_title,omitempty"`
	StatusText1 *string `json:"status_text_1,omitempty"`
	StatusText2 *string `json:"status_text_2,omitempty"`

	PopupGauge1 []int `json:"popup_gauge_1,omitempty" validate:"omitempty,len=2"`
	PopupGauge2 []int `json:"popup_gauge_2,omitempty" validate:"omitempty,len=2"`

	APIData any `json:"api_data,omitempty"`

	FilesLabel string   `json:"files_label,omitempty" validate:"required_with=Hashes"`
	Hashes     []string `json:"hashes,omitempty" validate:"omitempty,dive,len=64,hexadecimal"`
}

type AddPopupOptions struct {
	PopupOptions
	IsCancellable         bool `json:"is_cancellable,omitempty"`
	IsPausable            bool `json:"is_pausable,omitempty"`
	AttachedFilesMergable bool `json:"attached_files_mergable,omitempty"`
}

type UpdatePopupOptions struct {
	JobStatusKey string `json:"job_status_key" validate:"required"`
	PopupOptions
}

// PopupKeyOptions identifies a popup. Seconds delays the action where Hydrus
// supports it.
type PopupKeyOptions struct {
	JobStatusKey string `json:"job_status_key" validate:"required"`
	Seconds      int    `json:"seconds,omitempty" validate:"gte=0"`
}

// GetPopups lists the popups. With onlyInView false, popups hidden behind the
// popup toaster's limit are included.
func (s *PopupsService) GetPopups(ctx context.Context, onlyInView bool, as ...ReturnAs) (*Result[GetPopupsResponse], error) {
	return get[GetPopupsResponse](ctx, s.c, "/manage_popups/get_popups", struct {
		OnlyInView bool `json:"only_in_view"`
	}{OnlyInView: onlyInView}, ReturnJSON, as)
}

func (s *PopupsService) AddPopup(ctx context.Context, opts AddPopupOptions, as ...ReturnAs) (*Result[JobStatusResponse], error) {
	return post[JobStatusResponse](ctx, s.c, "/manage_popups/add_popup", opts, ReturnJSON, as)
}

func (s *PopupsService) UpdatePopup(ctx context.Context, opts UpdatePopupOptions, as ...ReturnAs) (*Result[JobStatusResponse], error) {
	return post[JobStatusResponse](ctx, s.c, "/manage_popups/update_popup", opts, ReturnJSON, as)
}

// DismissPopup removes a popup, if it is done or not cancellable.
func (s *PopupsService) DismissPopup(ctx context.Context, opts PopupKeyOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_popups/dismiss_popup", opts, ReturnSuccess, as)
}

// FinishPopup marks a popup as done.
func (s *PopupsService) FinishPopup(ctx context.Context, opts PopupKeyOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_popups/finish_popup", opts, ReturnSuccess, as)
}

func (s *PopupsService) FinishAndDismissPopup(ctx context.Context, opts PopupKeyOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_popups/finish_and_dismiss_popup", opts, ReturnSuccess, as)
}

func (s *PopupsService) CancelPopup(ctx context.Context, opts PopupKeyOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_popups/cancel_popup", opts, ReturnSuccess, as)
}

// CallUserCallable presses the button of a popup that has one.
func (s *PopupsService) CallUserCallable(ctx context.Context, jobStatusKey string, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_popups/call_user_callable", PopupKeyOptions{JobStatusKey: jobStatusKey}, ReturnSuccess, as)
}
