package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// EditTimesService wraps the /edit_times endpoints.
type EditTimesService service

// FileViewtimeOptions is used to increment or set the viewing statistics of
// files on one canvas.
type FileViewtimeOptions struct {
	FileSelector
	CanvasType types.CanvasType `json:"canvas_type"`

	// Timestamp or TimestampMS set the last viewed time, in seconds or
	// milliseconds.
	Timestamp   float64 `json:"timestamp,omitempty"`
	TimestampMS int64   `json:"timestamp_ms,omitempty"`

	Views    int     `json:"views,omitempty"`
	Viewtime float64 `json:"viewtime,omitempty"`
}

func (o FileViewtimeOptions) check(op string) error {
	if err := o.FileSelector.check(op); err != nil {
		return err
	}
	if !o.CanvasType.Valid() {
		return &InvalidArgumentError{Op: op, Reason: "unknown canvas type " + o.CanvasType.String()}
	}
	return nil
}

type SetTimeOptions struct {
	FileSelector
	TimestampType types.TimestampType `json:"timestamp_type"`

	// Timestamp and TimestampMS are in seconds and milliseconds.
	Timestamp   *float64 `json:"timestamp,omitempty"`
	TimestampMS *int64   `json:"timestamp_ms,omitempty"`

	// Clear removes the timestamp instead of setting it. Only web domain
	// modified times can be cleared.
	Clear bool `json:"-"`

	// FileServiceKey is needed for import, delete and original import times.
	FileServiceKey string `json:"file_service_key,omitempty"`

	// CanvasType is needed for last viewed times.
	CanvasType *types.CanvasType `json:"canvas_type,omitempty"`

	// Domain is needed for web domain modified times.
	Domain string `json:"domain,omitempty"`
}

func (o SetTimeOptions) check(op string) error {
	if err := o.FileSelector.check(op); err != nil {
		return err
	}
	switch o.TimestampType {
	case types.TimestampImported, types.TimestampDeleted, types.TimestampOriginalImport:
		if o.FileServiceKey == "" {
			return &InvalidArgumentError{Op: op, Reason: "file_service_key is required for " + o.TimestampType.String()}
		}
	case types.TimestampLastViewed:
		if o.CanvasType == nil {
			return &InvalidArgumentError{Op: op, Reason: "canvas_type is required for " + o.TimestampType.String()}
		}
	case types.TimestampModifiedWebDomain:
		if o.Domain == "" {
			return &InvalidArgumentError{Op: op, Reason: "domain is required for " + o.TimestampType.String()}
		}
		if o.Clear {
			return nil
		}
	case types.TimestampModifiedDisk, types.TimestampArchived:
	default:
		return &InvalidArgumentError{Op: op, Reason: "unknown timestamp type " + o.TimestampType.String()}
	}
	if o.Clear {
		return &InvalidArgumentError{Op: op, Reason: "only web domain modified times can be cleared"}
	}
	if o.Timestamp == nil && o.TimestampMS == nil {
		return &InvalidArgumentError{Op: op, Reason: "one of timestamp, timestamp_ms must be set"}
	}
	return nil
}

// clearTimeRequest sends an explicit null timestamp.
type clearTimeRequest struct {
	SetTimeOptions
	Timestamp *float64 `json:"timestamp"`
}

// IncrementFileViewtime adds views and viewtime to files.
func (s *EditTimesService) IncrementFileViewtime(ctx context.Context, opts FileViewtimeOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/edit_times/increment_file_viewtime"
	if err := opts.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

// SetFileViewtime overwrites the views and viewtime of files.
func (s *EditTimesService) SetFileViewtime(ctx context.Context, opts FileViewtimeOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/edit_times/set_file_viewtime"
	if err := opts.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

func (s *EditTimesService) SetTime(ctx context.Context, opts SetTimeOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/edit_times/set_time"
	if err := opts.check(path); err != nil {
		return nil, err
	}
	if opts.Clear {
		return post[APIVersionResponse](ctx, s.c, path, clearTimeRequest{SetTimeOptions: opts}, ReturnSuccess, as)
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}
