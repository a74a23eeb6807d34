package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// AddNotesService wraps the /add_notes endpoints.
type AddNotesService service

type SetNotesOptions struct {
	SingleFile

	// Notes maps note names to their text.
	Notes map[string]string `json:"notes" validate:"required"`

	// MergeCleverly merges the notes in to the existing ones the way note
	// import options do instead of overwriting them.
	MergeCleverly                bool                          `json:"merge_cleverly,omitempty"`
	ExtendExistingNoteIfPossible *bool                         `json:"extend_existing_note_if_possible,omitempty"`
	ConflictResolution           *types.NoteConflictResolution `json:"conflict_resolution,omitempty"`
}

type SetNotesResponse struct {
	APIVersionResponse

	// Notes are the changes that were actually made.
	Notes map[string]string `json:"notes"`
}

type DeleteNotesOptions struct {
	SingleFile
	NoteNames []string `json:"note_names" validate:"required"`
}

func (s *AddNotesService) SetNotes(ctx context.Context, opts SetNotesOptions, as ...ReturnAs) (*Result[SetNotesResponse], error) {
	const path = "/add_notes/set_notes"
	if err := opts.SingleFile.check(path); err != nil {
		return nil, err
	}
	return post[SetNotesResponse](ctx, s.c, path, opts, ReturnJSON, as)
}

func (s *AddNotesService) DeleteNotes(ctx context.Context, opts DeleteNotesOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/add_notes/delete_notes"
	if err := opts.SingleFile.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}
