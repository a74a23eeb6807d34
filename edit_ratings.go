package hydrus

import "context"

// EditRatingsService wraps the /edit_ratings endpoints.
type EditRatingsService service

type SetRatingOptions struct {
	FileSelector
	RatingServiceKey string `json:"rating_service_key" validate:"required"`

	// Rating is true or false for like/dislike services, a number of stars
	// for numerical services, a non negative int for inc/dec services, or nil
	// to clear the rating.
	Rating any `json:"rating"`
}

func (s *EditRatingsService) SetRating(ctx context.Context, opts SetRatingOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/edit_ratings/set_rating"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	switch opts.Rating.(type) {
	case nil, bool, int, int32, int64, uint, uint32, uint64, float64:
	default:
		return nil, &InvalidArgumentError{Op: path, Reason: "rating must be a bool, a number or nil"}
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}
