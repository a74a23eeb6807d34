package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

// PagesService wraps the /manage_pages endpoints.
type PagesService service

// Page is a tab of the Hydrus UI. Only a page of pages has Pages.
type Page struct {
	Name      string          `json:"name"`
	PageKey   string          `json:"page_key"`
	PageState types.PageState `json:"page_state"`
	PageType  types.PageType  `json:"page_type"`

	// IsMediaPage reports whether the page holds thumbnails. Only media pages
	// accept AddFiles.
	IsMediaPage bool `json:"is_media_page"`

	// Selected marks the page in view at each level of the page tree.
	Selected bool   `json:"selected"`
	Pages    []Page `json:"pages,omitempty"`
}

// Walk calls fn for p and every page below it, depth first. It stops early if
// fn returns false.
func (p Page) Walk(fn func(Page) bool) bool {
	if !fn(p) {
		return false
	}
	for _, child := range p.Pages {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

type GetPagesResponse struct {
	APIVersionResponse

	// Pages is the top level notebook.
	Pages Page `json:"pages"`
}

type PageInfoOptions struct {
	PageKey string `json:"page_key" validate:"required"`

	// Simple defaults to true on the Hydrus side. Full information can be
	// large.
	Simple *bool `json:"simple,omitempty"`
}

type PageMedia struct {
	NumFiles int     `json:"num_files"`
	HashIDs  []int64 `json:"hash_ids"`
}

type PageInfo struct {
	Name        string          `json:"name"`
	PageKey     string          `json:"page_key"`
	PageState   types.PageState `json:"page_state"`
	PageType    types.PageType  `json:"page_type"`
	IsMediaPage bool            `json:"is_media_page"`

	// Management differs per page type and is left undecoded.
	Management map[string]any `json:"management"`
	Media      PageMedia      `json:"media"`
}

type PageInfoResponse struct {
	APIVersionResponse
	PageInfo PageInfo `json:"page_info"`
}

type AddFilesToPageOptions struct {
	PageKey string `json:"page_key" validate:"required"`
	FileSelector
}

type pageKeyRequest struct {
	PageKey string `json:"page_key" validate:"required"`
}

func (s *PagesService) GetPages(ctx context.Context, as ...ReturnAs) (*Result[GetPagesResponse], error) {
	return get[GetPagesResponse](ctx, s.c, "/manage_pages/get_pages", nil, ReturnJSON, as)
}

func (s *PagesService) GetPageInfo(ctx context.Context, opts PageInfoOptions, as ...ReturnAs) (*Result[PageInfoResponse], error) {
	return get[PageInfoResponse](ctx, s.c, "/manage_pages/get_page_info", opts, ReturnJSON, as)
}

// AddFiles appends files to a media page.
func (s *PagesService) AddFiles(ctx context.Context, opts AddFilesToPageOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	const path = "/manage_pages/add_files"
	if err := opts.FileSelector.check(path); err != nil {
		return nil, err
	}
	return post[APIVersionResponse](ctx, s.c, path, opts, ReturnSuccess, as)
}

// FocusPage brings a page in to view.
func (s *PagesService) FocusPage(ctx context.Context, pageKey string, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_pages/focus_page", pageKeyRequest{PageKey: pageKey}, ReturnSuccess, as)
}

// RefreshPage reruns the search of a file search page.
func (s *PagesService) RefreshPage(ctx context.Context, pageKey string, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_pages/refresh_page", pageKeyRequest{PageKey: pageKey}, ReturnSuccess, as)
}
