package filter

const (
	DefaultPerPage  = 15
	DefaultPageName = "page"
)

type PageRequest struct {
	// PerPage <= 0 means DefaultPerPage
	PerPage int
	// Columns empty means every column
	Columns []string
	// PageName is the input key holding the page number
	PageName string
	// Page <= 0 reads the page from the input
	Page int
}

// Offset of the first row on the page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// WithDefaults fills the defaults. The page number is read from in when
// Page is not set, falling back to 1.
func (r PageRequest) WithDefaults(in Input) PageRequest {
	if r.PerPage <= 0 {
		r.PerPage = DefaultPerPage
	}
	if r.PageName == "" {
		r.PageName = DefaultPageName
	}
	if r.Page <= 0 {
		r.Page = 1
		if v, ok := in.Get(r.PageName); ok && v.IsScalar() {
			if p := toInt(v); p > 0 {
				r.Page = int(p)
			}
		}
	}
	return r
}

type Page[T any] struct {
	Items       []*T  `json:"data"`
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

// NewPage expects a request with defaults filled.
func NewPage[T any](items []*T, total int64, req PageRequest) *Page[T] {
	last := 1
	if req.PerPage > 0 && total > 0 {
		last = int((total + int64(req.PerPage) - 1) / int64(req.PerPage))
	}
	if items == nil {
		items = []*T{}
	}
	return &Page[T]{
		Items:       items,
		Total:       total,
		PerPage:     req.PerPage,
		CurrentPage: req.Page,
		LastPage:    last,
	}
}

type SimplePage[T any] struct {
	Items       []*T `json:"data"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	HasMore     bool `json:"has_more"`
}

// NewSimplePage takes up to PerPage+1 rows, the extra row only tells
// whether another page exists.
func NewSimplePage[T any](items []*T, req PageRequest) *SimplePage[T] {
	more := len(items) > req.PerPage
	if more {
		items = items[:req.PerPage]
	}
	if items == nil {
		items = []*T{}
	}
	return &SimplePage[T]{
		Items:       items,
		PerPage:     req.PerPage,
		CurrentPage: req.Page,
		HasMore:     more,
	}
}
