package domain

const (
	DefaultPageFrom = 0
	DefaultPageSize = 10
)

// Page is an item offset plus page length as accepted by list endpoints.
// The offset is rounded down to a whole page: from=15,size=10 reads items 10..19.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, NewValidationError("from must be non-negative, got %d", from)
	}
	if size <= 0 {
		return Page{}, NewValidationError("size must be positive, got %d", size)
	}
	return Page{From: from, Size: size}, nil
}

func (p Page) Index() int {
	return p.From / p.Size
}

func (p Page) Offset() int {
	return p.Index() * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
