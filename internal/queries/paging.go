package queries

type PagedQuery struct {
	PageSize int
	Page     int
}

type OrderedQuery struct {
	OrderBy  string
	OrderDir string
}

// Column returns the column for the requested order key, or false when the
// key is not one of columns.
func (q OrderedQuery) Column(columns map[string]string) (string, bool) {
	column, ok := columns[q.OrderBy]
	return column, ok
}

type PagedResponse[T any] struct {
	Items      []T
	TotalCount int
}

func NewPagedResponse[T any](items []T, totalCount int) PagedResponse[T] {
	return PagedResponse[T]{
		Items:      items,
		TotalCount: totalCount,
	}
}
