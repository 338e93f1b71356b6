package handlers

import (
	"Listline/internal/queries"
	"Listline/utils"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// QueryOps holds the paging, ordering and search parameters shared by list endpoints.
// A zero Page means the whole result is returned.
type QueryOps struct {
	PageSize int
	Page     int
	OrderBy  string
	OrderDir string
	Search   string
}

func (q *QueryOps) ToPagedQuery() queries.PagedQuery {
	return queries.PagedQuery{
		PageSize: q.PageSize,
		Page:     q.Page,
	}
}

func (q *QueryOps) ToOrderedQuery() queries.OrderedQuery {
	return queries.OrderedQuery{
		OrderBy:  q.OrderBy,
		OrderDir: q.OrderDir,
	}
}

// ParseQueryOps reads page, pageSize, orderBy, orderDir and search from the url.
// Non numeric paging values are rejected, negative ones are treated as absent
// and the page size is capped.
func ParseQueryOps(r *http.Request) (*QueryOps, error) {
	values := r.URL.Query()

	pageSize, err := nonNegativeParam(values, "pageSize")
	if err != nil {
		return nil, err
	}

	page, err := nonNegativeParam(values, "page")
	if err != nil {
		return nil, err
	}

	switch {
	case pageSize > 0 && page == 0:
		page = 1
	case page > 0 && pageSize == 0:
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	orderDir := strings.ToLower(values.Get("orderDir"))
	if orderDir != "desc" {
		orderDir = "asc"
	}

	return &QueryOps{
		PageSize: pageSize,
		Page:     page,
		OrderBy:  values.Get("orderBy"),
		OrderDir: orderDir,
		Search:   strings.TrimSpace(values.Get("search")),
	}, nil
}

func nonNegativeParam(values url.Values, name string) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", name, raw, utils.ErrHttpBadRequest)
	}

	return max(value, 0), nil
}
