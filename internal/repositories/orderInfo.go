package repositories

import "github.com/huandu/go-sqlbuilder"

type OrderInfo struct {
	orderBy  string
	orderDir string
}

func (i OrderInfo) IsZero() bool {
	return i.orderBy == ""
}

func (i OrderInfo) OrderBy() string {
	return i.orderBy
}

func (i OrderInfo) OrderDir() string {
	return i.orderDir
}

func (i OrderInfo) Apply(s *sqlbuilder.SelectBuilder) {
	if i.IsZero() {
		return
	}

	if i.orderDir == "desc" {
		s.OrderByDesc(i.orderBy)
	} else {
		s.OrderByAsc(i.orderBy)
	}
}
