package repositories

import "github.com/huandu/go-sqlbuilder"

type PagingInfo struct {
	page int
	size int
}

func (i PagingInfo) IsZero() bool {
	return i.page == 0
}

func (i PagingInfo) Page() int {
	return i.page
}

func (i PagingInfo) Size() int {
	return i.size
}

func (i PagingInfo) Apply(s *sqlbuilder.SelectBuilder) {
	if i.IsZero() {
		return
	}

	s.Limit(i.size).Offset(i.offset())
}

func (i PagingInfo) offset() int {
	return (i.page - 1) * i.size
}
