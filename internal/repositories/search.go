package repositories

import (
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

// SearchMode has the following constants: SearchModeContains, SearchModePrefix
type SearchMode string

const (
	SearchModeContains SearchMode = "contains"
	SearchModePrefix   SearchMode = "prefix"
)

// SearchFilter matches user input case-insensitively against text columns.
// LIKE wildcards in the input are matched literally.
type SearchFilter struct {
	text string
	mode SearchMode
}

func NewContainsSearchFilter(text string) SearchFilter {
	return SearchFilter{
		text: text,
		mode: SearchModeContains,
	}
}

func NewPrefixSearchFilter(text string) SearchFilter {
	return SearchFilter{
		text: text,
		mode: SearchModePrefix,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (f SearchFilter) Text() string {
	return f.text
}

// Pattern returns the ILIKE pattern, escaped with backslashes.
func (f SearchFilter) Pattern() string {
	escaped := likeEscaper.Replace(strings.TrimSpace(f.text))

	switch f.mode {
	case SearchModePrefix:
		return escaped + "%"

	default:
		return "%" + escaped + "%"
	}
}

// Apply restricts sb to rows where any of columns matches.
func (f SearchFilter) Apply(sb *sqlbuilder.SelectBuilder, columns ...string) {
	pattern := f.Pattern()

	conditions := make([]string, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, sb.ILike(column, pattern))
	}

	sb.Where(sb.Or(conditions...))
}
