package htmledit

import (
	"Listline/internal/logging"
	"Listline/internal/services/ai"
	"Listline/internal/services/icons"
	"context"
	"fmt"
	"regexp"
	"strings"
)

const (
	iconSearchLimit  = 3
	defaultIconColor = "000000"
	defaultIconSize  = "24px"
)

type Executor struct {
	icons icons.Service
}

func NewExecutor(iconService icons.Service) *Executor {
	return &Executor{
		icons: iconService,
	}
}

// Execute applies the tool calls to html in order. Calls that cannot be applied are skipped.
func (e *Executor) Execute(ctx context.Context, html string, calls []ai.ToolCall) string {
	result := html
	for _, call := range calls {
		switch call.Name {
		case ToolReplaceText:
			result = replaceText(result, call.Input)
		case ToolChangeColor:
			result = replaceBoth(result, call.Input, "old_color", "new_color")
		case ToolChangeStyle:
			result = changeStyle(result, call.Input)
		case ToolChangeImage:
			result = replaceBoth(result, call.Input, "old_src", "new_src")
		case ToolChangeLink:
			result = replaceBoth(result, call.Input, "old_href", "new_href")
		case ToolInsertIcon:
			result = e.insertIcon(ctx, result, call.Input)
		default:
			logging.Logger.Debugw("ignoring unknown tool", "tool", call.Name)
		}
	}
	return result
}

func stringParam(input map[string]any, key string) (string, bool) {
	raw, ok := input[key]
	if !ok || raw == nil {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

func boolParam(input map[string]any, key string, fallback bool) bool {
	v, ok := input[key].(bool)
	if !ok {
		return fallback
	}
	return v
}

func replaceText(html string, input map[string]any) string {
	find, _ := stringParam(input, "find")
	replace, hasReplace := stringParam(input, "replace")
	if find == "" || !hasReplace {
		return html
	}

	if boolParam(input, "all", true) {
		return strings.ReplaceAll(html, find, replace)
	}
	return strings.Replace(html, find, replace, 1)
}

func replaceBoth(html string, input map[string]any, oldKey string, newKey string) string {
	oldValue, _ := stringParam(input, oldKey)
	newValue, _ := stringParam(input, newKey)
	if oldValue == "" || newValue == "" {
		return html
	}
	return strings.ReplaceAll(html, oldValue, newValue)
}

func changeStyle(html string, input map[string]any) string {
	property, _ := stringParam(input, "property")
	oldValue, _ := stringParam(input, "old_value")
	newValue, _ := stringParam(input, "new_value")
	if property == "" || oldValue == "" || newValue == "" {
		return html
	}

	pattern, err := regexp.Compile(`(?i)(` + regexp.QuoteMeta(property) + `\s*:\s*)` + regexp.QuoteMeta(oldValue))
	if err != nil {
		return html
	}

	return pattern.ReplaceAllString(html, "${1}"+strings.ReplaceAll(newValue, "$", "$$"))
}

func (e *Executor) insertIcon(ctx context.Context, html string, input map[string]any) string {
	query, _ := stringParam(input, "search_query")
	replaceText, _ := stringParam(input, "replace_text")
	if query == "" || replaceText == "" || e.icons == nil {
		return html
	}

	color, ok := stringParam(input, "color")
	if !ok || color == "" {
		color = defaultIconColor
	}
	color = strings.ReplaceAll(color, "#", "")

	size, ok := stringParam(input, "size")
	if !ok || size == "" {
		size = defaultIconSize
	}

	found, err := e.icons.Search(ctx, query, iconSearchLimit)
	if err != nil {
		logging.Logger.Warnw("icon search failed", "query", query, "error", err)
		return html
	}
	if len(found) == 0 {
		return html
	}

	svg, err := e.icons.DownloadSvg(ctx, found[0].Id, color)
	if err != nil {
		logging.Logger.Warnw("icon download failed", "icon", found[0].Id, "error", err)
		return html
	}
	if svg == "" {
		return html
	}

	styled := strings.Replace(svg, "<svg",
		fmt.Sprintf(`<svg style="width: %s; height: %s; display: inline-block; vertical-align: middle;"`, size, size), 1)

	return strings.ReplaceAll(html, replaceText, styled)
}
