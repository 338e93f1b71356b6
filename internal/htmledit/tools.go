package htmledit

import "Listline/internal/services/ai"

const (
	ToolReplaceText = "replace_text"
	ToolChangeColor = "change_color"
	ToolChangeStyle = "change_style"
	ToolChangeImage = "change_image"
	ToolChangeLink  = "change_link"
	ToolInsertIcon  = "insert_icon"
)

func stringProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// Tools lists the edit operations offered to the model.
var Tools = []ai.Tool{
	{
		Name:        ToolReplaceText,
		Description: "Replace text content in the HTML. Use this to change names, phone numbers, emails, addresses, headings, paragraphs, or any visible text.",
		InputSchema: objectSchema(map[string]any{
			"find":    stringProperty("The exact text to find (case-sensitive)"),
			"replace": stringProperty("The text to replace it with"),
			"all": map[string]any{
				"type":        "boolean",
				"description": "Replace all occurrences (default: true)",
			},
		}, "find", "replace"),
	},
	{
		Name:        ToolChangeColor,
		Description: "Change a color in the CSS styles. Use this to modify background colors, text colors, border colors, etc.",
		InputSchema: objectSchema(map[string]any{
			"target":    stringProperty(`Description of what color to change (e.g., "background", "header background", "primary text color", "button color")`),
			"old_color": stringProperty("The current color value (hex, rgb, or color name) - look for it in the HTML/CSS"),
			"new_color": stringProperty("The new color value (hex format preferred, e.g., #ff5500)"),
		}, "target", "new_color"),
	},
	{
		Name:        ToolChangeStyle,
		Description: "Change a CSS style property value. Use for font sizes, margins, padding, widths, etc.",
		InputSchema: objectSchema(map[string]any{
			"selector_hint": stringProperty(`Description of the element (e.g., "main heading", "body text", "container")`),
			"property":      stringProperty("CSS property name (e.g., font-size, margin, padding, width)"),
			"old_value":     stringProperty("Current value to find"),
			"new_value":     stringProperty("New value to set"),
		}, "property", "new_value"),
	},
	{
		Name:        ToolChangeImage,
		Description: `Change or replace an image in the HTML. Look for existing image src URLs to replace. When user says "add image in the header", find the header section's existing image and replace its URL. Only use when user explicitly requests an image change.`,
		InputSchema: objectSchema(map[string]any{
			"old_src": stringProperty("Current image URL or filename to find in the HTML"),
			"new_src": stringProperty("New image URL to replace it with"),
		}, "old_src", "new_src"),
	},
	{
		Name:        ToolChangeLink,
		Description: "Change a link URL (href) in the HTML.",
		InputSchema: objectSchema(map[string]any{
			"old_href": stringProperty("Current link URL to find"),
			"new_href": stringProperty("New link URL"),
		}, "old_href", "new_href"),
	},
	{
		Name:        ToolInsertIcon,
		Description: "Search for and insert an icon from Noun Project. ONLY use when user explicitly asks for an icon. Do NOT proactively add icons. Good for: contact info icons (phone, email, location), feature icons (checkmarks, stars), decorative icons when requested.",
		InputSchema: objectSchema(map[string]any{
			"search_query": stringProperty(`Search term for the icon (e.g., "phone", "email", "house", "checkmark")`),
			"color":        stringProperty(`Icon color in hex format without # (e.g., "000000" for black, "ffffff" for white, "ff5500" for orange). Default is black.`),
			"replace_text": stringProperty(`A small piece of text near where the icon should appear. For example, to add icon next to "555-1234", use "555" as replace_text.`),
			"size":         stringProperty(`Icon size (width and height). Default is "24px".`),
		}, "search_query", "replace_text"),
	},
}
