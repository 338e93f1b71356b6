package customize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxTokens bounds the rewritten document.
const MaxTokens = 8000

const minimumOutputLength = 50

type Field struct {
	FieldKey  string `json:"field_key"`
	Label     string `json:"label"`
	FieldType string `json:"field_type"`
}

type Request struct {
	HtmlContent string            `json:"htmlContent"`
	Fields      []Field           `json:"fields"`
	Values      map[string]string `json:"values"`
	UserPrompt  string            `json:"userPrompt"`
}

// FieldDescriptions lists every field that has a value, one per line.
func FieldDescriptions(fields []Field, values map[string]string) string {
	var lines []string
	for _, f := range fields {
		value := values[f.FieldKey]
		if value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(`- %s (%s, type: %s): "%s"`, f.Label, f.FieldKey, f.FieldType, value))
	}
	return strings.Join(lines, "\n")
}

func BuildPrompt(html string, fieldDescriptions string, userPrompt string) string {
	var sb strings.Builder
	sb.WriteString(`You are an HTML template customization expert. Your task is to intelligently modify an HTML template by replacing appropriate content with the provided field values.

Here is the HTML template:
<template>
`)
	sb.WriteString(html)
	sb.WriteString("\n</template>")

	if fieldDescriptions != "" {
		sb.WriteString("\n\nHere are the field values to incorporate:\n")
		sb.WriteString(fieldDescriptions)
	}

	if userPrompt != "" {
		sb.WriteString("\n\nIMPORTANT - User's additional instructions:\n\"")
		sb.WriteString(userPrompt)
		sb.WriteString("\"\n\nYou MUST follow these additional instructions while making the modifications.")
	}

	sb.WriteString(`

Instructions:
1. Analyze the HTML template and identify where each field value should be placed
2. Replace appropriate text content with the provided values
3. Be intelligent about placement - for example:
   - Agent/company names should replace existing names or go in contact sections
   - Phone numbers should replace existing phone numbers
   - Emails should replace existing emails
   - Headlines/titles should replace existing headlines
   - Descriptions should replace appropriate descriptive text
4. For COLOR type fields: Apply the color value to appropriate CSS styles in the HTML. Look for:
   - Accent colors, borders, backgrounds, or text colors that should use this color
   - Replace existing color values in inline styles or style blocks
   - The field_key name often hints at what should be colored (e.g., "accent_color", "primary_color", "header_color")
5. Maintain the HTML structure and styling
6. Only replace content that makes sense for each field type
7. If a field doesn't have an obvious place, find the most appropriate location or add it to a contact/footer section
`)
	if userPrompt != "" {
		sb.WriteString("8. CRITICALLY IMPORTANT: Apply the user's additional instructions to enhance or modify the content as they requested")
	}
	sb.WriteString("\n\nReturn ONLY the modified HTML, nothing else. No explanations, no markdown code blocks, just the raw HTML.")

	return sb.String()
}

// CleanOutput strips markdown fences from the model output. Output that is too short to be a
// document yields the original html.
func CleanOutput(output string, original string) string {
	cleaned := strings.TrimSpace(output)

	if strings.HasPrefix(cleaned, "```html") {
		cleaned = cleaned[len("```html"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) < minimumOutputLength {
		return original
	}

	return cleaned
}

// CacheKey identifies a request by the hash of its canonical json encoding.
func CacheKey(provider string, request Request) (string, error) {
	canonical, err := json.Marshal(struct {
		Provider string  `json:"provider"`
		Request  Request `json:"request"`
	}{
		Provider: provider,
		Request:  request,
	})
	if err != nil {
		return "", fmt.Errorf("encoding customize request: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return "ai:customize:" + hex.EncodeToString(sum[:]), nil
}
