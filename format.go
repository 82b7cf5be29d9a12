package mustache

import "strings"

// FormatProvider is the injected capability (spec §4.6, §9) that turns a
// resolved value and a format specifier string into text. The core never
// implements locale- or type-aware formatting itself.
type FormatProvider interface {
	FormatValue(value any, spec string) (string, error)
}

// formatValue implements spec §4.6 in full: render to string (delegating
// to the format provider when a format spec is present), then apply
// alignment padding. Per spec §4.5, a null value always renders as the
// empty string, bypassing the format provider and alignment entirely.
func formatValue(value any, alignment int, hasAlign bool, format string, hasFormat bool, provider FormatProvider) (string, error) {
	if resolved(value) == nil {
		return "", nil
	}
	text := naturalString(value)
	if hasFormat {
		if provider == nil {
			provider = DefaultFormatProvider{}
		}
		formatted, err := provider.FormatValue(resolved(value), format)
		if err != nil {
			return "", err
		}
		text = formatted
	}
	if hasAlign && alignment != 0 {
		text = align(text, alignment)
	}
	return text, nil
}

// align implements spec §4.6 step 2: positive pads with leading spaces
// (right-align), negative pads with trailing spaces (left-align), and
// padding is only applied when |a| exceeds the text's length.
func align(text string, a int) string {
	width := a
	if width < 0 {
		width = -width
	}
	if width <= len(text) {
		return text
	}
	pad := strings.Repeat(" ", width-len(text))
	if a < 0 {
		return text + pad
	}
	return pad + text
}
