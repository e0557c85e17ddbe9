package format

import "strings"

// DisplayText picks the single best display string for a message: the plain
// text body when present, otherwise the HTML body stripped to text, otherwise
// the provider snippet. It never fails; the worst case is an empty string.
func DisplayText(plainText, htmlText, snippet string) string {
	if text := strings.TrimSpace(plainText); text != "" {
		return text
	}
	if strings.TrimSpace(htmlText) != "" {
		if text := HTML2Text(htmlText); text != "" {
			return text
		}
	}
	return snippet
}
