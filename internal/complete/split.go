package complete

import "strings"

// Split separates text into the lead kept verbatim and the trailing fragment
// being completed. The lead includes the last space, so lead+fragment == text.
func Split(text string) (lead, fragment string) {
	if text == "" {
		return "", ""
	}
	if strings.HasSuffix(text, " ") {
		return text, ""
	}
	i := strings.LastIndex(text, " ")
	if i < 0 {
		return "", text
	}
	return text[:i+1], text[i+1:]
}
