package logging

// MaxLoggedTextLength caps user-supplied text (cell contents, request bodies)
// in non-debug log lines.
const MaxLoggedTextLength = 48

// FormatText prepares user-supplied text for a log line. At DEBUG level the
// text is returned in full; otherwise it is cut to MaxLoggedTextLength runes
// with a trailing ellipsis.
func FormatText(text string) string {
	if IsDebugEnabled() {
		return text
	}
	runes := []rune(text)
	if len(runes) <= MaxLoggedTextLength {
		return text
	}
	return string(runes[:MaxLoggedTextLength]) + "…"
}
