package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRunRe = regexp.MustCompile(`\d+`)
	// Bundle labels embed a parenthesized channel count, e.g. "Комфорт (120 каналов)".
	bundleLabelRe = regexp.MustCompile(`([\s\S]*?)\s*\((\d+)[\s\S]*\)`)
)

// extractLeadingDigits returns the first run of decimal digits found in
// text, parsed as an integer. ok is false when text contains no digits.
func extractLeadingDigits(text string) (int, bool) {
	m := digitRunRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitBundleLabel splits a bundle label into its base name and channel
// count. ok is false when the label has no parenthesized digit group.
func splitBundleLabel(label string) (string, int, bool) {
	m := bundleLabelRe.FindStringSubmatch(label)
	if m == nil {
		return "", 0, false
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(m[1]), count, true
}

// firstToken returns the first whitespace-delimited token of text, or ""
// if text is blank.
func firstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
