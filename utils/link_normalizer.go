package utils

import (
	"regexp"
	"strings"
)

const driveViewURL = "https://drive.google.com/uc?export=view&id="

var (
	hyperlinkURLRegex = regexp.MustCompile(`"(https?://[^"]+)"`)

	// Checked in order; the first match wins
	driveLinkRegexes = []*regexp.Regexp{
		regexp.MustCompile(`drive\.google\.com/file/d/([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`drive\.google\.com/open\?id=([A-Za-z0-9_-]+)`),
		regexp.MustCompile(`drive\.google\.com/uc\?id=([A-Za-z0-9_-]+)`),
	}
)

// NormalizeLink converts a raw spreadsheet cell into a directly fetchable image URL.
// It unwraps =HYPERLINK("...") formulas, rewrites Google Drive share links to the
// uc?export=view form and Dropbox ?dl=0 links to ?raw=1.
// Anything else is returned trimmed but otherwise unchanged.
func NormalizeLink(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}

	if strings.HasPrefix(strings.ToLower(u), "=hyperlink") {
		if m := hyperlinkURLRegex.FindStringSubmatch(u); m != nil {
			u = m[1]
		}
	}

	for _, re := range driveLinkRegexes {
		if m := re.FindStringSubmatch(u); m != nil {
			return driveViewURL + m[1]
		}
	}

	if strings.Contains(u, "dropbox.com") && strings.Contains(u, "?dl=0") {
		return strings.Replace(u, "?dl=0", "?raw=1", 1)
	}

	return u
}

// IsPlaceholderLink reports whether an image cell carries no usable link.
// Spreadsheets often keep the literal word "link" in unfilled cells.
func IsPlaceholderLink(link string) bool {
	l := strings.TrimSpace(link)
	return l == "" || strings.EqualFold(l, "link")
}
