package utils

import (
	"regexp"
	"strings"

	"outfit-assistant/models"
)

// Keywords are checked in order; the first one contained in the message wins
var (
	eventKeywords  = []string{"office", "trip", "marriage", "party"}
	genderKeywords = []string{"female", "male"}
	skinKeywords   = []string{"fair", "medium", "dark"}
	greetings      = []string{"hi", "hello", "hey", "good morning", "good evening"}
)

var (
	dateRegex       = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	cityRegex       = regexp.MustCompile(`(?i)\b(?:in|at)\s+([A-Za-z ]+?)(?:\s+(?:on\b|\d{4}-\d{2}-\d{2}\b)|$)`)
	trailingOnRegex = regexp.MustCompile(`(?i)\s+on$`)
)

func firstContained(text string, keywords []string) string {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return k
		}
	}
	return ""
}

// ExtractCity returns the place name following "in" or "at", or "" when none is found.
// Example: "party in New Delhi on 2024-03-10" -> "New Delhi"
func ExtractCity(text string) string {
	if text == "" {
		return ""
	}
	m := cityRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return trailingOnRegex.ReplaceAllString(strings.TrimSpace(m[1]), "")
}

// ParseUserInput extracts event, gender, skin tone, date and city from a chat message
// using keyword containment. Missing fields are left empty.
func ParseUserInput(message string) models.ChatIntent {
	if message == "" {
		return models.ChatIntent{}
	}

	low := strings.ToLower(message)
	intent := models.ChatIntent{
		Event:  firstContained(low, eventKeywords),
		Gender: firstContained(low, genderKeywords),
		Skin:   firstContained(low, skinKeywords),
		City:   ExtractCity(message),
	}
	if m := dateRegex.FindStringSubmatch(message); m != nil {
		intent.Date = m[1]
	}
	return intent
}

// IsGreeting reports whether the whole message is a plain greeting
func IsGreeting(message string) bool {
	low := strings.ToLower(strings.TrimSpace(message))
	for _, g := range greetings {
		if low == g {
			return true
		}
	}
	return false
}

// FashionTips returns styling tips triggered by keywords in the message, one per line.
// Returns "" when nothing applies.
func FashionTips(message string) string {
	low := strings.ToLower(message)
	var tips []string
	if strings.Contains(low, "color") && strings.Contains(low, "skin") {
		tips = append(tips,
			"✨ Fair skin: Pastel colors and soft shades look great.",
			"✨ Medium skin: Earthy tones like olive, beige, and warm reds suit well.",
			"✨ Dark skin: Bright colors like royal blue, yellow, fuchsia pop beautifully.",
		)
	}
	if strings.Contains(low, "party") || strings.Contains(low, "wedding") {
		tips = append(tips, "💡 Tip: Add statement accessories for parties or weddings.")
	}
	return strings.Join(tips, "\n")
}
