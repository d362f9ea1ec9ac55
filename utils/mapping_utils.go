package utils

import (
	"strings"

	"outfit-assistant/models"
)

// headerRule maps a header to a canonical field when match returns true
type headerRule struct {
	field string
	match func(h string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(h string) bool {
		for _, s := range subs {
			if strings.Contains(h, s) {
				return true
			}
		}
		return false
	}
}

func equalsAny(values ...string) func(string) bool {
	return func(h string) bool {
		for _, v := range values {
			if h == v {
				return true
			}
		}
		return false
	}
}

// Order matters: "top" must be checked after "event"/"gender"/"skin"
var headerRules = []headerRule{
	{models.FieldEvent, containsAny("event")},
	{models.FieldSeason, equalsAny("season", "weather")},
	{models.FieldGender, containsAny("gender")},
	{models.FieldSkin, containsAny("skin")},
	{models.FieldTopwear, containsAny("top")},
	{models.FieldBottomwear, containsAny("bottom")},
	{models.FieldFootwear, containsAny("foot", "shoe")},
	{models.FieldAccessories, containsAny("accessor")},
}

// MapHeaderToField maps a raw column header to its canonical catalog key.
// Input is trimmed and lowercased before mapping.
// Headers with no canonical match are returned lowercased with spaces removed.
func MapHeaderToField(raw string) string {
	h := strings.ToLower(strings.TrimSpace(raw))
	if h == "" {
		return ""
	}

	for _, rule := range headerRules {
		if rule.match(h) {
			return rule.field
		}
	}

	return strings.ReplaceAll(h, " ", "")
}

// IsImageField reports whether key holds an outfit image link
func IsImageField(key string) bool {
	switch key {
	case models.FieldTopwear, models.FieldBottomwear, models.FieldFootwear, models.FieldAccessories:
		return true
	}
	return false
}

// IsFilterField reports whether key is one of the matcher filter columns
func IsFilterField(key string) bool {
	switch key {
	case models.FieldEvent, models.FieldSeason, models.FieldGender, models.FieldSkin:
		return true
	}
	return false
}

// NormalizeCellValue canonicalizes a cell value for the given canonical key:
// image links are normalized, filter values are lowercased, everything is trimmed
func NormalizeCellValue(key, raw string) string {
	value := strings.TrimSpace(raw)
	switch {
	case IsImageField(key):
		return NormalizeLink(value)
	case IsFilterField(key):
		return strings.ToLower(value)
	default:
		return value
	}
}

// NormalizeFilterValue lowercases and trims a query filter value
func NormalizeFilterValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CapitalizeWords capitalizes the first letter of each word
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
