package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outfit-assistant/utils"
)

func TestMapHeaderToField(t *testing.T) {
	cases := map[string]string{
		"Event":               "event",
		" Event Type ":        "event",
		"Season":              "season",
		"WEATHER":             "season",
		"Season Name":         "seasonname",
		"Gender":              "gender",
		"Skin Tone":           "skin",
		"Top":                 "topwear",
		"Topwear Link":        "topwear",
		"Bottom Wear":         "bottomwear",
		"Footwear":            "footwear",
		"Shoes":               "footwear",
		"Accessories":         "accessories",
		"Accessory":           "accessories",
		"Notes For Stylist":   "notesforstylist",
		"Image ID":            "imageid",
		"":                    "",
	}
	for in, want := range cases {
		require.Equal(t, want, utils.MapHeaderToField(in), in)
	}
}

func TestMapHeaderToFieldFirstRuleWins(t *testing.T) {
	// "event" is checked before "top"
	require.Equal(t, "event", utils.MapHeaderToField("Event Stop"))
	// "skin" is checked before "top"
	require.Equal(t, "skin", utils.MapHeaderToField("Skin Top Tone"))
}

func TestNormalizeCellValue(t *testing.T) {
	require.Equal(t, "office", utils.NormalizeCellValue("event", "  Office "))
	require.Equal(t, "female", utils.NormalizeCellValue("gender", "FEMALE"))
	require.Equal(t, "https://drive.google.com/uc?export=view&id=AB",
		utils.NormalizeCellValue("topwear", " https://drive.google.com/open?id=AB "))
	require.Equal(t, "Keep Case", utils.NormalizeCellValue("notes", "  Keep Case  "))
}

func TestCapitalizeWords(t *testing.T) {
	require.Equal(t, "Topwear", utils.CapitalizeWords("topwear"))
	require.Equal(t, "Good Morning", utils.CapitalizeWords("good MORNING"))
	require.Equal(t, "", utils.CapitalizeWords(""))
}
