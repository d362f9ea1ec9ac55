package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"outfit-assistant/models"
	"outfit-assistant/utils"
)

func TestParseUserInput(t *testing.T) {
	got := utils.ParseUserInput("Office party in Mumbai on 2024-03-10 for a female with fair skin")
	require.Equal(t, models.ChatIntent{
		Event:  "office",
		Gender: "female",
		Skin:   "fair",
		Date:   "2024-03-10",
		City:   "Mumbai",
	}, got)
}

func TestParseUserInputKeywordOrder(t *testing.T) {
	got := utils.ParseUserInput("marriage and party outfit, male, dark")
	require.Equal(t, "marriage", got.Event)
	require.Equal(t, "male", got.Gender)
	require.Equal(t, "dark", got.Skin)
	require.Empty(t, got.City)
	require.Empty(t, got.Date)
}

func TestParseUserInputEmpty(t *testing.T) {
	require.Equal(t, models.ChatIntent{}, utils.ParseUserInput(""))
}

func TestExtractCity(t *testing.T) {
	cases := map[string]string{
		"trip at New Delhi":                   "New Delhi",
		"office in Pune on monday":            "Pune",
		"party in Goa 2024-12-31":             "Goa",
		"wedding IN Jaipur":                   "Jaipur",
		"meeting tomorrow":                    "",
		"":                                    "",
	}
	for in, want := range cases {
		require.Equal(t, want, utils.ExtractCity(in), in)
	}
}

func TestIsGreeting(t *testing.T) {
	require.True(t, utils.IsGreeting("Hello"))
	require.True(t, utils.IsGreeting(" good morning "))
	require.False(t, utils.IsGreeting("hello, office outfit please"))
}

func TestFashionTips(t *testing.T) {
	require.Empty(t, utils.FashionTips("office in Delhi"))

	tips := utils.FashionTips("which color suits my skin for a party?")
	require.Contains(t, tips, "Fair skin")
	require.Contains(t, tips, "Dark skin")
	require.Contains(t, tips, "statement accessories")

	require.Equal(t, "💡 Tip: Add statement accessories for parties or weddings.", utils.FashionTips("Wedding look"))
}
