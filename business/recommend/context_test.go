package recommend

import (
	"testing"
	"time"

	"africahub/domain"
)

func TestBuildContextKnownCountry(t *testing.T) {
	profile := domain.UserProfile{
		UserID:  "u1",
		Country: "Kenya",
		Preferences: []domain.ProfilePreference{
			{InsuranceType: "auto", BudgetRange: "low"},
		},
	}
	now := time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)

	factors := BuildContext(profile, now)

	if factors.Country != "Kenya" {
		t.Errorf("Country = %q, want Kenya", factors.Country)
	}
	if len(factors.LocalPreferences) == 0 || factors.LocalPreferences[0] != "mobile_payments" {
		t.Errorf("LocalPreferences = %v, want Kenya market traits", factors.LocalPreferences)
	}
	if factors.TimeOfDay != "morning" {
		t.Errorf("TimeOfDay = %q, want morning", factors.TimeOfDay)
	}
	if factors.Season != "hot" {
		t.Errorf("Season = %q, want hot", factors.Season)
	}
	if factors.BudgetCategory != "low" {
		t.Errorf("BudgetCategory = %q, want low", factors.BudgetCategory)
	}
}

func TestBuildContextUnknownCountryFallsBack(t *testing.T) {
	profile := domain.UserProfile{UserID: "u1", Country: "Atlantis"}
	now := time.Date(2026, time.July, 1, 23, 0, 0, 0, time.UTC)

	factors := BuildContext(profile, now)

	if len(factors.LocalPreferences) != len(defaultLocalPreferences) {
		t.Errorf("LocalPreferences = %v, want defaults", factors.LocalPreferences)
	}
	if factors.BudgetCategory != "medium" {
		t.Errorf("BudgetCategory = %q, want medium default", factors.BudgetCategory)
	}
}

func TestTimeOfDayBands(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "night"},
		{5, "night"},
		{6, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{23, "evening"},
	}

	for _, tt := range tests {
		got := timeOfDay(time.Date(2026, time.May, 1, tt.hour, 0, 0, 0, time.UTC))
		if got != tt.want {
			t.Errorf("timeOfDay(hour %d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestSeasonBands(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.December, "hot"},
		{time.February, "hot"},
		{time.March, "long_rains"},
		{time.May, "long_rains"},
		{time.June, "cool"},
		{time.August, "cool"},
		{time.September, "short_rains"},
		{time.November, "short_rains"},
	}

	for _, tt := range tests {
		got := season(time.Date(2026, tt.month, 15, 12, 0, 0, 0, time.UTC))
		if got != tt.want {
			t.Errorf("season(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}
