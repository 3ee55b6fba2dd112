package recommend

import (
	"time"

	"africahub/domain"
)

// ContextualFactors are derived from the profile and wall-clock time only.
type ContextualFactors struct {
	Country          string
	LocalPreferences []string
	TimeOfDay        string
	Season           string
	BudgetCategory   string
}

// localPreferences maps a country to the product traits its market favors.
var localPreferences = map[string][]string{
	"Nigeria":      {"mobile_payments", "microinsurance", "family_coverage"},
	"Kenya":        {"mobile_payments", "agricultural_coverage", "sacco_savings"},
	"Ghana":        {"mobile_payments", "education_savings", "family_coverage"},
	"Senegal":      {"microinsurance", "remittance_friendly", "family_coverage"},
	"South Africa": {"comprehensive_coverage", "investment_linked", "vehicle_tracking"},
	"Egypt":        {"family_coverage", "travel_coverage", "installment_friendly"},
	"Morocco":      {"travel_coverage", "remittance_friendly", "installment_friendly"},
	"Ivory Coast":  {"mobile_payments", "microinsurance", "remittance_friendly"},
}

var defaultLocalPreferences = []string{"mobile_payments", "family_coverage"}

// BuildContext is a pure function of the user profile and the clock. No
// state, no side effects, no error paths.
func BuildContext(profile domain.UserProfile, now time.Time) ContextualFactors {
	prefs, ok := localPreferences[profile.Country]
	if !ok {
		prefs = defaultLocalPreferences
	}

	budget := "medium"
	if len(profile.Preferences) > 0 && profile.Preferences[0].BudgetRange != "" {
		budget = profile.Preferences[0].BudgetRange
	}

	return ContextualFactors{
		Country:          profile.Country,
		LocalPreferences: prefs,
		TimeOfDay:        timeOfDay(now),
		Season:           season(now),
		BudgetCategory:   budget,
	}
}

func timeOfDay(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 6:
		return "night"
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// season buckets the calendar into four 3-month bands.
func season(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return "hot"
	case time.March, time.April, time.May:
		return "long_rains"
	case time.June, time.July, time.August:
		return "cool"
	default:
		return "short_rains"
	}
}
