package models

// UserProfile is the personalization input supplied by the caller.
// The search core never builds or stores one; see services.BehaviorTracker.
type UserProfile struct {
	Interests           map[string]int
	PreferredTypes      []string
	PreferredLocations  []string
	PreferredIndustries []string
	RecentSearches      []string
}

func (p UserProfile) IsEmpty() bool {
	return len(p.Interests) == 0 &&
		len(p.PreferredTypes) == 0 &&
		len(p.PreferredLocations) == 0 &&
		len(p.PreferredIndustries) == 0 &&
		len(p.RecentSearches) == 0
}
