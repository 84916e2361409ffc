package valueobject

// League is a named rank bucket reached once lifetime XP meets MinXP.
type League struct {
	Name  string `json:"name"`
	MinXP int    `json:"min_xp"`
}

// DefaultLeagues is the tier table sorted ascending by threshold.
var DefaultLeagues = []League{
	{Name: "Bronze", MinXP: 0},
	{Name: "Prata", MinXP: 500},
	{Name: "Ouro", MinXP: 1500},
	{Name: "Platina", MinXP: 3000},
	{Name: "Diamante", MinXP: 6000},
	{Name: "Lenda", MinXP: 10000},
}

// LeagueFor returns the highest tier whose threshold does not exceed totalXP.
// Values below the first threshold resolve to the lowest tier.
func LeagueFor(tiers []League, totalXP int) League {
	if len(tiers) == 0 {
		return League{}
	}
	current := tiers[0]
	for _, tier := range tiers[1:] {
		if tier.MinXP > totalXP {
			break
		}
		current = tier
	}
	return current
}

// NextLeague returns the tier after current and whether one exists.
func NextLeague(tiers []League, current League) (League, bool) {
	for i, tier := range tiers {
		if tier.Name == current.Name && i+1 < len(tiers) {
			return tiers[i+1], true
		}
	}
	return League{}, false
}
