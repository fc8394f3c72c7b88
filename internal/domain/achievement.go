package domain

// Achievement is a tier of completion derived from visit count against
// the total number of booths. Tiers are independent thresholds; a
// visitor above 80% holds all four.
type Achievement struct {
	Level    string `json:"level"`
	Name     string `json:"name"`
	Visited  int    `json:"visited"`
	Required int    `json:"required"`
}

// ComputeAchievements returns every unlocked tier for the given counts.
// Thresholds round up, so with 10 booths Bronze needs 3 visits, not 2.
func ComputeAchievements(visitedCount, totalBooths int) []Achievement {
	if totalBooths <= 0 {
		return nil
	}

	tiers := []struct {
		level    string
		name     string
		required int
	}{
		{"Bronze", "Bronze Explorer", ceilDiv(totalBooths, 4)},
		{"Silver", "Silver Pioneer", ceilDiv(totalBooths, 2)},
		{"Gold", "Gold Champion", ceilDiv(totalBooths*3, 4)},
		{"Platinum", "Platinum Master", ceilDiv(totalBooths*4, 5)},
	}

	var achievements []Achievement
	for _, tier := range tiers {
		if visitedCount >= tier.required {
			achievements = append(achievements, Achievement{
				Level:    tier.level,
				Name:     tier.name,
				Visited:  visitedCount,
				Required: tier.required,
			})
		}
	}

	return achievements
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
