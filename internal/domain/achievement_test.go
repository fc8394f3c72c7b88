package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels(achievements []Achievement) []string {
	result := make([]string, 0, len(achievements))
	for _, a := range achievements {
		result = append(result, a.Level)
	}

	return result
}

func TestComputeAchievements(t *testing.T) {
	tests := []struct {
		name         string
		visitedCount int
		totalBooths  int
		wantLevels   []string
	}{
		{"no booths", 5, 0, nil},
		{"negative booths", 5, -1, nil},
		{"no visits", 0, 10, []string{}},
		{"below bronze", 2, 10, []string{}},
		{"bronze at threshold", 3, 10, []string{"Bronze"}},
		{"bronze and silver", 5, 10, []string{"Bronze", "Silver"}},
		{"gold and platinum share threshold", 8, 10, []string{"Bronze", "Silver", "Gold", "Platinum"}},
		{"all booths visited", 10, 10, []string{"Bronze", "Silver", "Gold", "Platinum"}},
		{"single booth event", 1, 1, []string{"Bronze", "Silver", "Gold", "Platinum"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAchievements(tt.visitedCount, tt.totalBooths)

			if tt.wantLevels == nil {
				assert.Nil(t, got)

				return
			}

			assert.Equal(t, tt.wantLevels, levels(got))
		})
	}
}

func TestComputeAchievements_NamesAndRequirements(t *testing.T) {
	got := ComputeAchievements(10, 10)
	require.Len(t, got, 4)

	assert.Equal(t, "Bronze Explorer", got[0].Name)
	assert.Equal(t, 3, got[0].Required)
	assert.Equal(t, "Silver Pioneer", got[1].Name)
	assert.Equal(t, 5, got[1].Required)
	assert.Equal(t, "Gold Champion", got[2].Name)
	assert.Equal(t, 8, got[2].Required)
	assert.Equal(t, "Platinum Master", got[3].Name)
	assert.Equal(t, 8, got[3].Required)
}
