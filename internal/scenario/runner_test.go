package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	scenarios := []Scenario{
		{
			Name:    "straight flush beats quads",
			Hero:    "2h 3h 4h 5h 6h",
			Villain: "Ah Ad As Ac Kh",
			Winner:  WinnerHero,
		},
		{
			Name:    "flush beats straight",
			Hero:    "2h 3d 4s 5c 6c",
			Villain: "2s Ts 4s 9s Qs",
			Winner:  WinnerVillain,
		},
		{
			Name:    "full house triplet decides",
			Hero:    "2h 2c 7h 7d 7s",
			Villain: "Ah Ac 8h 8d 8s",
			Winner:  WinnerVillain,
		},
		{
			Name:    "equal pairs tie",
			Hero:    "9h 9c Kd",
			Villain: "9s 9d Kh",
			Winner:  WinnerTie,
		},
		{
			Name:    "deliberately wrong expectation",
			Hero:    "4h Kd 4c",
			Villain: "9c Kd 7h",
			Winner:  WinnerVillain,
		},
	}

	results, err := Run(context.Background(), scenarios, 4)
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))

	// Results keep the input order
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
	}

	assert.True(t, results[0].Pass)
	assert.True(t, results[1].Pass)
	assert.True(t, results[2].Pass)
	assert.True(t, results[3].Pass)
	assert.Equal(t, WinnerTie, results[3].Winner)

	assert.False(t, results[4].Pass)
	assert.Equal(t, WinnerHero, results[4].Winner)
	assert.Equal(t, "Pair of Fours", results[4].Hero.String())
}

func TestRunInvalidHand(t *testing.T) {
	scenarios := []Scenario{
		{
			Name:    "unparseable hero",
			Hero:    "Xx Yy",
			Villain: "9c Kd 7h",
			Winner:  WinnerVillain,
		},
	}

	_, err := Run(context.Background(), scenarios, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable hero")
}

func TestRunSingleWorker(t *testing.T) {
	scenarios := []Scenario{
		{Name: "only one", Hero: "4h Kd 4c", Villain: "9c Kd 7h", Winner: WinnerHero},
	}

	results, err := Run(context.Background(), scenarios, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Pass)
}
