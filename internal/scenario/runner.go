package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/poker"
)

// Result is the outcome of running one scenario
type Result struct {
	Scenario Scenario
	Hero     poker.Hand
	Villain  poker.Hand
	Winner   string // computed winner: hero, villain or tie
	Pass     bool   // computed winner matches the declared one
}

// Run evaluates the scenarios and checks each outcome against its declared
// winner. Scenarios run concurrently across the given number of workers;
// classification and comparison are pure, so no synchronization is needed
// beyond the result slot per scenario. Results keep the input order.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := runOne(s)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runOne(s Scenario) (Result, error) {
	heroCards, err := poker.ParseCards(s.Hero)
	if err != nil {
		return Result{}, fmt.Errorf("hero hand: %w", err)
	}

	villainCards, err := poker.ParseCards(s.Villain)
	if err != nil {
		return Result{}, fmt.Errorf("villain hand: %w", err)
	}

	hero, err := poker.Select(heroCards)
	if err != nil {
		return Result{}, fmt.Errorf("hero hand: %w", err)
	}

	villain, err := poker.Select(villainCards)
	if err != nil {
		return Result{}, fmt.Errorf("villain hand: %w", err)
	}

	var winner string
	switch {
	case hero.Beats(villain):
		winner = WinnerHero
	case villain.Beats(hero):
		winner = WinnerVillain
	default:
		winner = WinnerTie
	}

	return Result{
		Scenario: s,
		Hero:     hero,
		Villain:  villain,
		Winner:   winner,
		Pass:     winner == s.Winner,
	}, nil
}
