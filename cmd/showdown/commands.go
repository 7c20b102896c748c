package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/scenario"
	"github.com/lox/showdown/poker"
)

var (
	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	handStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

type ClassifyCmd struct {
	Cards string `arg:"" help:"Cards to classify, e.g. 'As Ks Qs Js Ts'"`
}

func (c *ClassifyCmd) Run() error {
	hand, err := selectHand(c.Cards)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", categoryStyle.Render(hand.Category().String()), handStyle.Render(hand.String()))
	return nil
}

type CompareCmd struct {
	Hero    string `arg:"" help:"First hand, e.g. '4h Kd 4c'"`
	Villain string `arg:"" help:"Second hand, e.g. '9c Kd 7h'"`
}

func (c *CompareCmd) Run() error {
	hero, err := selectHand(c.Hero)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}

	villain, err := selectHand(c.Villain)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	fmt.Printf("1: %s\n", handStyle.Render(hero.String()))
	fmt.Printf("2: %s\n", handStyle.Render(villain.String()))

	switch {
	case hero.Beats(villain):
		fmt.Println(winStyle.Render("Hand 1 wins"))
	case villain.Beats(hero):
		fmt.Println(winStyle.Render("Hand 2 wins"))
	default:
		fmt.Println(tieStyle.Render("Hands tie"))
	}
	return nil
}

type ScenariosCmd struct {
	File    string `arg:"" type:"existingfile" help:"HCL scenario file to run"`
	Workers int    `short:"w" default:"4" help:"Number of concurrent workers"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *ScenariosCmd) Run() error {
	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}

	file, err := scenario.Load(c.File)
	if err != nil {
		return err
	}
	log.Debug("Loaded scenario file", "file", c.File, "scenarios", len(file.Scenarios))

	results, err := scenario.Run(context.Background(), file.Scenarios, c.Workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Pass {
			fmt.Printf("%s %s\n", winStyle.Render("PASS"), r.Scenario.Name)
		} else {
			failed++
			fmt.Printf("%s %s\n", failStyle.Render("FAIL"), r.Scenario.Name)
			fmt.Printf("     hero:    %s\n", handStyle.Render(r.Hero.String()))
			fmt.Printf("     villain: %s\n", handStyle.Render(r.Villain.String()))
			fmt.Printf("     expected %s, got %s\n", r.Scenario.Winner, r.Winner)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}

	log.Info("All scenarios passed", "scenarios", len(results))
	return nil
}

func selectHand(s string) (poker.Hand, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return poker.Hand{}, err
	}
	return poker.Select(cards)
}
