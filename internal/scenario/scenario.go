// Package scenario loads and runs matchup scenario files: named pairs of
// hands with an expected winner, used as fixtures for the classifier.
package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Expected winner values
const (
	WinnerHero    = "hero"
	WinnerVillain = "villain"
	WinnerTie     = "tie"
)

// File represents a parsed scenario file
type File struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario is a single matchup: two hands and the expected outcome
type Scenario struct {
	Name    string `hcl:"name,label"`
	Hero    string `hcl:"hero"`
	Villain string `hcl:"villain"`
	Winner  string `hcl:"winner"`
}

// Load parses a scenario file from disk
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Parse parses scenario file contents from memory
func Parse(filename string, src []byte) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate validates the scenario file
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario must be defined")
	}

	for _, s := range f.Scenarios {
		if s.Hero == "" {
			return fmt.Errorf("scenario %s: hero hand must not be empty", s.Name)
		}
		if s.Villain == "" {
			return fmt.Errorf("scenario %s: villain hand must not be empty", s.Name)
		}
		switch s.Winner {
		case WinnerHero, WinnerVillain, WinnerTie:
		default:
			return fmt.Errorf("scenario %s: invalid winner %q (must be hero, villain or tie)", s.Name, s.Winner)
		}
	}

	return nil
}
