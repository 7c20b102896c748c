package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := []byte(`
scenario "pair beats high card" {
  hero    = "4h Kd 4c"
  villain = "9c Kd 7h"
  winner  = "hero"
}

scenario "suits never break ties" {
  hero    = "Ks 2h 9c"
  villain = "Kd 2s 9d"
  winner  = "tie"
}
`)

	f, err := Parse("matchups.hcl", src)
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 2)

	assert.Equal(t, "pair beats high card", f.Scenarios[0].Name)
	assert.Equal(t, "4h Kd 4c", f.Scenarios[0].Hero)
	assert.Equal(t, WinnerHero, f.Scenarios[0].Winner)
	assert.Equal(t, WinnerTie, f.Scenarios[1].Winner)
}

func TestLoad(t *testing.T) {
	f, err := Load("testdata/matchups.hcl")
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 2)
	assert.Equal(t, "straight flush beats quads", f.Scenarios[1].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.hcl")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "invalid syntax",
			src:  `scenario "broken" {`,
		},
		{
			name: "missing winner",
			src: `
scenario "no winner" {
  hero    = "4h Kd 4c"
  villain = "9c Kd 7h"
}
`,
		},
		{
			name: "invalid winner",
			src: `
scenario "bad winner" {
  hero    = "4h Kd 4c"
  villain = "9c Kd 7h"
  winner  = "dealer"
}
`,
		},
		{
			name: "empty hero hand",
			src: `
scenario "no hero" {
  hero    = ""
  villain = "9c Kd 7h"
  winner  = "villain"
}
`,
		},
		{
			name: "no scenarios",
			src:  ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("matchups.hcl", []byte(tt.src))
			assert.Error(t, err)
		})
	}
}
