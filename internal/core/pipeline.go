package core

import (
	"github.com/hvpaiva/tardis-cli/internal/clock"
)

// Input is one invocation's worth of parsed user input: the raw
// expression plus the override tiers, captured once and never re-read.
type Input struct {
	Expression string
	CLI        Overrides
	Env        Overrides
}

// Pipeline sequences resolution, interpretation, and rendering for a
// single invocation. It holds only its injected collaborators and is
// safe to run repeatedly; identical inputs under a fixed clock produce
// identical output.
type Pipeline struct {
	parser Parser
	clock  clock.Clock
}

// New returns a Pipeline using the given parsing capability and
// reference clock.
func New(parser Parser, clk clock.Clock) *Pipeline {
	return &Pipeline{parser: parser, clock: clk}
}

// Run executes one resolve-and-render transaction, short-circuiting on
// the first classified error. The reference clock is queried exactly
// once, so every relative sub-computation within the expression observes
// the same anchor.
func (p *Pipeline) Run(in Input, def Defaults) (string, error) {
	settings, err := ResolveSettings(in.CLI, in.Env, def)
	if err != nil {
		return "", err
	}

	anchor := p.clock.Now().In(settings.Location)

	instant, err := Interpret(p.parser, in.Expression, anchor)
	if err != nil {
		return "", err
	}

	return Render(instant, settings)
}
