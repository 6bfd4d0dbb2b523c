package design

import (
	"time"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/pattern"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
)

// Design is a generated keyboard coloring.
type Design struct {
	ID            string         `json:"id"`
	Keyboard      string         `json:"keyboard"`
	Palette       colors.Palette `json:"palette"`
	Pattern       pattern.ID     `json:"pattern"`  // as requested
	Resolved      pattern.ID     `json:"resolved"` // variant that actually ran
	EngineVersion string         `json:"engine_version"`
	Seed          uint64         `json:"seed"`
	Grid          pattern.Grid   `json:"grid"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Request asks for a new design.
type Request struct {
	Keyboard string
	Palette  colors.Palette
	Pattern  pattern.ID

	// Seed for the random and theme variants. Zero picks a fresh seed, which
	// is recorded in the resulting Design.
	Seed uint64
}

// Result is delivered once per started generation.
type Result struct {
	Design Design
	Layout layout.Layout
	Err    error

	// Stale is set when the selection was cleared while this generation
	// was running; the result was not installed as the current design.
	Stale bool
}
