package design

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/typetonic/pkg/cache"
	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/observability"
	"github.com/matzehuels/typetonic/pkg/pattern"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
	"github.com/matzehuels/typetonic/pkg/render/board/styles"
)

// EngineFactory builds the pattern engine for one generation.
type EngineFactory func(seed uint64) *pattern.Engine

// Session owns the current design of one user. It allows a single
// generation in flight at a time.
type Session struct {
	mu         sync.Mutex
	generating bool
	epoch      uint64
	design     *Design
	layout     layout.Layout

	catalog    *keyboard.Catalog
	newEngine  EngineFactory
	minLatency time.Duration
	geometry   []layout.Option
	style      styles.Style
	styleName  string
	pngScale   float64
	embedFont  bool
	cache      cache.Cache
	keyer      cache.Keyer
	logger     *log.Logger
	now        func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithCatalog sets the keyboard catalog. Defaults to [keyboard.DefaultCatalog].
func WithCatalog(c *keyboard.Catalog) Option { return func(s *Session) { s.catalog = c } }

// WithEngine sets the engine factory.
func WithEngine(f EngineFactory) Option { return func(s *Session) { s.newEngine = f } }

// WithStripeWidth uses the default engine with the given stripe width.
func WithStripeWidth(w int) Option {
	return func(s *Session) {
		s.newEngine = func(seed uint64) *pattern.Engine {
			return pattern.New(pattern.WithSeed(seed), pattern.WithStripeWidth(w))
		}
	}
}

// WithMinLatency makes every generation take at least d.
func WithMinLatency(d time.Duration) Option { return func(s *Session) { s.minLatency = d } }

// WithGeometry passes layout options (unit, spacing, radius) to every build.
func WithGeometry(opts ...layout.Option) Option {
	return func(s *Session) { s.geometry = append(s.geometry, opts...) }
}

// WithStyle selects the export style by name.
func WithStyle(name string) Option { return func(s *Session) { s.styleName = name } }

// WithPNGScale sets the raster export scale.
func WithPNGScale(scale float64) Option { return func(s *Session) { s.pngScale = scale } }

// WithEmbeddedFont embeds the label font in SVG exports.
func WithEmbeddedFont(on bool) Option { return func(s *Session) { s.embedFont = on } }

// WithCache memoizes exports in c.
func WithCache(c cache.Cache) Option { return func(s *Session) { s.cache = c } }

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// New creates a session. It fails only for an unknown style name.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		catalog: keyboard.DefaultCatalog(),
		newEngine: func(seed uint64) *pattern.Engine {
			return pattern.New(pattern.WithSeed(seed))
		},
		pngScale: 2.0,
		cache:    cache.NewNullCache(),
		keyer:    cache.NewDefaultKeyer(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	style, err := styles.Lookup(s.styleName)
	if err != nil {
		return nil, err
	}
	s.style = style
	if s.styleName == "" {
		s.styleName = styles.NameSimple
	}
	return s, nil
}

// Catalog returns the keyboard catalog the session resolves names against.
func (s *Session) Catalog() *keyboard.Catalog { return s.catalog }

// Start begins a generation and returns a channel that receives exactly one
// Result. Invalid requests fail synchronously with an invalid-input error;
// a second Start while one is in flight fails with GENERATION_BUSY.
//
// Once started, a generation always runs to completion. ctx is only checked
// before starting.
func (s *Session) Start(ctx context.Context, req Request) (<-chan Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kb, err := s.catalog.Lookup(req.Keyboard)
	if err != nil {
		return nil, err
	}
	if err := req.Palette.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeGenerationBusy, "a design is already being generated")
	}
	s.generating = true
	epoch := s.epoch
	s.mu.Unlock()

	req.Palette = req.Palette.Clone()
	if req.Seed == 0 {
		req.Seed = rand.Uint64() | 1
	}

	ch := make(chan Result, 1)
	go func() {
		var res Result
		defer func() {
			if r := recover(); r != nil {
				res = Result{Err: errors.New(errors.ErrCodeGenerationFailure, "generation panicked: %v", r)}
			}
			res.Stale = !s.finish(epoch, res)
			ch <- res
			close(ch)
		}()
		res = s.generate(ctx, req, kb)
	}()
	return ch, nil
}

// Generate runs a generation and waits for it.
func (s *Session) Generate(ctx context.Context, req Request) (Design, error) {
	ch, err := s.Start(ctx, req)
	if err != nil {
		return Design{}, err
	}
	res := <-ch
	return res.Design, res.Err
}

func (s *Session) generate(ctx context.Context, req Request, kb *keyboard.Layout) Result {
	start := s.now()
	hooks := observability.Design()
	hooks.OnGenerateStart(ctx, kb.Name, string(req.Pattern))

	res := s.build(req, kb)
	if wait := s.minLatency - s.now().Sub(start); wait > 0 {
		time.Sleep(wait)
	}

	elapsed := s.now().Sub(start)
	hooks.OnGenerateComplete(ctx, kb.Name, string(res.Design.Resolved), elapsed, res.Err)
	if res.Err != nil {
		s.logger.Warn("generation failed", "keyboard", kb.Name, "pattern", req.Pattern, "err", res.Err)
	} else {
		s.logger.Debug("generated design", "id", res.Design.ID, "keyboard", kb.Name,
			"pattern", res.Design.Resolved, "seed", res.Design.Seed, "elapsed", elapsed.Round(time.Millisecond))
	}
	return res
}

func (s *Session) build(req Request, kb *keyboard.Layout) Result {
	engine := s.newEngine(req.Seed)
	resolved := engine.Resolve(req.Pattern)
	rows, cols := kb.Dims()
	grid, err := engine.Generate(req.Pattern, req.Palette, rows, cols)
	if err != nil {
		return Result{Err: err}
	}
	l, err := layout.Build(kb, grid, s.geometry...)
	if err != nil {
		return Result{Err: errors.Wrap(errors.ErrCodeGenerationFailure, err, "build layout")}
	}
	return Result{
		Design: Design{
			ID:            uuid.New().String(),
			Keyboard:      kb.Name,
			Palette:       req.Palette,
			Pattern:       req.Pattern,
			Resolved:      resolved,
			EngineVersion: pattern.Version,
			Seed:          req.Seed,
			Grid:          grid,
			CreatedAt:     s.now(),
		},
		Layout: l,
	}
}

// finish clears the in-flight flag and installs a successful result unless
// the session was cleared meanwhile. It reports whether res is current.
func (s *Session) finish(epoch uint64, res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	if epoch != s.epoch {
		return false
	}
	if res.Err == nil {
		d := res.Design
		s.design = &d
		s.layout = res.Layout
	}
	return true
}

// Restore installs a previously exported grid as the current design for the
// named keyboard. It is refused while a generation is in flight.
func (s *Session) Restore(ctx context.Context, keyboardName string, grid pattern.Grid) (Design, error) {
	kb, err := s.catalog.Lookup(keyboardName)
	if err != nil {
		return Design{}, err
	}
	l, err := layout.Build(kb, grid, s.geometry...)
	if err != nil {
		return Design{}, err
	}
	d := Design{
		ID:            uuid.New().String(),
		Keyboard:      kb.Name,
		EngineVersion: pattern.Version,
		Grid:          grid,
		CreatedAt:     s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return Design{}, errors.New(errors.ErrCodeGenerationBusy, "a design is already being generated")
	}
	s.design = &d
	s.layout = l
	s.logger.Debug("restored design", "id", d.ID, "keyboard", kb.Name)
	return d, nil
}

// IsGenerating reports whether a generation is in flight.
func (s *Session) IsGenerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating
}

// Current returns the current design.
func (s *Session) Current() (Design, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.design == nil {
		return Design{}, false
	}
	return *s.design, true
}

// Layout returns the geometry of the current design.
func (s *Session) Layout() (layout.Layout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout, s.design != nil
}

// Clear drops the current design. A generation still in flight completes
// but its result is not installed.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.design = nil
	s.layout = layout.Layout{}
	s.epoch++
}

// Recolor sets the color of the key at grid position (row, col). Only that
// cell changes; repeated edits to the same key keep the last color.
func (s *Session) Recolor(ctx context.Context, row, col int, c colors.Color) (Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.design == nil {
		return Design{}, errors.New(errors.ErrCodeInvalidInput, "no design to recolor")
	}
	l, err := layout.Recolor(s.layout, row, col, c)
	if err != nil {
		return Design{}, err
	}
	d := *s.design
	d.Grid = l.Grid
	s.design = &d
	s.layout = l

	observability.Design().OnRecolor(ctx, row, col, c.Hex())
	s.logger.Debug("recolored key", "row", row, "col", col, "color", c.Hex())
	return d, nil
}
