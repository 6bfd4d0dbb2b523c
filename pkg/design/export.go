package design

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/matzehuels/typetonic/pkg/cache"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/observability"
	"github.com/matzehuels/typetonic/pkg/pattern"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
	"github.com/matzehuels/typetonic/pkg/render/board/sink"
)

// Export formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists the supported export formats.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON}

const artifactTTL = 10 * time.Minute

// Export renders the current design. The design is snapshotted first, so
// edits made while rendering do not leak into the artifact, and a failed
// export leaves the design untouched. Results are memoized per snapshot.
func (s *Session) Export(ctx context.Context, format string) ([]byte, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.design == nil {
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeInvalidInput, "no design to export")
	}
	d, l := *s.design, s.layout
	s.mu.Unlock()

	hooks := observability.Design()
	hooks.OnExportStart(ctx, format)
	start := time.Now()

	key, keyErr := s.artifactKey(d, l, format)
	if keyErr == nil {
		if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			hooks.OnExportComplete(ctx, format, len(data), time.Since(start), nil)
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := s.render(d, l, format)
	hooks.OnExportComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		s.logger.Warn("export failed", "format", format, "err", err)
		return nil, err
	}

	if keyErr == nil {
		if err := s.cache.Set(ctx, key, data, artifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	s.logger.Debug("exported design", "id", d.ID, "format", format, "bytes", len(data))
	return data, nil
}

func (s *Session) render(d Design, l layout.Layout, format string) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, errors.New(errors.ErrCodeExportFailure, "render %s panicked: %v", format, r)
		}
	}()

	switch format {
	case FormatSVG:
		opts := []sink.SVGOption{sink.WithStyle(s.style), sink.WithTitle(d.Keyboard)}
		if s.embedFont {
			opts = append(opts, sink.WithEmbeddedFont())
		}
		return sink.RenderSVG(l, opts...), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithPNGStyle(s.style), sink.WithScale(s.pngScale))
	case FormatJSON:
		data, err := sink.RenderJSON(l, sink.WithJSONStyle(s.styleName), sink.WithJSONPattern(d.Resolved, d.EngineVersion, d.Seed))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeExportFailure, err, "encode json")
		}
		return data, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

type snapshot struct {
	Keyboard string       `json:"keyboard"`
	Pattern  pattern.ID   `json:"pattern"`
	Seed     uint64       `json:"seed"`
	Grid     pattern.Grid `json:"grid"`
	Unit     float64      `json:"unit"`
	Spacing  float64      `json:"spacing"`
	Radius   float64      `json:"radius"`
	Padding  float64      `json:"padding"`
}

func (s *Session) artifactKey(d Design, l layout.Layout, format string) (string, error) {
	data, err := json.Marshal(snapshot{
		Keyboard: d.Keyboard, Pattern: d.Resolved, Seed: d.Seed, Grid: d.Grid,
		Unit: l.Unit, Spacing: l.Spacing, Radius: l.Radius, Padding: l.Padding,
	})
	if err != nil {
		return "", err
	}
	opts := cache.ArtifactKeyOpts{Format: format, Style: s.styleName}
	if format == FormatPNG {
		opts.Scale = s.pngScale
	}
	if format == FormatSVG && s.embedFont {
		opts.Style += "+font"
	}
	return s.keyer.ArtifactKey(cache.Hash(data), opts), nil
}
