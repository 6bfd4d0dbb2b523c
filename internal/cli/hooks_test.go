package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/typetonic/pkg/errors"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	h.OnGenerateStart(ctx, "Keychron K6", "spiral")
	h.OnGenerateComplete(ctx, "Keychron K6", "spiral", 12*time.Millisecond, nil)
	h.OnGenerateComplete(ctx, "Keychron K6", "", 0, errors.New(errors.ErrCodeGenerationFailure, "boom"))
	h.OnRecolor(ctx, 2, 3, "#ff8800")
	h.OnExportComplete(ctx, "png", 2048, time.Millisecond, nil)
	h.OnCacheHit(ctx, "artifact")

	out := buf.String()
	for _, want := range []string{"generation started", "generation finished", "generation failed", "key recolored", "#ff8800", "export finished", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.InfoLevel))
	h.OnExportStart(context.Background(), "svg")
	if buf.Len() != 0 {
		t.Errorf("hooks logged at info level: %q", buf.String())
	}
}
