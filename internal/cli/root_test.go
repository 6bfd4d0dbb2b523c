package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/typetonic/pkg/colors"
	typeio "github.com/matzehuels/typetonic/pkg/io"
	"github.com/matzehuels/typetonic/pkg/observability"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	for _, name := range []string{"render", "list", "edit", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}

func TestRootAppliesConfig(t *testing.T) {
	defer observability.Reset()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := `
keyboard = "Macro Pad"
palette  = "Duo"
format   = "json"

[[palettes]]
name   = "Duo"
colors = ["#101010", "#f0f0f0"]

[[layouts]]
name = "Macro Pad"
rows = [[{ width = 1, label = "A" }, { width = 1, label = "B" }]]
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "pad.json")
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"--config", cfgPath, "render", "--pattern", "horizontal-stripes", "-o", out})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"keyboard": "Macro Pad"`, `"#101010"`, `"pattern": "horizontal-stripes"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestRootStripeWidth(t *testing.T) {
	defer observability.Reset()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := `
stripe_width = 2

[[palettes]]
name   = "Duo"
colors = ["#101010", "#f0f0f0"]

[[layouts]]
name = "Column"
rows = [
  [{ width = 1, label = "1" }],
  [{ width = 1, label = "2" }],
  [{ width = 1, label = "3" }],
  [{ width = 1, label = "4" }],
]
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "column.json")
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"--config", cfgPath, "render", "-k", "Column", "-p", "Duo",
		"-t", "horizontal-stripes", "-f", "json", "-o", out})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	grid, err := typeio.ImportGrid(out)
	if err != nil {
		t.Fatalf("ImportGrid() error: %v", err)
	}
	dark, light := colors.MustParse("#101010"), colors.MustParse("#f0f0f0")
	for r, want := range []colors.Color{dark, dark, light, light} {
		if got := grid.At(r, 0); got != want {
			t.Errorf("row %d = %s, want %s", r, got, want)
		}
	}
}

func TestRootBadConfig(t *testing.T) {
	defer observability.Reset()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(`unit = -1`), 0o644); err != nil {
		t.Fatal(err)
	}

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"--config", cfgPath, "list", "patterns"})
	root.SetErr(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("Execute() accepted an invalid config")
	}
}

func TestCompletion(t *testing.T) {
	defer observability.Reset()
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var out bytes.Buffer
		root := newTestCLI().RootCommand()
		root.SetOut(&out)
		root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "completion", shell})
		if err := root.ExecuteContext(context.Background()); err == nil {
			t.Errorf("completion %s with a missing explicit config should fail", shell)
		}

		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		root = newTestCLI().RootCommand()
		root.SetOut(&out)
		root.SetArgs([]string{"completion", shell})
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("completion %s error: %v", shell, err)
		}
		if !bytes.Contains(out.Bytes(), []byte("typetonic")) {
			t.Errorf("completion %s output does not mention typetonic", shell)
		}
	}
}
