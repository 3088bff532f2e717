package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func snapshotThemeState() ([]Theme, int) {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return append([]Theme(nil), themes...), activeThemeIdx
}

func restoreThemeState(saved []Theme, idx int) {
	themeMu.Lock()
	defer themeMu.Unlock()
	themes = saved
	activeThemeIdx = idx
	if idx >= 0 && idx < len(themes) {
		applyTheme(themes[idx])
	}
}

func writeThemeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
}

func externalThemeJSON(name, accent string) string {
	return `{
  "name": "` + name + `",
  "base": "#101010",
  "surface0": "#202020",
  "surface1": "#303030",
  "text": "#EEEEEE",
  "subtext": "#BDBDBD",
  "dim": "#7F7F7F",
  "accent": "` + accent + `",
  "blue": "#CFCFCF",
  "sapphire": "#BBBBBB",
  "lavender": "#C4C4C4",
  "yellow": "#9A9A9A",
  "red": "#878787"
}`
}

func TestDefaultThemeIsCatppuccin(t *testing.T) {
	if got := builtinThemes()[defaultThemeIndex(builtinThemes())].Name; got != "Catppuccin Mocha" {
		t.Fatalf("default theme = %q", got)
	}
}

func TestLoadThemesFromConfigDir(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	cfgDir := t.TempDir()
	writeThemeFile(t, filepath.Join(cfgDir, "themes"), "custom.json", externalThemeJSON("Custom Gray", "#FAFAFA"))

	if err := LoadThemes(cfgDir); err != nil {
		t.Fatalf("LoadThemes error: %v", err)
	}
	if !SetThemeByName("custom gray") {
		t.Fatal("SetThemeByName(custom gray) returned false")
	}
	active := ActiveTheme()
	if active.Accent != lipgloss.Color("#FAFAFA") {
		t.Fatalf("accent = %q, want #FAFAFA", active.Accent)
	}
	if active.Icon == "" {
		t.Fatal("expected fallback icon for external theme")
	}
	if colorAccent != lipgloss.Color("#FAFAFA") {
		t.Fatalf("palette accent = %q, want #FAFAFA", colorAccent)
	}
}

func TestLoadThemesOverridesBuiltinByName(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	extra := t.TempDir()
	writeThemeFile(t, extra, "nord.json", externalThemeJSON("Nord", "#FFFFFF"))
	t.Setenv(themeDirEnvVar, extra)

	if err := LoadThemes(t.TempDir()); err != nil {
		t.Fatalf("LoadThemes error: %v", err)
	}
	count := 0
	for _, th := range AvailableThemes() {
		if th.Name == "Nord" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Nord appears %d times, want 1", count)
	}
	SetThemeByName("Nord")
	if ActiveTheme().Accent != lipgloss.Color("#FFFFFF") {
		t.Fatalf("accent = %q, want override", ActiveTheme().Accent)
	}
}

func TestLoadThemesReportsInvalidFiles(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	cfgDir := t.TempDir()
	writeThemeFile(t, filepath.Join(cfgDir, "themes"), "broken.json", `{"name":"Broken"}`)

	err := LoadThemes(cfgDir)
	if err == nil {
		t.Fatal("expected error for invalid theme file")
	}
	if !strings.Contains(err.Error(), "missing required color fields") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !SetThemeByName("Gruvbox") {
		t.Fatal("expected built-in themes to remain available")
	}
}

func TestCycleThemeWraps(t *testing.T) {
	savedThemes, savedIdx := snapshotThemeState()
	defer restoreThemeState(savedThemes, savedIdx)

	start := ActiveTheme().Name
	n := len(AvailableThemes())
	for i := 0; i < n; i++ {
		CycleTheme()
	}
	if got := ActiveTheme().Name; got != start {
		t.Fatalf("after full cycle theme = %q, want %q", got, start)
	}
}

func TestThemeFilesOrderAndDedup(t *testing.T) {
	cfgDir := t.TempDir()
	themesDir := filepath.Join(cfgDir, "themes")
	extra := t.TempDir()
	writeThemeFile(t, themesDir, "b.json", "{}")
	writeThemeFile(t, themesDir, "a.json", "{}")
	writeThemeFile(t, themesDir, "notes.txt", "")
	writeThemeFile(t, extra, "c.json", "{}")
	t.Setenv(themeDirEnvVar, themesDir+string(os.PathListSeparator)+extra+string(os.PathListSeparator))

	got := themeFiles(cfgDir)
	want := []string{
		filepath.Join(themesDir, "a.json"),
		filepath.Join(themesDir, "b.json"),
		filepath.Join(extra, "c.json"),
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("themeFiles = %v, want %v", got, want)
	}
}
