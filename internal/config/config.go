package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/janekbaraniewski/screenings/internal/layout"
)

const (
	DefaultChart     = "overview"
	defaultTheme     = "Catppuccin Mocha"
	defaultFill      = "#BDB76B"
	defaultFadeMs    = 300
	monthLayout      = "2006-01"
	defaultDateFrom  = "2023-01"
	defaultDateTo    = "2024-12"
	defaultTickStep  = 5
	defaultRadius    = 1.5
	defaultMinRadius = 1.5
	defaultStep      = 5
)

type DatasetConfig struct {
	Path       string `json:"path"`
	SQLitePath string `json:"sqlite_path,omitempty"`
	Watch      bool   `json:"watch"`
}

type UIConfig struct {
	FadeMillis int `json:"fade_millis"`
}

// ChartConfig describes one chart variant. Dates are "YYYY-MM"; the domain
// runs from the first day of DateFrom to the last day of DateTo.
type ChartConfig struct {
	ViewportWidth  float64        `json:"viewport_width"`
	ViewportHeight float64        `json:"viewport_height"`
	Margins        layout.Margins `json:"margins"`
	DateFrom       string         `json:"date_from"`
	DateTo         string         `json:"date_to"`
	YearTickStep   int            `json:"year_tick_step"`
	RadiusScale    float64        `json:"radius_scale"`
	MinRadius      float64        `json:"min_radius"`
	CollisionStep  float64        `json:"collision_step"`
	FillColor      string         `json:"fill_color"`
}

type Config struct {
	Theme   string                 `json:"theme"`
	Dataset DatasetConfig          `json:"dataset"`
	Chart   string                 `json:"chart"`
	Charts  map[string]ChartConfig `json:"charts"`
	UI      UIConfig               `json:"ui"`
}

var defaultMargins = layout.Margins{Top: 20, Right: 20, Bottom: 20, Left: 70}

func preset(w, h float64, from, to string) ChartConfig {
	return ChartConfig{
		ViewportWidth:  w,
		ViewportHeight: h,
		Margins:        defaultMargins,
		DateFrom:       from,
		DateTo:         to,
		YearTickStep:   defaultTickStep,
		RadiusScale:    defaultRadius,
		MinRadius:      defaultMinRadius,
		CollisionStep:  defaultStep,
		FillColor:      defaultFill,
	}
}

// DefaultCharts returns the built-in chart variants.
func DefaultCharts() map[string]ChartConfig {
	return map[string]ChartConfig{
		"overview": preset(1200, 800, defaultDateFrom, defaultDateTo),
		"2023":     preset(1200, 800, "2023-01", "2023-12"),
		"2024":     preset(1200, 800, "2024-01", "2024-12"),
		"compact":  preset(800, 500, defaultDateFrom, defaultDateTo),
		"poster":   preset(1600, 1000, defaultDateFrom, defaultDateTo),
	}
}

func DefaultConfig() Config {
	return Config{
		Theme:   defaultTheme,
		Dataset: DatasetConfig{Path: filepath.Join("data", "movies.json")},
		Chart:   DefaultChart,
		Charts:  DefaultCharts(),
		UI:      UIConfig{FadeMillis: defaultFadeMs},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "screenings")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "screenings")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

func (cfg *Config) normalize() {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = def.Theme
	}
	if strings.TrimSpace(cfg.Dataset.Path) == "" {
		cfg.Dataset.Path = def.Dataset.Path
	}
	if cfg.UI.FadeMillis < 0 {
		cfg.UI.FadeMillis = 0
	}
	// User charts extend the presets; a preset of the same name is replaced.
	charts := DefaultCharts()
	for name, c := range cfg.Charts {
		charts[name] = c.withDefaults()
	}
	cfg.Charts = charts
	if _, ok := cfg.Charts[cfg.Chart]; !ok {
		cfg.Chart = DefaultChart
	}
}

func (c ChartConfig) withDefaults() ChartConfig {
	def := preset(1200, 800, defaultDateFrom, defaultDateTo)
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = def.ViewportWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = def.ViewportHeight
	}
	if c.Margins == (layout.Margins{}) {
		c.Margins = def.Margins
	}
	if _, err := time.Parse(monthLayout, c.DateFrom); err != nil {
		c.DateFrom = def.DateFrom
	}
	if _, err := time.Parse(monthLayout, c.DateTo); err != nil {
		c.DateTo = def.DateTo
	}
	if c.YearTickStep <= 0 {
		c.YearTickStep = def.YearTickStep
	}
	if c.RadiusScale <= 0 {
		c.RadiusScale = def.RadiusScale
	}
	if c.MinRadius < 0 {
		c.MinRadius = def.MinRadius
	}
	if c.CollisionStep < 0 {
		c.CollisionStep = def.CollisionStep
	}
	if strings.TrimSpace(c.FillColor) == "" {
		c.FillColor = def.FillColor
	}
	return c
}

// ChartNames lists configured charts alphabetically.
func (cfg Config) ChartNames() []string {
	names := make([]string, 0, len(cfg.Charts))
	for name := range cfg.Charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChartByName returns the named chart, or an error listing valid names.
func (cfg Config) ChartByName(name string) (ChartConfig, error) {
	if name == "" {
		name = cfg.Chart
	}
	c, ok := cfg.Charts[name]
	if !ok {
		return ChartConfig{}, fmt.Errorf("unknown chart %q (available: %s)", name, strings.Join(cfg.ChartNames(), ", "))
	}
	return c.withDefaults(), nil
}

// Layout converts the chart into layout parameters.
func (c ChartConfig) Layout() layout.Config {
	c = c.withDefaults()
	from, _ := time.Parse(monthLayout, c.DateFrom)
	to, _ := time.Parse(monthLayout, c.DateTo)
	return layout.Config{
		Viewport: layout.Viewport{
			Width:   c.ViewportWidth,
			Height:  c.ViewportHeight,
			Margins: c.Margins,
		},
		DateFrom:      from,
		DateTo:        to.AddDate(0, 1, -1),
		YearTickStep:  c.YearTickStep,
		RadiusScale:   c.RadiusScale,
		MinRadius:     c.MinRadius,
		CollisionStep: c.CollisionStep,
	}
}

// FadeDuration is the UI fade length.
func (cfg Config) FadeDuration() time.Duration {
	return time.Duration(cfg.UI.FadeMillis) * time.Millisecond
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveTheme persists a theme name into the config file (read-modify-write).
func SaveTheme(theme string) error {
	return SaveThemeTo(ConfigPath(), theme)
}

func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
