package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/config"
	"github.com/janekbaraniewski/screenings/internal/store"
	"github.com/janekbaraniewski/screenings/internal/tui"
)

// sourceFlags selects where records come from. An explicit --data wins over
// a configured SQLite catalog; --db wins over everything.
type sourceFlags struct {
	data string
	db   string
}

func (f *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.data, "data", "", "path to the listings JSON (default from config)")
	fs.StringVar(&f.db, "db", "", "read listings from this SQLite catalog instead of JSON")
}

type source struct {
	JSONPath string
	DBPath   string
}

func (s source) String() string {
	if s.DBPath != "" {
		return "sqlite:" + s.DBPath
	}
	return s.JSONPath
}

func (f *sourceFlags) resolve(cfg config.Config) source {
	switch {
	case strings.TrimSpace(f.db) != "":
		return source{DBPath: f.db}
	case strings.TrimSpace(f.data) != "":
		return source{JSONPath: f.data}
	case strings.TrimSpace(cfg.Dataset.SQLitePath) != "":
		return source{DBPath: cfg.Dataset.SQLitePath}
	default:
		return source{JSONPath: cfg.Dataset.Path}
	}
}

func loadRecords(ctx context.Context, src source) ([]catalog.MovieRecord, error) {
	if src.DBPath != "" {
		s, err := store.OpenStore(src.DBPath)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		raws, err := s.RawRecords(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.Normalize(raws), nil
	}
	if src.JSONPath == "" {
		return nil, fmt.Errorf("no dataset configured: pass --data or --db")
	}
	raws, err := catalog.LoadFile(src.JSONPath)
	if err != nil {
		return nil, err
	}
	return catalog.Normalize(raws), nil
}

func chartOptions(cfg config.Config, name string) (chart.Options, error) {
	cc, err := cfg.ChartByName(name)
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{Layout: cc.Layout(), Fill: cc.FillColor}, nil
}

func viewerPresets(cfg config.Config) []tui.Preset {
	names := cfg.ChartNames()
	presets := make([]tui.Preset, 0, len(names))
	for _, name := range names {
		opts, err := chartOptions(cfg, name)
		if err != nil {
			continue
		}
		presets = append(presets, tui.Preset{Name: name, Options: opts})
	}
	return presets
}

// applyFilters toggles the named facets on c. Unknown names are reported
// so a typo does not silently dim the whole export.
func applyFilters(c *chart.Chart, languages, genres []string) error {
	ix := c.Facets()
	for _, sel := range []struct {
		axis  catalog.Axis
		names []string
	}{
		{catalog.AxisLanguage, languages},
		{catalog.AxisGenre, genres},
	} {
		for _, name := range sel.names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if !ix.Has(sel.axis, name) {
				return fmt.Errorf("unknown %s %q", sel.axis, name)
			}
			if !c.Filter().State().IsActive(sel.axis, name) {
				c.Toggle(sel.axis, name)
			}
		}
	}
	return nil
}
