package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/config"
	"github.com/janekbaraniewski/screenings/internal/tui"
	"github.com/janekbaraniewski/screenings/internal/watch"
)

func runViewer(parent context.Context, cfg config.Config, src source) error {
	if parent == nil {
		parent = context.Background()
	}
	if err := tui.LoadThemes(config.ConfigDir()); err != nil {
		log.Printf("themes: %v", err)
	}
	tui.SetThemeByName(cfg.Theme)

	loader := func(ctx context.Context) ([]catalog.MovieRecord, string, error) {
		records, err := loadRecords(ctx, src)
		return records, src.String(), err
	}
	model := tui.NewModel(viewerPresets(cfg), cfg.Chart, cfg.FadeDuration(), loader)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.Dataset.Watch && src.JSONPath != "" {
		w, err := watch.New(src.JSONPath, watch.DefaultSettleDelay)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			go func() {
				if err := w.Run(ctx, func() { program.Send(tui.ReloadMsg{}) }); err != nil {
					log.Printf("watch: %v", err)
				}
			}()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("TUI error: %v", err)
		return err
	}
	return nil
}
