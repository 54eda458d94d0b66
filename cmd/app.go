package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"novelarr/internal/buildinfo"
	"novelarr/internal/config"
	"novelarr/internal/domain"
	"novelarr/internal/library"
	"novelarr/internal/logger"
	"novelarr/internal/settings"
	"novelarr/internal/sharedhttp"
	"novelarr/internal/source"
	"novelarr/internal/update"

	"github.com/pkg/errors"
)

// app carries everything a command needs. The library and settings are
// loaded once here and handed to the commands explicitly.
type app struct {
	cfg      *config.AppConfig
	log      logger.Logger
	registry *source.Registry
	updater  *update.Updater
	lib      *library.Library
	settings domain.Settings

	libraryPath  string
	settingsPath string
}

func newApp() *app {
	cfg := config.New(configPath, buildinfo.Version)
	log := logger.New(cfg.Config)

	if err := os.MkdirAll(cfg.Config.DataDirectory, os.ModePerm); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Config.DataDirectory).Msg("could not create data directory")
	}

	fetcher := sharedhttp.NewCollector(sharedhttp.CollectorOptions{
		Timeout:          time.Duration(cfg.Config.RequestTimeout) * time.Second,
		CloudflareBypass: cfg.Config.CloudflareBypass,
	})
	registry := source.NewRegistry(fetcher)

	a := &app{
		cfg:          cfg,
		log:          log,
		registry:     registry,
		updater:      update.New(registry, log.Zerolog()),
		libraryPath:  filepath.Join(cfg.Config.DataDirectory, library.FileName),
		settingsPath: filepath.Join(cfg.Config.DataDirectory, settings.FileName),
	}

	a.lib = library.Load(a.libraryPath, log.Zerolog())
	a.settings = settings.Load(a.settingsPath, log.Zerolog())

	return a
}

// saveLibrary persists the library. Failures are logged and not retried.
func (a *app) saveLibrary() {
	if err := a.lib.Save(a.libraryPath); err != nil {
		a.log.Error().Err(err).Str("path", a.libraryPath).Msg("could not save library")
	}
}

func (a *app) saveSettings() error {
	return settings.Save(a.settingsPath, a.settings)
}

// resolveNovel finds exactly one tracked novel by path or title fragment.
func (a *app) resolveNovel(ref string) (domain.Novel, error) {
	matches := a.lib.Find(ref)

	switch len(matches) {
	case 0:
		return domain.Novel{}, errors.Wrap(library.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		titles := make([]string, 0, len(matches))
		for _, n := range matches {
			titles = append(titles, fmt.Sprintf("%s (%s)", n.Title, n.Path))
		}
		return domain.Novel{}, errors.Errorf("%q matches several novels: %s", ref, strings.Join(titles, ", "))
	}
}

func (a *app) provider(id domain.ProviderID) (domain.Provider, error) {
	return a.registry.Get(id)
}

func printAlert(alert domain.Alert) {
	fmt.Fprintln(os.Stderr, alert.String())
}
