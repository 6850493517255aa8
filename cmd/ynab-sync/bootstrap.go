package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	ynab "github.com/coltoneshaw/ynabsync"
	"github.com/coltoneshaw/ynabsync/internal/sync"
	"github.com/coltoneshaw/ynabsync/internal/syncconfig"
)

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// buildEngine wires config, provider, history store, drift detector and
// the orchestrator into a ready-to-use Engine for the serve subcommand.
func buildEngine(cfg *syncconfig.Config, logger *zerolog.Logger) (*sync.Engine, error) {
	var provider sync.Provider
	var writer ynab.ClientServicer

	if cfg.IsStatic() {
		static, err := sync.NewStaticProvider(cfg.StaticBudgetFile)
		if err != nil {
			return nil, err
		}
		provider = static
	} else {
		client := ynab.NewClient(cfg.AccessToken)
		provider = sync.NewRemoteProvider(client)
		writer = client
	}

	history := sync.NewHistoryStore(cfg.ConfigRoot)
	drift := sync.NewDetector(cfg.DriftDetection, cfg.DriftCheckIntervalSyncs,
		cfg.DriftCheckIntervalMinutes, cfg.DriftSampleRate, cfg.ConfigRoot, logger)

	return sync.NewEngine(provider, writer, cfg, logger, history, drift), nil
}
