package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nldump/internal/capture"
	"nldump/internal/dumper"
	"nldump/internal/genl"
	"nldump/internal/nlattr/families"
	"nldump/internal/schema"
	"nldump/internal/script"
	"nldump/internal/store"
	"nldump/internal/web"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// sourceDrainTimeout bounds how long shutdown waits for a blocked source.
const sourceDrainTimeout = 2 * time.Second

func main() {
	// Temporary logger for config loading errors.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		bootLogger.Error("load config", "err", err)
		os.Exit(1)
	}

	if err := cfg.validate(); err != nil {
		bootLogger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("nldump starting", "version", version, "source", cfg.Source.Type)

	if err := run(cfg, logger); err != nil {
		logger.Error("nldump stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("goodbye")
}

func run(cfg *Config, logger *slog.Logger) error {
	registry := genl.NewRegistry(logger.With("component", "genl"))
	families.Register(registry)

	engine := script.NewEngine(logger, cfg.Decode.ScriptTimeout)
	defer engine.Close()
	nScripts, err := engine.LoadDir(cfg.ScriptsDir)
	if err != nil {
		return fmt.Errorf("load scripts: %w", err)
	}

	nOverlays, err := schema.LoadDir(cfg.SchemaDir, registry, engine.Resolve, logger)
	if err != nil {
		return fmt.Errorf("load schema overlays: %w", err)
	}
	logger.Info("registry initialized", "families", len(registry.All()),
		"overlays", nOverlays, "scripts", nScripts)

	db, err := store.NewBoltStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	bindFamilyIDs(registry, db, cfg.FamilyIDs, logger)
	defer saveFamilyIDs(registry, db, logger)

	src, err := capture.Open(cfg.Source, registry, logger)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	events := dumper.NewEventBus(logger)
	d := dumper.New(src, registry, events, db, dumper.Options{
		Verbose:     cfg.Decode.Verbose,
		Print:       cfg.Decode.Print,
		Output:      os.Stdout,
		MaxCaptures: cfg.Store.MaxCaptures,
	}, logger)

	var (
		webServer  *web.Server
		httpServer *http.Server
	)
	if cfg.Web.Listen != "" {
		webOpts := []web.ServerOption{
			web.WithVersion(version),
			web.WithStore(db),
			web.WithStats(d.Stats),
		}
		if cfg.Web.APIKey != "" {
			webOpts = append(webOpts, web.WithAPIKey(cfg.Web.APIKey))
		}
		if len(cfg.Web.AllowedOrigins) > 0 {
			webOpts = append(webOpts, web.WithAllowedOrigins(cfg.Web.AllowedOrigins))
		}
		webServer = web.NewServer(registry, events, logger, webOpts...)

		httpServer = &http.Server{
			Addr:         cfg.Web.Listen,
			Handler:      webServer,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}
		go func() {
			logger.Info("web server starting", "addr", cfg.Web.Listen)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("http server", "err", err)
			}
		}()
	}

	// Start MQTT publisher (no-op when built with no_mqtt tag).
	mqtt := initMQTT(registry, events, cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runErr := make(chan error, 1)
	go func() {
		runErr <- d.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var dumpErr error
	select {
	case dumpErr = <-runErr:
		st := d.Stats()
		logger.Info("source finished", "datagrams", st.Datagrams, "messages", st.Messages,
			"malformed", st.Malformed, "saved", st.Saved)
		if dumpErr == nil && httpServer != nil {
			logger.Info("still serving captures, interrupt to exit", "addr", cfg.Web.Listen)
			sig := <-sigCh
			logger.Info("shutting down", "signal", sig)
		}
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig)
		cancel()
		select {
		case dumpErr = <-runErr:
		case <-time.After(sourceDrainTimeout):
			logger.Warn("source did not stop in time")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	mqtt.Stop()
	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", "err", err)
		}
		webServer.Stop()
	}
	return dumpErr
}

// bindFamilyIDs applies ids remembered in the store, then the pinned ones
// from the config. Families without a schema are registered bare so their
// messages are at least named.
func bindFamilyIDs(registry *genl.Registry, db store.Store, pinned map[string]uint16, logger *slog.Logger) {
	stored, err := db.FamilyIDs()
	if err != nil {
		logger.Warn("load family ids", "err", err)
	}
	for _, ids := range []map[string]uint16{stored, pinned} {
		for name, id := range ids {
			if !registry.Bind(name, id) {
				registry.Register(genl.Family{Name: name, ID: id})
			}
		}
	}
}

func saveFamilyIDs(registry *genl.Registry, db store.Store, logger *slog.Logger) {
	ids := make(map[string]uint16)
	for _, f := range registry.All() {
		if f.ID != 0 {
			ids[f.Name] = f.ID
		}
	}
	if err := db.SaveFamilyIDs(ids); err != nil {
		logger.Error("save family ids", "err", err)
		return
	}
	logger.Debug("family ids saved", "count", len(ids))
}
