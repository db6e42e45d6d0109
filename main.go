package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/miketth/hyprinput/pkg/backend"
	"codeberg.org/miketth/hyprinput/pkg/config"
	"codeberg.org/miketth/hyprinput/pkg/headless"
	"codeberg.org/miketth/hyprinput/pkg/input"
	"codeberg.org/miketth/hyprinput/pkg/journal"
	jsonstore "codeberg.org/miketth/hyprinput/pkg/journal/json"
	"codeberg.org/miketth/hyprinput/pkg/journal/memory"
	"codeberg.org/miketth/hyprinput/pkg/journal/sqlite"
	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"codeberg.org/miketth/hyprinput/pkg/keysym/xkb"
	"codeberg.org/miketth/hyprinput/pkg/spawn"
	"codeberg.org/miketth/hyprinput/pkg/xkblayouts"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	defaultConfig, _ := config.DefaultPath()
	configPath := flag.String("config", defaultConfig, "path to config.yaml")
	eventsPath := flag.String("events", "", "read backend events from this file, - for stdin (default: the backend socket)")
	metricsAddr := flag.String("metrics-addr", "", "serve prometheus metrics on this address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	checkKeyboard(cfg, log)

	keymap, closeKeymap, err := loadKeymap(cfg.KeyboardDefaults(), log)
	if err != nil {
		return fmt.Errorf("load keymap: %w", err)
	}
	defer closeKeymap()

	bindings, err := cfg.BindingTable()
	if err != nil {
		return fmt.Errorf("build binding table: %w", err)
	}

	var (
		store journal.Store
		saver *jsonstore.Store
	)
	switch cfg.Journal.Driver {
	case "json":
		s, err := jsonstore.NewStore(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open json journal: %w", err)
		}
		store, saver = s, s
	case "sqlite":
		s, err := sqlite.NewStore(cfg.Journal.Path, log.Named("journal"))
		if err != nil {
			return fmt.Errorf("open sqlite journal: %w", err)
		}
		defer s.Close()
		store = s
	default:
		store = memory.NewStore()
	}
	session := uuid.NewString()
	writer := journal.NewWriter(session, store, 64, log.Named("journal"))

	events, err := openEvents(*eventsPath, cfg.Socket)
	if err != nil {
		return fmt.Errorf("open event stream: %w", err)
	}
	defer events.Close()

	dispatcher := input.NewDispatcher(input.Options{
		Shell:        headless.NewShell(log.Named("shell"), cfg.OutputList()...),
		Sink:         headless.NewLogSink(log.Named("client")),
		Spawner:      spawn.NewShell(log.Named("spawn")),
		DataDevice:   headless.NewClipboard(),
		Bindings:     bindings,
		Keyboard:     cfg.KeyboardDefaults(),
		Keymap:       func(input.KeyboardConfig) input.Keymap { return keymap },
		Socket:       cfg.Socket,
		Interceptors: []input.Interceptor{headless.NewOverlay(log.Named("overlay"))},
		OnAction:     writer.ObserveAction,
	}, log.Named("input"))
	for _, name := range cfg.Seats {
		dispatcher.AddSeat(name)
	}

	log.Infow("started hyprinput", "session", session, "seats", cfg.Seats, "socket", cfg.Socket)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := backend.ProcessLines(ctx, events, dispatcher, log.Named("backend"))
		if err != nil {
			return fmt.Errorf("process lines: %w", err)
		}
		log.Info("event stream finished")
		return nil
	})

	// the json journal keeps saving until the writer has drained
	saveCtx, stopSaving := context.WithCancel(context.Background())
	defer stopSaving()
	g.Go(func() error {
		defer stopSaving()
		return writer.Run(ctx)
	})
	if saver != nil {
		g.Go(func() error {
			err := saver.SaveLooper(saveCtx, 30*time.Second)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("save journal: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		err := systemdNotifyLoop(ctx)
		if err != nil {
			return fmt.Errorf("systemd notify: %w", err)
		}
		return nil
	})

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}

		g.Go(func() error {
			log.Infow("serving metrics", "addr", *metricsAddr)
			err := srv.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve metrics: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	err = g.Wait()
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Info("shutting down")
		return nil
	default:
		return err
	}
}

func openEvents(path, socket string) (*backend.Client, error) {
	switch path {
	case "-":
		return backend.NewClient(os.Stdin), nil
	case "":
		socketPath, err := backend.SocketPath(socket)
		if err != nil {
			return nil, fmt.Errorf("resolve socket: %w", err)
		}
		return backend.Connect(socketPath)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return backend.NewClient(file), nil
}

// checkKeyboard looks the configured layout up in the xkb registry. A
// failed lookup is only worth a warning, compiling the keymap is what
// decides.
func checkKeyboard(cfg config.Config, log *zap.SugaredLogger) {
	registry, err := xkblayouts.Load(cfg.EvdevXML)
	if err != nil {
		log.Warnw("cannot read xkb registry, skipping layout check", "path", cfg.EvdevXML, "error", err)
		return
	}

	names, err := registry.DescribeAll(cfg.Keyboard.Layout, cfg.Keyboard.Variant)
	if err != nil {
		log.Warnw("keyboard layout not in xkb registry", "error", err)
		return
	}
	if cfg.Keyboard.Model != "" {
		if err := registry.HasModel(cfg.Keyboard.Model); err != nil {
			log.Warnw("keyboard model not in xkb registry", "error", err)
		}
	}

	log.Infow("keyboard configured", "layouts", names, "repeat_delay", cfg.Keyboard.RepeatDelay, "repeat_rate", cfg.Keyboard.RepeatRate)
}

// loadKeymap compiles the configured keymap with libxkbcommon when the
// build has it, and uses the built-in us table otherwise.
func loadKeymap(kb input.KeyboardConfig, log *zap.SugaredLogger) (input.Keymap, func(), error) {
	if !xkb.Available {
		log.Infow("built without libxkbcommon, using the us keymap")
		return keysym.NewUSKeymap(), func() {}, nil
	}

	keymap, err := xkb.New(xkb.Names{
		Rules:   kb.Rules,
		Model:   kb.Model,
		Layout:  kb.Layout,
		Variant: kb.Variant,
		Options: kb.Options,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Debugw("compiled keymap", "layout", keymap.Layout())
	return keymap, keymap.Close, nil
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	_, _ = daemon.SdNotify(false, "STATUS=Routing input")

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// no watchdog configured
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
