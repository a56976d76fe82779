package main

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/capture"
	"github.com/slyboard/slyboard/internal/clip"
	"github.com/slyboard/slyboard/internal/config"
	"github.com/slyboard/slyboard/internal/history"
	"github.com/slyboard/slyboard/internal/ipc"
	"github.com/slyboard/slyboard/internal/message"
	"github.com/slyboard/slyboard/internal/poller"
	"github.com/slyboard/slyboard/internal/wire"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard-history daemon",
		Long: `Starts the capture daemon: polls the clipboard on a fixed interval,
records changed values into the history, tags them with the focused window,
and suppresses capture while a blacklisted application has focus.

Pause/resume is a marker file checked every tick, so "slyboard pause" works
from any shell. Status and clear requests are served over a local unix
socket while the daemon runs.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	loaded, err := config.Load(v.GetString("config"))
	if err != nil {
		return err
	}
	cfg := loaded.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if loaded.Path != "" {
		slog.Info("config loaded", "path", loaded.Path)
	} else {
		slog.Info("no config file found, using defaults")
	}

	store, err := history.OpenDefault(cfg.Clipboard.HistoryLimit)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}

	windows := activewindow.NewProvider(cfg.Clipboard.ActiveWindow.Selection())
	backend := clip.New(windows)
	p := poller.New(backend, cfg.Clipboard.ActiveWindow.Blacklist)

	slog.Info("slyboard starting",
		"version", Version,
		"backend", backend.Name(),
		"history_limit", store.Limit(),
		"history_path", store.Path(),
		"poll_interval", cfg.Clipboard.PollInterval,
		"paused", capture.IsPaused(),
	)

	started := time.Now()
	if ln, err := ipc.Listen(); err != nil {
		slog.Warn("IPC socket unavailable", "err", err)
	} else {
		slog.Info("IPC socket listening", "path", ipc.SocketPath())
		go serveIPC(ln, store, started)
	}

	// Seed poll: content already on the clipboard at startup lands in the
	// history immediately instead of on the first change after it.
	recordPoll(p, store)

	ticker := time.NewTicker(cfg.Clipboard.PollInterval)
	defer ticker.Stop()
	for range ticker.C {
		if capture.IsPaused() {
			continue
		}
		recordPoll(p, store)
	}
	return nil
}

// recordPoll runs one poll tick and records the result, if any.
func recordPoll(p *poller.Poller, store *history.Store) {
	entry := p.PollOnce()
	if entry == nil {
		return
	}

	changed, err := store.Record(*entry)
	if err != nil {
		slog.Error("history changed in memory but not saved", "err", err)
		return
	}
	if !changed {
		return
	}

	attrs := []any{"entry", entry.Label()}
	if w := entry.SourceWindow; w != nil {
		attrs = append(attrs, "window", w.Title, "backend", w.Backend)
		if w.AppID != "" {
			attrs = append(attrs, "app", w.AppID)
		}
	}
	slog.Info("clipboard captured", attrs...)
}

func serveIPC(ln net.Listener, store *history.Store, started time.Time) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go handleIPCConn(conn, store, started)
	}
}

func handleIPCConn(conn net.Conn, store *history.Store, started time.Time) {
	defer conn.Close()
	wc := wire.New(conn)

	msg, err := wc.ReadMsg()
	if err != nil {
		return
	}

	switch msg.Type {
	case message.TypeStatus:
		_ = wc.WriteMsg(&message.Message{
			Type:        message.TypeStatusResponse,
			Version:     Version,
			StartedAt:   started,
			Paused:      capture.IsPaused(),
			Entries:     store.Len(),
			HistoryPath: store.Path(),
		})

	case message.TypeHistory:
		_ = wc.WriteMsg(&message.Message{
			Type:    message.TypeHistoryResponse,
			History: store.Snapshot(),
		})

	case message.TypeClear:
		if err := store.Clear(); err != nil {
			slog.Error("clear via IPC failed", "err", err)
			_ = wc.WriteMsg(&message.Message{Type: message.TypeError, Error: err.Error()})
			return
		}
		slog.Info("history cleared via IPC")
		_ = wc.WriteMsg(&message.Message{Type: message.TypeOK})

	default:
		_ = wc.WriteMsg(&message.Message{
			Type:  message.TypeError,
			Error: fmt.Sprintf("unknown message type %q", msg.Type),
		})
	}
}
