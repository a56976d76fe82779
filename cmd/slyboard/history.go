package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slyboard/slyboard/internal/config"
	"github.com/slyboard/slyboard/internal/history"
	"github.com/slyboard/slyboard/internal/ipc"
	"github.com/slyboard/slyboard/internal/message"
	"github.com/slyboard/slyboard/internal/wire"
)

func newHistoryCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print clipboard history, most recent first",
		Long: `Prints the recorded clipboard history. Text entries are printed raw;
images as "[image] WxH".

When a daemon is running the request goes over its IPC socket so the output
reflects the in-memory state; otherwise the history file is read directly.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runHistory(v) },
	}

	cmd.Flags().Bool("json", false, "emit clipboard history as JSON")
	addConfigFlag(cmd)

	return cmd
}

func runHistory(v *viper.Viper) error {
	entries, err := loadSnapshot(v.GetString("config"))
	if err != nil {
		return err
	}

	if v.GetBool("json") {
		if entries == nil {
			entries = []history.Entry{}
		}
		raw, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("serialize history: %w", err)
		}
		fmt.Println(string(raw))
		return nil
	}

	for _, entry := range entries {
		fmt.Println(entry.String())
	}
	return nil
}

// loadSnapshot fetches the history from a running daemon when possible and
// falls back to the cache file otherwise.
func loadSnapshot(configOverride string) ([]history.Entry, error) {
	if ipc.IsRunning() {
		if entries, err := fetchHistoryIPC(); err == nil {
			return entries, nil
		}
		// Daemon unreachable after all; read the file.
	}

	loaded, err := config.Load(configOverride)
	if err != nil {
		return nil, err
	}
	store, err := history.OpenDefault(loaded.Config.Clipboard.HistoryLimit)
	if err != nil {
		return nil, err
	}
	return store.Snapshot(), nil
}

func fetchHistoryIPC() ([]history.Entry, error) {
	conn, err := ipc.Dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	wc := wire.New(conn)
	if err := wc.WriteMsg(&message.Message{Type: message.TypeHistory}); err != nil {
		return nil, err
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, err
	}
	if resp.Type != message.TypeHistoryResponse {
		return nil, fmt.Errorf("unexpected response %q: %s", resp.Type, resp.Error)
	}
	return resp.History, nil
}
