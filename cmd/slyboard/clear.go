package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slyboard/slyboard/internal/config"
	"github.com/slyboard/slyboard/internal/history"
	"github.com/slyboard/slyboard/internal/ipc"
	"github.com/slyboard/slyboard/internal/message"
	"github.com/slyboard/slyboard/internal/wire"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard history",
		Long: `Empties the recorded history and persists the empty state.

When a daemon is running the clear goes through its IPC socket so the
in-memory history clears too; otherwise the history file is rewritten
directly.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runClear(v) },
	}

	addConfigFlag(cmd)

	return cmd
}

func runClear(v *viper.Viper) error {
	if ipc.IsRunning() {
		if err := clearIPC(); err != nil {
			return fmt.Errorf("clear via daemon: %w", err)
		}
		fmt.Println("history cleared")
		return nil
	}

	loaded, err := config.Load(v.GetString("config"))
	if err != nil {
		return err
	}
	store, err := history.OpenDefault(loaded.Config.Clipboard.HistoryLimit)
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("history cleared")
	return nil
}

func clearIPC() error {
	conn, err := ipc.Dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	wc := wire.New(conn)
	if err := wc.WriteMsg(&message.Message{Type: message.TypeClear}); err != nil {
		return err
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return err
	}
	if resp.Type != message.TypeOK {
		return fmt.Errorf("daemon refused: %s", resp.Error)
	}
	return nil
}
