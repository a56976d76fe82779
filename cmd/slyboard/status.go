package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slyboard/slyboard/internal/ipc"
	"github.com/slyboard/slyboard/internal/message"
	"github.com/slyboard/slyboard/internal/wire"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running daemon's state",
		Long: `Queries the running daemon over its IPC socket and prints version,
uptime, pause state, and history size. Fails when no daemon is running.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")

	return cmd
}

func runStatus(v *viper.Viper) error {
	conn, err := ipc.Dial()
	if err != nil {
		return fmt.Errorf("no slyboard daemon running (socket %s)", ipc.SocketPath())
	}
	defer conn.Close()

	wc := wire.New(conn)
	if err := wc.WriteMsg(&message.Message{Type: message.TypeStatus}); err != nil {
		return fmt.Errorf("status request: %w", err)
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return fmt.Errorf("status response: %w", err)
	}
	if resp.Type != message.TypeStatusResponse {
		return fmt.Errorf("unexpected response %q: %s", resp.Type, resp.Error)
	}

	if v.GetBool("json") {
		raw, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(raw))
		return nil
	}

	state := "running"
	if resp.Paused {
		state = "paused"
	}

	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "State:\t%s\n", state)
	fmt.Fprintf(w, "Version:\t%s\n", resp.Version)
	if !resp.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:\t%s (%s)\n", resp.StartedAt.Format(time.RFC3339), fmtAge(resp.StartedAt))
	}
	fmt.Fprintf(w, "Entries:\t%d\n", resp.Entries)
	fmt.Fprintf(w, "History file:\t%s\n", resp.HistoryPath)
	fmt.Fprintf(w, "Socket:\t%s\n", ipc.SocketPath())
	return w.Flush()
}

func fmtAge(t time.Time) string {
	age := time.Since(t).Round(time.Second)
	if age < time.Minute {
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	}
	return fmt.Sprintf("%dh%dm ago", int(age.Hours()), int(age.Minutes())%60)
}
