// slyboard: background clipboard-history manager.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slyboard/slyboard/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "slyboard",
		Short: "Background clipboard-history manager",
		Long: `slyboard watches the clipboard, keeps a bounded deduplicated history of
recent values, and tags each entry with the window that produced it so
entries can be filtered or inspected by origin.

Run "slyboard run" as the background daemon. Use "slyboard history",
"slyboard clear", and "slyboard status" to inspect it, and
"slyboard pause" / "slyboard resume" to toggle capture.

Config file search order (first found wins):
  ./slyboard.yaml
  $XDG_CONFIG_HOME/slyboard/config.yaml
A path supplied via --config skips discovery entirely.

All flags can be set via SLYBOARD_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newHistoryCmd(),
		newClearCmd(),
		newStatusCmd(),
		newPauseCmd(),
		newResumeCmd(),
		newValidateConfigCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("slyboard %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
