package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slyboard/slyboard/internal/capture"
)

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause clipboard capture",
		Long: `Writes the capture pause marker. A running daemon checks the marker
every tick and skips sampling while it exists, so this works without a
daemon connection and survives daemon restarts.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := capture.SetPaused(true); err != nil {
				return err
			}
			fmt.Println("capture paused")
			return nil
		},
	}
}

func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume clipboard capture",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := capture.SetPaused(false); err != nil {
				return err
			}
			fmt.Println("capture resumed")
			return nil
		},
	}
}
