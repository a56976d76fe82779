package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slyboard/slyboard/internal/config"
)

func newValidateConfigCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Load and validate the config file, then exit",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindViper(cmd, v)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidateConfig(v)
		},
	}

	addConfigFlag(cmd)

	return cmd
}

func runValidateConfig(v *viper.Viper) error {
	override := v.GetString("config")
	if override == "" && config.Discover() == "" {
		return fmt.Errorf("no config file found; expected one of:\n  %s",
			strings.Join(config.SearchPaths(), "\n  "))
	}

	loaded, err := config.Load(override)
	if err != nil {
		return err
	}
	if err := loaded.Config.Validate(); err != nil {
		return err
	}
	fmt.Printf("Config is valid: %s\n", loaded.Path)
	return nil
}
