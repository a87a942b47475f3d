// Command tui runs the inspector (C12) against a locally constructed
// network, optionally preloaded from a JSON dump, for interactive
// exploration without the HTTP services running.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/ripplenet/config"
	"github.com/SynapticNetworks/ripplenet/internal/wiring"
	"github.com/SynapticNetworks/ripplenet/predictionservice"
	"github.com/SynapticNetworks/ripplenet/tui"
)

func main() {
	var configPath string
	var dumpPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive network inspector",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, dumpPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.EnvOr("CONFIG_PATH", ""), "path to the TOML config file")
	cmd.Flags().StringVar(&dumpPath, "dump-path", config.EnvOr("DUMP_PATH", ""), "optional JSON network dump to preload at startup")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, dumpPath string) error {
	if configPath == "" {
		resolved, err := config.RequireEnv("CONFIG_PATH")
		if err != nil {
			return fmt.Errorf("tui: %w (or pass --config)", err)
		}
		configPath = resolved
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	inst, err := wiring.Build(cfg, nil)
	if err != nil {
		return err
	}

	if dumpPath != "" {
		restored, err := predictionservice.LoadDump(dumpPath)
		if err != nil {
			return fmt.Errorf("tui: preloading %s: %w", dumpPath, err)
		}
		inst.Layer.ReplaceNetwork(restored)
	}

	model := tui.New(inst.Layer, inst.Layer)
	program := tea.NewProgram(model)
	_, err = program.Run()
	return err
}
