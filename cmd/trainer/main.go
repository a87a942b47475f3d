// Command trainer runs the training HTTP service (C10): accepting
// pushed samples and broadcasting snapshots to receivers. With --once it
// instead drains the configured training streams and exits without
// serving.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/ripplenet/config"
	"github.com/SynapticNetworks/ripplenet/coordinator"
	"github.com/SynapticNetworks/ripplenet/httpmw"
	"github.com/SynapticNetworks/ripplenet/internal/wiring"
	"github.com/SynapticNetworks/ripplenet/obslog"
	"github.com/SynapticNetworks/ripplenet/stream"
	"github.com/SynapticNetworks/ripplenet/trainingservice"
)

func main() {
	var configPath string
	var port int
	var receiversCSV string
	var once bool

	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Run the training HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, port, receiversCSV, once)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.EnvOr("CONFIG_PATH", ""), "path to the TOML config file")
	cmd.Flags().IntVar(&port, "port", config.EnvPortOr("PORT", 8000), "HTTP listen port")
	cmd.Flags().StringVar(&receiversCSV, "receivers", config.EnvOr("RECEIVERS", ""), "comma-separated receiver base URLs")
	cmd.Flags().BoolVar(&once, "once", false, "drain the configured training streams once, then exit without serving")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, port int, receiversCSV string, once bool) error {
	if configPath == "" {
		resolved, err := config.RequireEnv("CONFIG_PATH")
		if err != nil {
			return fmt.Errorf("trainer: %w (or pass --config)", err)
		}
		configPath = resolved
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := obslog.New()
	if err != nil {
		return err
	}
	defer logger.Sync()

	inst, err := wiring.Build(cfg, logger)
	if err != nil {
		return err
	}

	if once {
		return runOnce(cfg, inst, logger)
	}

	receivers := splitNonEmpty(receiversCSV)
	svc := trainingservice.New(inst.Layer, inst.Layer, receivers, logger)
	router := svc.Router(httpmw.AccessLog(logger), httpmw.Recover(logger))

	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, router)
}

func runOnce(cfg *config.File, inst *wiring.Instance, logger *obslog.Logger) error {
	merged, err := stream.BuildMerged(cfg.TrainingStreams)
	if err != nil {
		return fmt.Errorf("trainer: opening training streams: %w", err)
	}

	count, err := coordinator.Run(merged, inst.Layer, logger)
	if err != nil {
		return fmt.Errorf("trainer: training run failed after %d samples: %w", count, err)
	}

	return nil
}

func splitNonEmpty(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
