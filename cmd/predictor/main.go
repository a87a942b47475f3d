// Command predictor runs the prediction HTTP service (C11): serving
// predictions and accepting snapshot uploads, with an optional on-disk
// dump preloaded at startup.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/ripplenet/config"
	"github.com/SynapticNetworks/ripplenet/httpmw"
	"github.com/SynapticNetworks/ripplenet/internal/wiring"
	"github.com/SynapticNetworks/ripplenet/obslog"
	"github.com/SynapticNetworks/ripplenet/predictionservice"
)

func main() {
	var configPath string
	var port int
	var dumpPath string

	cmd := &cobra.Command{
		Use:   "predictor",
		Short: "Run the prediction HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, port, dumpPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.EnvOr("CONFIG_PATH", ""), "path to the TOML config file")
	cmd.Flags().IntVar(&port, "port", config.EnvPortOr("PORT", 8001), "HTTP listen port")
	cmd.Flags().StringVar(&dumpPath, "dump-path", config.EnvOr("DUMP_PATH", ""), "optional JSON network dump to preload at startup")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, port int, dumpPath string) error {
	if configPath == "" {
		resolved, err := config.RequireEnv("CONFIG_PATH")
		if err != nil {
			return fmt.Errorf("predictor: %w (or pass --config)", err)
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

	if dumpPath != "" {
		restored, err := predictionservice.LoadDump(dumpPath)
		if err != nil {
			return fmt.Errorf("predictor: preloading %s: %w", dumpPath, err)
		}
		inst.Layer.ReplaceNetwork(restored)
	}

	svc := predictionservice.New(inst.Layer)
	router := svc.Router(httpmw.AccessLog(logger), httpmw.Recover(logger))

	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, router)
}
