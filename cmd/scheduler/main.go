// Command scheduler runs the cron-driven broadcast trigger (C13),
// periodically asking the training server to fan a snapshot out to its
// receivers.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/ripplenet/config"
	"github.com/SynapticNetworks/ripplenet/obslog"
	"github.com/SynapticNetworks/ripplenet/scheduler"
)

func main() {
	var trainingServer string
	var cronSpec string

	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Periodically trigger the training server's receiver broadcast",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(trainingServer, cronSpec)
		},
	}

	cmd.Flags().StringVar(&trainingServer, "training-server", config.EnvOr("TRAINING_SERVER", ""), "base URL of the training server")
	cmd.Flags().StringVar(&cronSpec, "cron", "0 */5 * * * *", "robfig/cron/v3 schedule (with seconds field)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(trainingServer, cronSpec string) error {
	if trainingServer == "" {
		resolved, err := config.RequireEnv("TRAINING_SERVER")
		if err != nil {
			return fmt.Errorf("scheduler: %w (or pass --training-server)", err)
		}
		trainingServer = resolved
	}

	logger, err := obslog.New()
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := scheduler.New(trainingServer, cronSpec, logger)
	if err != nil {
		return err
	}

	s.Start()
	defer s.Stop()

	waitForSignal()
	return nil
}

func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
