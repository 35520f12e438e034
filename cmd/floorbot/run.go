package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/config"
	"github.com/sarchlab/floorbot/sim"
	"github.com/sarchlab/floorbot/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cleaning agent for a while and report what it did.",
	Long: "`run` builds a floor from the configuration, lets the agent " +
		"clean it for the configured duration, and prints a summary.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, envFiles...)
		if err != nil {
			return err
		}

		if err := applyRunFlags(cmd, cfg); err != nil {
			return err
		}

		openBrowser, _ := cmd.Flags().GetBool("open")

		return runSimulation(cfg, logger, openBrowser, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64("duration", 0, "simulated seconds to run")
	runCmd.Flags().Int64("seed", 0, "seed of the agent and of the floor")
	runCmd.Flags().Bool("monitor", false, "serve the monitoring API")
	runCmd.Flags().Int("monitor-port", 0,
		"port of the monitoring API, 0 picks a free one")
	runCmd.Flags().Bool("open", false, "open the monitoring API in a browser")
	runCmd.Flags().Bool("record", false, "record the run into a SQLite file")
	runCmd.Flags().String("output", "", "name of the recording file")
}

// applyRunFlags lets explicitly set flags win over the loaded configuration.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("duration") {
		cfg.Run.Duration, _ = flags.GetFloat64("duration")
	}

	if flags.Changed("seed") {
		cfg.Cleaner.Seed, _ = flags.GetInt64("seed")
	}

	if flags.Changed("monitor") {
		cfg.Run.Monitor, _ = flags.GetBool("monitor")
	}

	if flags.Changed("monitor-port") {
		cfg.Run.MonitorPort, _ = flags.GetInt("monitor-port")
	}

	if flags.Changed("open") {
		cfg.Run.Monitor = true
	}

	if flags.Changed("record") {
		cfg.Run.Record, _ = flags.GetBool("record")
	}

	if flags.Changed("output") {
		cfg.Run.Output, _ = flags.GetString("output")
		cfg.Run.Record = true
	}

	return cfg.Validate()
}

func buildSimulation(
	cfg *config.Config,
	logger *zap.Logger,
) (*simulation.Simulation, error) {
	b := simulation.MakeBuilder().WithLogger(logger)

	if cfg.Run.Monitor {
		b = b.WithMonitorPort(cfg.Run.MonitorPort)
	} else {
		b = b.WithoutMonitoring()
	}

	if cfg.Run.Record {
		b = b.WithOutputFileName(cfg.Run.Output)
		if !cfg.Run.RecordDecisions {
			b = b.WithoutDecisionRecording()
		}
	} else {
		b = b.WithoutRecording()
	}

	return b.Build()
}

func runSimulation(
	cfg *config.Config,
	logger *zap.Logger,
	openBrowser bool,
	out io.Writer,
) (err error) {
	s, err := buildSimulation(cfg, logger)
	if err != nil {
		return fmt.Errorf("building simulation: %w", err)
	}

	defer func() {
		if termErr := s.Terminate(); termErr != nil && err == nil {
			err = termErr
		}
	}()

	if m := s.GetMonitor(); m != nil {
		logger.Info("monitoring", zap.String("url", m.URL()))

		if openBrowser {
			if err := m.OpenBrowser(); err != nil {
				logger.Warn("cannot open browser", zap.Error(err))
			}
		}
	}

	sc := buildScenario(cfg, s.GetEngine(), logger)
	for _, c := range sc.components() {
		s.RegisterComponent(c)
	}

	sc.start()

	err = s.RunFor(
		sim.VTimeInSec(cfg.Run.Duration),
		sim.VTimeInSec(cfg.Run.ReportInterval),
		func(now sim.VTimeInSec) {
			logger.Info("progress",
				zap.Float64("time", float64(now)),
				zap.String("state", sc.agent.State().String()),
				zap.Int("dirty", sc.world.DirtyCount()),
				zap.Int("remembered", sc.agent.Memory().Len()),
			)
		},
	)
	if err != nil {
		return err
	}

	printSummary(out, s, sc)

	return nil
}

func printSummary(out io.Writer, s *simulation.Simulation, sc *scenario) {
	stats := s.Stats()

	fmt.Fprintf(out, "simulated time:  %.2fs\n", float64(s.GetEngine().Now()))
	fmt.Fprintf(out, "tiles cleaned:   %d\n", stats.Committed())
	fmt.Fprintf(out, "cleans aborted:  %d\n", stats.Aborted())
	fmt.Fprintf(out, "time cleaning:   %.2fs\n", float64(stats.BusyTime()))
	fmt.Fprintf(out, "dirty remaining: %d of %d\n",
		sc.world.DirtyCount(), sc.world.Len())
	fmt.Fprintf(out, "distance moved:  %.2f\n", sc.body.DistanceTraveled())

	if s.OutputFile() != "" {
		fmt.Fprintf(out, "recording:       %s\n", s.OutputFile())
	}
}
