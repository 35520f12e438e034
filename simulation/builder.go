package simulation

import (
	"fmt"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/datarecording"
	"github.com/sarchlab/floorbot/monitoring"
	"github.com/sarchlab/floorbot/sim"
	"github.com/sarchlab/floorbot/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn       bool
	monitorPort     int
	recordingOn     bool
	recordDecisions bool
	outputFileName  string
	logger          *zap.Logger
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:       true,
		recordingOn:     true,
		recordDecisions: true,
		logger:          zap.NewNop(),
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithoutRecording sets the simulation to not write a database.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithoutDecisionRecording keeps the cleaning sessions in the database but
// leaves out the per-think decisions.
func (b Builder) WithoutDecisionRecording() Builder {
	b.recordDecisions = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger *zap.Logger) Builder {
	b.logger = logger
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		logger:        b.logger,
		compNameIndex: make(map[string]int),
		stats:         tracing.NewCleaningTimeTracer(),
	}

	engine := sim.NewSerialEngine()
	s.engine = engine

	if b.logger.Core().Enabled(zap.DebugLevel) {
		engine.AcceptHook(sim.NewEventLogger(b.logger))
	}

	if err := b.buildRecording(s); err != nil {
		return nil, err
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor().
			WithLogger(b.logger).
			WithPortNumber(b.monitorPort)
		s.monitor.RegisterEngine(s.engine)

		if _, err := s.monitor.StartServer(); err != nil {
			_ = s.closeRecording()
			return nil, err
		}
	}

	return s, nil
}

func (b Builder) buildRecording(s *Simulation) error {
	if !b.recordingOn {
		return nil
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "floorbot_sim_" + s.id
	}

	recorder, err := datarecording.New(outputPath)
	if err != nil {
		return fmt.Errorf("creating recorder: %w", err)
	}

	tracer, err := tracing.NewDBTracer(recorder, b.recordDecisions)
	if err != nil {
		_ = recorder.Close()
		return fmt.Errorf("creating tracer: %w", err)
	}

	s.dataRecorder = recorder
	s.tracer = tracer
	s.outputFile = outputPath + ".sqlite3"

	b.logger.Info("recording simulation", zap.String("file", s.outputFile))

	return nil
}
