// Package simulation wires an engine, a recorder, tracers, and an optional
// monitor together.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/datarecording"
	"github.com/sarchlab/floorbot/monitoring"
	"github.com/sarchlab/floorbot/sim"
	"github.com/sarchlab/floorbot/tracing"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id     string
	logger *zap.Logger
	engine sim.Engine

	dataRecorder datarecording.DataRecorder
	outputFile   string
	monitor      *monitoring.Monitor
	tracer       *tracing.DBTracer
	stats        *tracing.CleaningTimeTracer

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder. It is nil when recording is off.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// OutputFile returns the path of the recording, if any.
func (s *Simulation) OutputFile() string {
	return s.outputFile
}

// GetMonitor returns the monitor. It is nil when monitoring is off.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetTracer returns the database tracer. It is nil when recording is off.
func (s *Simulation) GetTracer() *tracing.DBTracer {
	return s.tracer
}

// Stats returns the tracer that counts cleaning outcomes.
func (s *Simulation) Stats() *tracing.CleaningTimeTracer {
	return s.stats
}

// RegisterComponent registers a component with the simulation. Components
// are monitored and traced.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	tracing.CollectTrace(c, s.stats)

	if s.tracer != nil {
		tracing.CollectTrace(c, s.tracer)
	}

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) (sim.Component, bool) {
	i, found := s.compNameIndex[name]
	if !found {
		return nil, false
	}

	return s.components[i], true
}

// Components returns all registered components.
func (s *Simulation) Components() []sim.Component {
	return append([]sim.Component(nil), s.components...)
}

// RunFor advances the simulation by the duration. The step callback, if not
// nil, is called after every slice of simulated time with the current time.
func (s *Simulation) RunFor(
	duration sim.VTimeInSec,
	slice sim.VTimeInSec,
	step func(now sim.VTimeInSec),
) error {
	if duration < 0 || slice <= 0 {
		return fmt.Errorf("cannot run for %v in slices of %v", duration, slice)
	}

	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("Simulation", uint64(duration*1000))
		defer s.monitor.CompleteProgressBar(bar)
	}

	start := s.engine.Now()
	end := start + duration

	for now := start; now < end; {
		next := now + slice
		if next > end {
			next = end
		}

		if err := s.engine.RunUntil(next); err != nil {
			return err
		}

		now = next

		if bar != nil {
			bar.SetFinished(uint64((now - start) * 1000))
		}

		if step != nil {
			step(now)
		}
	}

	s.engine.Finished()

	return nil
}

func (s *Simulation) closeRecording() error {
	if s.tracer != nil {
		s.tracer.Terminate()
	}

	if s.dataRecorder != nil {
		return s.dataRecorder.Close()
	}

	return nil
}

// Terminate flushes the recording and stops the monitor.
func (s *Simulation) Terminate() error {
	var errs []error

	if err := s.closeRecording(); err != nil {
		errs = append(errs, err)
	}

	if s.monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.monitor.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
