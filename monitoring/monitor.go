// Package monitoring serves a running simulation over HTTP so that it can be
// paused, inspected, and profiled while it runs.
package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/cleaner"
	"github.com/sarchlab/floorbot/sim"
)

// ErrNotStarted is returned when the server is used before StartServer.
var ErrNotStarted = errors.New("monitor server not started")

// StateReporter is a component that can describe its own state.
type StateReporter interface {
	Report() cleaner.StateReport
}

// Monitor can turn a simulation into a server and allows external monitoring
// controlling of the simulation.
type Monitor struct {
	engine     sim.Engine
	components []sim.Component
	portNumber int
	logger     *zap.Logger

	// Guards pausedByUser and the engine pause lock.
	engineLock   sync.Mutex
	pausedByUser bool

	server   *http.Server
	listener net.Listener

	profileDuration time.Duration

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		logger:          zap.NewNop(),
		profileDuration: time.Second,
	}
}

// WithPortNumber sets the port number of the monitor. Zero picks a free port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		m.logger.Warn("port number is not allowed, using a random port",
			zap.Int("port", portNumber))

		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithLogger sets the logger.
func (m *Monitor) WithLogger(logger *zap.Logger) *Monitor {
	m.logger = logger
	return m
}

// WithProfileDuration sets how long /api/profile samples the CPU.
func (m *Monitor) WithProfileDuration(d time.Duration) *Monitor {
	m.profileDuration = d
	return m
}

// RegisterEngine registers the engine that is used in the simulation.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterComponent register a component to be monitored.
func (m *Monitor) RegisterComponent(c sim.Component) {
	m.components = append(m.components, c)
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        sim.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/list_components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.listComponentDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/state/{name}", m.reportState)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	return r
}

// StartServer starts the monitor as a web server and returns its URL.
func (m *Monitor) StartServer() (string, error) {
	listener, err := net.Listen("tcp", "localhost:"+strconv.Itoa(m.portNumber))
	if err != nil {
		return "", fmt.Errorf("starting monitor: %w", err)
	}

	m.listener = listener
	m.server = &http.Server{
		Handler:           m.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	url := m.URL()
	m.logger.Info("monitoring simulation", zap.String("url", url))

	go func() {
		err := m.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("monitor server stopped", zap.Error(err))
		}
	}()

	return url, nil
}

// URL returns the address the server listens on.
func (m *Monitor) URL() string {
	if m.listener == nil {
		return ""
	}

	return fmt.Sprintf("http://localhost:%d",
		m.listener.Addr().(*net.TCPAddr).Port)
}

// OpenBrowser opens the monitor in the default browser.
func (m *Monitor) OpenBrowser() error {
	if m.listener == nil {
		return ErrNotStarted
	}

	browser.Stdout = os.Stderr

	return browser.OpenURL(m.URL() + "/api/list_components")
}

// Stop shuts the server down. A paused engine is released.
func (m *Monitor) Stop(ctx context.Context) error {
	m.engineLock.Lock()
	if m.pausedByUser {
		m.engine.Continue()
		m.pausedByUser = false
	}
	m.engineLock.Unlock()

	if m.server == nil {
		return nil
	}

	return m.server.Shutdown(ctx)
}

// holdEngine runs f while no event is being handled.
func (m *Monitor) holdEngine(f func()) {
	m.engineLock.Lock()
	defer m.engineLock.Unlock()

	if !m.pausedByUser {
		m.engine.Pause()
		defer m.engine.Continue()
	}

	f()
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engineLock.Lock()
	defer m.engineLock.Unlock()

	if !m.pausedByUser {
		m.engine.Pause()
		m.pausedByUser = true
	}

	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engineLock.Lock()
	defer m.engineLock.Unlock()

	if m.pausedByUser {
		m.engine.Continue()
		m.pausedByUser = false
	}

	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	m.writeJSON(w, map[string]float64{"now": float64(m.engine.Now())})
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.components))
	for _, c := range m.components {
		names = append(names, c.Name())
	}

	m.writeJSON(w, names)
}

func (m *Monitor) listComponentDetails(w http.ResponseWriter, r *http.Request) {
	component := m.findComponentOr404(w, mux.Vars(r)["name"])
	if component == nil {
		return
	}

	buf := bytes.NewBuffer(nil)

	var err error

	m.holdEngine(func() {
		serializer := goseth.NewSerializer()
		serializer.SetRoot(component)
		serializer.SetMaxDepth(1)
		err = serializer.Serialize(buf)
	})

	m.writeBytes(w, buf.Bytes(), err)
}

type fieldReq struct {
	CompName  string `json:"comp_name,omitempty"`
	FieldName string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	req := fieldReq{}

	err := json.Unmarshal([]byte(mux.Vars(r)["json"]), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	component := m.findComponentOr404(w, req.CompName)
	if component == nil {
		return
	}

	buf := bytes.NewBuffer(nil)

	m.holdEngine(func() {
		serializer := goseth.NewSerializer()
		serializer.SetRoot(component)
		serializer.SetMaxDepth(1)

		err = serializer.SetEntryPoint(strings.Split(req.FieldName, "."))
		if err != nil {
			return
		}

		err = serializer.Serialize(buf)
	})

	m.writeBytes(w, buf.Bytes(), err)
}

func (m *Monitor) reportState(w http.ResponseWriter, r *http.Request) {
	component := m.findComponentOr404(w, mux.Vars(r)["name"])
	if component == nil {
		return
	}

	reporter, ok := component.(StateReporter)
	if !ok {
		http.Error(w, "component does not report state",
			http.StatusMethodNotAllowed)
		return
	}

	var report cleaner.StateReport

	m.holdEngine(func() {
		report = reporter.Report()
	})

	m.writeJSON(w, report)
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) sim.Component {
	for _, c := range m.components {
		if c.Name() == name {
			return c
		}
	}

	http.Error(w, "Component not found", http.StatusNotFound)

	return nil
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	snapshots := make([]ProgressSnapshot, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		snapshots = append(snapshots, b.Snapshot())
	}
	m.progressBarsLock.Unlock()

	m.writeJSON(w, snapshots)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		m.fail(w, err)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		m.fail(w, err)
		return
	}

	memory, err := proc.MemoryInfo()
	if err != nil {
		m.fail(w, err)
		return
	}

	m.writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memory.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		m.fail(w, err)
		return
	}

	time.Sleep(m.profileDuration)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		m.fail(w, err)
		return
	}

	m.writeJSON(w, prof)
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	m.writeBytes(w, data, err)
}

func (m *Monitor) writeBytes(w http.ResponseWriter, data []byte, err error) {
	if err != nil {
		m.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(data); err != nil {
		m.logger.Debug("failed to write response", zap.Error(err))
	}
}

func (m *Monitor) fail(w http.ResponseWriter, err error) {
	m.logger.Error("monitor request failed", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
