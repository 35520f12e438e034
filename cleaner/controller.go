// Package cleaner implements the decision core of a floor-cleaning agent. A
// Controller thinks at a fixed interval. On every think it refreshes what it
// knows about the floor, picks one of three states, and acts on that state:
// clean the tile underfoot, drive to the nearest remembered dirty tile, or
// search by sweeping the floor in an inward spiral.
package cleaner

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

// State is the behavior that the controller picked on its latest think.
type State int

// The states that a controller can be in.
const (
	StateSearch State = iota
	StateGoToDirty
	StateClean
)

func (s State) String() string {
	switch s {
	case StateSearch:
		return "Search"
	case StateGoToDirty:
		return "GoToDirty"
	case StateClean:
		return "Clean"
	default:
		return "Unknown"
	}
}

// HookPosDecision marks the end of a think. The item is a Decision.
var HookPosDecision = &sim.HookPos{Name: "Cleaner Decision"}

// A Decision describes what the controller did on one think.
type Decision struct {
	Time      sim.VTimeInSec
	State     State
	Target    floor.TileID
	HasTarget bool

	// Destination is the point handed to the mover. It is only meaningful
	// when Dispatched is true.
	Destination floor.Vec3
	Dispatched  bool

	// Cleaning tells if a cleaning session started on this think.
	Cleaning bool
}

// Controller is the cleaning agent's brain.
type Controller struct {
	*sim.TickingComponent

	cfg    Config
	logger *zap.Logger

	tiles    TileView
	ground   GroundSensing
	vision   VisionSensing
	mover    Mover
	locator  Locator
	actuator Actuator

	memory *DirtyTileMemory
	route  *SweepRoute
	rng    *rand.Rand

	state     State
	target    floor.TileID
	hasTarget bool

	wanderCenter   floor.Vec3
	wanderTarget   floor.Vec3
	nextWanderPick sim.VTimeInSec

	misconfigured bool
	thinks        uint64
	skippedThinks uint64
	lastDecision  Decision

	components []sim.Component
}

// State returns the state picked on the latest think.
func (c *Controller) State() State {
	return c.state
}

// Target returns the dirty tile that the controller is heading to.
func (c *Controller) Target() (floor.TileID, bool) {
	return c.target, c.hasTarget
}

// Memory returns the dirty tile memory.
func (c *Controller) Memory() *DirtyTileMemory {
	return c.memory
}

// Route returns the sweep route.
func (c *Controller) Route() *SweepRoute {
	return c.route
}

// Misconfigured tells if a collaborator was missing at build time.
func (c *Controller) Misconfigured() bool {
	return c.misconfigured
}

// LastDecision returns the decision of the latest completed think.
func (c *Controller) LastDecision() Decision {
	return c.lastDecision
}

// Components returns the controller and the simulation components that it
// owns.
func (c *Controller) Components() []sim.Component {
	return append([]sim.Component{c}, c.components...)
}

// Start schedules the first think at the current time.
func (c *Controller) Start() {
	c.TickNow()
}

// Tick runs one think. The controller never runs out of work, so it always
// asks to tick again.
func (c *Controller) Tick() bool {
	if c.misconfigured {
		return true
	}

	c.think()

	return true
}

func (c *Controller) think() {
	if c.actuator.IsCleaning() {
		c.skippedThinks++
		return
	}

	c.thinks++
	now := c.Now()

	c.ground.Sense()
	c.memory.Update(c.vision.ObservedTiles(), now)

	if c.ground.CurrentTileIsDirty() {
		// The previous target is left as it is. The next think sorts it out.
		c.state = StateClean
		c.act(now)

		return
	}

	if c.hasTarget && !c.tiles.IsDirty(c.target) {
		c.memory.Forget(c.target)
		c.target = floor.NoTile
		c.hasTarget = false
	}

	c.target, c.hasTarget = c.memory.Nearest(c.locator.Position())
	if c.hasTarget {
		c.state = StateGoToDirty
	} else {
		c.state = StateSearch
	}

	c.act(now)
}

func (c *Controller) act(now sim.VTimeInSec) {
	d := Decision{
		Time:      now,
		State:     c.state,
		Target:    c.target,
		HasTarget: c.hasTarget,
	}

	switch c.state {
	case StateClean:
		d.Cleaning = c.actuator.TryClean()
	case StateGoToDirty:
		c.goToTarget(&d)
	case StateSearch:
		c.search(now, &d)
	}

	c.lastDecision = d
	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosDecision,
		Item:   d,
	})
}

func (c *Controller) goToTarget(d *Decision) {
	pos, ok := c.tiles.Position(c.target)
	if !ok {
		c.sweep(d)
		return
	}

	if c.locator.Position().Distance(pos) <= c.cfg.ArriveDistance {
		return
	}

	c.seek(d, pos, c.cfg.SeekWeight)
}

func (c *Controller) search(now sim.VTimeInSec, d *Decision) {
	if c.route.Len() == 0 {
		c.wander(now, d)
		return
	}

	c.sweep(d)
}

func (c *Controller) sweep(d *Decision) {
	waypoint, ok := c.route.Current()
	if !ok {
		return
	}

	if c.locator.Position().Distance(waypoint) <= c.cfg.ArriveDistance {
		c.route.Advance()
		waypoint, _ = c.route.Current()
	}

	c.seek(d, waypoint, c.cfg.SweepSeekWeight)
}

func (c *Controller) wander(now sim.VTimeInSec, d *Decision) {
	if now >= c.nextWanderPick {
		c.nextWanderPick = now + c.cfg.WanderRetarget

		angle := c.rng.Float64() * 2 * math.Pi
		radius := math.Sqrt(c.rng.Float64()) * c.cfg.WanderRadius
		c.wanderTarget = floor.V3(
			c.wanderCenter.X+radius*math.Cos(angle),
			c.locator.Position().Y,
			c.wanderCenter.Z+radius*math.Sin(angle),
		)
	}

	c.seek(d, c.wanderTarget, c.cfg.WanderSeekWeight)
}

func (c *Controller) seek(d *Decision, pos floor.Vec3, weight float64) {
	c.mover.SeekTowards(pos, c.cfg.ArriveDistance, weight)
	d.Destination = pos
	d.Dispatched = true
}

// StateReport is a snapshot of the controller for inspection.
type StateReport struct {
	Name          string         `json:"name"`
	Time          sim.VTimeInSec `json:"time"`
	State         string         `json:"state"`
	Target        string         `json:"target,omitempty"`
	Position      floor.Vec3     `json:"position"`
	Cleaning      bool           `json:"cleaning"`
	Memory        []MemoryEntry  `json:"memory"`
	RouteLength   int            `json:"route_length"`
	RouteCursor   int            `json:"route_cursor"`
	Thinks        uint64         `json:"thinks"`
	SkippedThinks uint64         `json:"skipped_thinks"`
	Misconfigured bool           `json:"misconfigured"`
}

// Report takes a snapshot of the controller.
func (c *Controller) Report() StateReport {
	r := StateReport{
		Name:          c.Name(),
		Time:          c.Now(),
		State:         c.state.String(),
		Memory:        c.memory.Entries(),
		RouteLength:   c.route.Len(),
		RouteCursor:   c.route.Cursor(),
		Thinks:        c.thinks,
		SkippedThinks: c.skippedThinks,
		Misconfigured: c.misconfigured,
	}

	if c.hasTarget {
		r.Target = c.target.String()
	}

	if c.locator != nil {
		r.Position = c.locator.Position()
	}

	if c.actuator != nil {
		r.Cleaning = c.actuator.IsCleaning()
	}

	return r
}
