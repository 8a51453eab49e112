// Package ai implements Kamatayan's hunting behaviour: a four state machine
// that walks a loop of search points and chases or strikes a target it can
// detect by distance alone.
//
// The agent is driven from outside. It never looks up the player by itself;
// the caller hands it a target position each tick (Tick) or a provider it can
// poll (Update), plus a capability that receives damage.
package ai

import (
	"math"

	"github.com/automoto/kamatayan/shared/gamemath"
)

// State is the active behaviour of an agent.
type State int

const (
	Searching State = iota // walking toward the current search point
	Waiting                // idling at a reached search point
	Hunting                // walking toward a detected target
	Attacking              // target inside attack range
)

func (s State) String() string {
	switch s {
	case Searching:
		return "Searching"
	case Waiting:
		return "Waiting"
	case Hunting:
		return "Hunting"
	case Attacking:
		return "Attacking"
	}
	return "Unknown"
}

// Engaged reports whether the state is driven by a detected target.
func (s State) Engaged() bool {
	return s == Hunting || s == Attacking
}

// ArrivalThreshold is how close the agent has to get to a search point
// before it counts as reached.
const ArrivalThreshold = 0.5

// Config holds the agent's tuning. It is copied into the agent at
// construction and never changes afterwards.
type Config struct {
	SearchRange  float64 // detection radius
	AttackRange  float64 // strike radius
	MoveSpeed    float64 // units/s while hunting
	SearchSpeed  float64 // units/s while searching
	WaitAtPoint  float64 // seconds spent at each search point
	AttackDamage float64 // amount handed to the victim per strike

	// FieldOfView is accepted so tuning files stay compatible, but detection
	// is pure distance and ignores it.
	FieldOfView float64
}

// TargetProvider supplies the target position. ok is false while there is
// no target in the world.
type TargetProvider interface {
	TargetPosition() (pos gamemath.Vec3, ok bool)
}

// Damageable receives strikes. Delivery is fire-and-forget.
type Damageable interface {
	ApplyDamage(amount float64)
}

// Option customises a new Agent.
type Option func(*Agent)

// WithPosition places the agent somewhere other than its first search point.
func WithPosition(p gamemath.Vec3) Option {
	return func(a *Agent) {
		a.home = p
		a.position = p
	}
}

// WithTarget attaches the provider polled by Update.
func WithTarget(t TargetProvider) Option {
	return func(a *Agent) {
		a.target = t
	}
}

// WithVictim attaches the capability struck while Attacking.
func WithVictim(d Damageable) Option {
	return func(a *Agent) {
		a.victim = d
	}
}

// Agent is a single hunting enemy.
type Agent struct {
	cfg          Config
	searchPoints []gamemath.Vec3

	home     gamemath.Vec3
	position gamemath.Vec3
	facing   gamemath.Vec3

	state       State
	searchIndex int
	waitTimer   float64
	// waiting remembers the search sub-mode while a chase overrides it.
	waiting bool

	targetVisible bool
	lastDistance  float64

	target TargetProvider
	victim Damageable
}

// New creates an agent standing on its first search point, or at the origin
// when it has none. The search points are copied.
func New(cfg Config, searchPoints []gamemath.Vec3, opts ...Option) *Agent {
	points := make([]gamemath.Vec3, len(searchPoints))
	copy(points, searchPoints)

	a := &Agent{
		cfg:          cfg,
		searchPoints: points,
	}
	if len(points) > 0 {
		a.home = points[0]
	}
	a.position = a.home

	for _, opt := range opts {
		opt(a)
	}
	a.Reset()
	return a
}

// Reset puts the agent back where it was created, searching toward the
// first point.
func (a *Agent) Reset() {
	a.position = a.home
	a.facing = gamemath.Forward
	a.state = Searching
	a.searchIndex = 0
	a.waitTimer = 0
	a.waiting = false
	a.targetVisible = false
	a.lastDistance = math.Inf(1)
}

// Attach rebinds the target provider and the damage receiver. Either may
// be nil.
func (a *Agent) Attach(target TargetProvider, victim Damageable) {
	a.target = target
	a.victim = victim
}

// Update polls the attached provider and advances one tick.
func (a *Agent) Update(dt float64) {
	if a.target == nil {
		a.Tick(dt, nil)
		return
	}
	pos, ok := a.target.TargetPosition()
	if !ok {
		a.Tick(dt, nil)
		return
	}
	a.Tick(dt, &pos)
}

// Tick advances the agent by dt seconds. A nil target means there is
// nothing to detect this tick.
func (a *Agent) Tick(dt float64, target *gamemath.Vec3) {
	if dt < 0 {
		dt = 0
	}

	a.detect(target)
	if a.targetVisible {
		a.engage(dt, *target)
		return
	}
	a.search(dt)
}

func (a *Agent) detect(target *gamemath.Vec3) {
	if target == nil {
		a.targetVisible = false
		a.lastDistance = math.Inf(1)
		return
	}
	a.lastDistance = gamemath.Distance(a.position, *target)
	a.targetVisible = a.lastDistance <= a.cfg.SearchRange
}

func (a *Agent) engage(dt float64, target gamemath.Vec3) {
	a.facing = gamemath.LookAt(a.position, target, a.facing)

	if a.lastDistance <= a.cfg.AttackRange {
		a.state = Attacking
		if a.victim != nil {
			a.victim.ApplyDamage(a.cfg.AttackDamage)
		}
		return
	}

	a.state = Hunting
	a.position = gamemath.StepToward(a.position, target, a.cfg.MoveSpeed*dt)
}

func (a *Agent) search(dt float64) {
	if len(a.searchPoints) == 0 {
		a.state = Searching
		return
	}

	point := a.searchPoints[a.searchIndex]

	// A chase may have dragged the agent off the point it was idling at.
	if a.waiting && gamemath.Distance(a.position, point) >= ArrivalThreshold {
		a.waiting = false
	}

	if a.waiting {
		a.state = Waiting
		a.waitTimer -= dt
		if a.waitTimer <= 0 {
			a.waitTimer = 0
			a.waiting = false
			a.searchIndex = (a.searchIndex + 1) % len(a.searchPoints)
			a.state = Searching
		}
		return
	}

	a.state = Searching
	a.facing = gamemath.LookAt(a.position, point, a.facing)
	a.position = gamemath.StepToward(a.position, point, a.cfg.SearchSpeed*dt)

	if gamemath.Distance(a.position, point) < ArrivalThreshold {
		a.waiting = true
		a.waitTimer = math.Max(a.cfg.WaitAtPoint, 0)
		a.state = Waiting
	}
}

func (a *Agent) Config() Config { return a.cfg }
func (a *Agent) Position() gamemath.Vec3 { return a.position }
func (a *Agent) Facing() gamemath.Vec3 { return a.facing }
func (a *Agent) State() State { return a.state }
func (a *Agent) SearchIndex() int { return a.searchIndex }
func (a *Agent) WaitTimer() float64 { return a.waitTimer }
func (a *Agent) TargetVisible() bool { return a.targetVisible }
func (a *Agent) Home() gamemath.Vec3 { return a.home }
func (a *Agent) HasSearchPoints() bool { return len(a.searchPoints) > 0 }
func (a *Agent) SearchPointCount() int { return len(a.searchPoints) }
func (a *Agent) Target() TargetProvider { return a.target }

// LastDistance is the distance to the target measured at the start of the
// latest tick, or +Inf when there was no target.
func (a *Agent) LastDistance() float64 { return a.lastDistance }

// SearchPoints returns a copy of the agent's search loop.
func (a *Agent) SearchPoints() []gamemath.Vec3 {
	out := make([]gamemath.Vec3, len(a.searchPoints))
	copy(out, a.searchPoints)
	return out
}

// CurrentSearchPoint returns the point being walked to or waited at.
func (a *Agent) CurrentSearchPoint() (gamemath.Vec3, bool) {
	if len(a.searchPoints) == 0 {
		return gamemath.Vec3{}, false
	}
	return a.searchPoints[a.searchIndex], true
}
