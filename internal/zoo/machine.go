// Package zoo holds the interaction state of the squeezy avatar: taps pump
// an energy level, idle time collapses it back, and the renderer reads a
// Snapshot to pick animation parameters.
package zoo

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	MaxEnergy         = 9
	IdleTimeout       = 2 * time.Second
	PressDuration     = 200 * time.Millisecond
	ParticleLifetime  = 1200 * time.Millisecond
	ShakeRestartDelay = 400 * time.Millisecond
)

// State is the coarse interaction state derived from the flags.
type State int

const (
	Idle State = iota
	Centered
	Maxed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Centered:
		return "centered"
	case Maxed:
		return "maxed"
	default:
		return "unknown"
	}
}

// Particle is a floating heart spawned by a tap. X and Y are offsets from
// the avatar centre in layout pixels.
type Particle struct {
	ID   string
	X, Y float64
	Size float64
	Born time.Time
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Selection       Avatar
	Name            string
	Energy          int
	Centered        bool
	Shaking         bool
	ShakeAnimating  bool
	ShakeSince      time.Time
	Pressed         bool
	HeartAnimating  bool
	MaxedSince      time.Time
	LastInteraction time.Time
	Particles       []Particle
}

// State derives the coarse state of s.
func (s Snapshot) State() State {
	switch {
	case !s.Centered:
		return Idle
	case s.HeartAnimating:
		return Maxed
	default:
		return Centered
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithParticles enables floating hearts on every counted tap.
func WithParticles(on bool) Option {
	return func(m *Machine) { m.particles = on }
}

// WithShakeRestartDelay delays the idle shake after a reset so the
// centering collapse can finish first. Zero restarts it immediately.
func WithShakeRestartDelay(d time.Duration) Option {
	return func(m *Machine) { m.shakeDelay = d }
}

// WithRand sets the source for particle placement.
func WithRand(r *rand.Rand) Option {
	return func(m *Machine) { m.rnd = r }
}

// WithSelection sets the initially selected avatar.
func WithSelection(a Avatar) Option {
	return func(m *Machine) {
		if a.Valid() {
			m.selection = a
		}
	}
}

// WithTapHook registers fn to be called after every tap with the
// resulting snapshot.
func WithTapHook(fn func(Snapshot)) Option {
	return func(m *Machine) { m.onTap = fn }
}

// Machine owns the interaction state of one view. All methods, and every
// callback it hands to its Scheduler, must run on one goroutine.
type Machine struct {
	clock Clock
	sched Scheduler
	rnd   *rand.Rand
	onTap func(Snapshot)

	particles  bool
	shakeDelay time.Duration

	selection Avatar
	names     map[Avatar]string

	energy         int
	centered       bool
	shaking        bool
	shakeAnimating bool
	shakeSince     time.Time
	pressed        bool
	pressedAt      time.Time
	heartAnimating bool
	maxedSince     time.Time
	lastTap        time.Time
	live           []Particle
}

// New creates a machine in the Idle state with default names.
func New(clock Clock, sched Scheduler, opts ...Option) *Machine {
	m := &Machine{
		clock:     clock,
		sched:     sched,
		selection: DefaultAvatar,
		names:     make(map[Avatar]string, len(defaultNames)),
		shaking:   true,
		lastTap:   clock.Now(),
	}
	for a, name := range defaultNames {
		m.names[a] = name
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return m
}

// Start begins the idle shake animation.
func (m *Machine) Start() {
	m.startShaking()
}

// HandleTap reacts to a tap on the avatar. The first tap after Idle only
// centers the avatar; later taps press it and pump energy.
func (m *Machine) HandleTap() {
	now := m.clock.Now()
	m.lastTap = now

	if !m.centered {
		m.shaking = false
		m.centered = true
		m.stopShaking()
	} else {
		m.press(now)
		if m.energy < MaxEnergy {
			m.energy++
		}
		if m.energy == MaxEnergy && !m.heartAnimating {
			m.heartAnimating = true
			m.maxedSince = now
		}
		if m.particles {
			m.spawnParticle(now)
		}
	}

	m.sched.After(IdleTimeout, m.idleResetCheck)

	if m.onTap != nil {
		m.onTap(m.Snapshot())
	}
}

func (m *Machine) press(now time.Time) {
	m.pressed = true
	m.pressedAt = now
	m.sched.After(PressDuration, func() {
		// a newer press owns the flag
		if m.clock.Now().Sub(m.pressedAt) >= PressDuration {
			m.pressed = false
		}
	})
}

func (m *Machine) spawnParticle(now time.Time) {
	p := Particle{
		ID:   uuid.NewString(),
		X:    m.rnd.Float64()*160 - 80,
		Y:    -(m.rnd.Float64()*80 + 40),
		Size: m.rnd.Float64()*16 + 18,
		Born: now,
	}
	m.live = append(m.live, p)
	m.sched.After(ParticleLifetime, func() { m.removeParticle(p.ID) })
}

func (m *Machine) removeParticle(id string) {
	for i, p := range m.live {
		if p.ID == id {
			m.live = append(m.live[:i], m.live[i+1:]...)
			return
		}
	}
}

// idleResetCheck runs IdleTimeout after every tap. Only the check scheduled
// by the most recent tap finds enough idle time and resets; older ones are
// no-ops.
func (m *Machine) idleResetCheck() {
	if m.clock.Now().Sub(m.lastTap) < IdleTimeout {
		return
	}
	m.shaking = true
	m.centered = false
	m.energy = 0
	m.pressed = false
	m.heartAnimating = false
	m.maxedSince = time.Time{}

	if m.shakeDelay <= 0 {
		m.startShaking()
		return
	}
	m.sched.After(m.shakeDelay, func() {
		if !m.centered {
			m.startShaking()
		}
	})
}

func (m *Machine) startShaking() {
	if m.shakeAnimating {
		return
	}
	m.shakeAnimating = true
	m.shakeSince = m.clock.Now()
}

func (m *Machine) stopShaking() {
	m.shakeAnimating = false
	m.shakeSince = time.Time{}
}

// SelectAvatar changes the displayed avatar. Nothing else is affected.
func (m *Machine) SelectAvatar(a Avatar) {
	if !a.Valid() {
		return
	}
	m.selection = a
}

// RenameAvatar sets the display name of a. Any text, including "", is kept.
func (m *Machine) RenameAvatar(a Avatar, text string) {
	m.names[a] = text
}

// DisplayName returns the name of a, or "" when it has none.
func (m *Machine) DisplayName(a Avatar) string {
	return m.names[a]
}

// Selection returns the selected avatar.
func (m *Machine) Selection() Avatar { return m.selection }

// Energy returns the current energy level.
func (m *Machine) Energy() int { return m.energy }

// State returns the coarse interaction state.
func (m *Machine) State() State { return m.Snapshot().State() }

// Snapshot copies the observable state.
func (m *Machine) Snapshot() Snapshot {
	parts := make([]Particle, len(m.live))
	copy(parts, m.live)
	return Snapshot{
		Selection:       m.selection,
		Name:            m.names[m.selection],
		Energy:          m.energy,
		Centered:        m.centered,
		Shaking:         m.shaking,
		ShakeAnimating:  m.shakeAnimating,
		ShakeSince:      m.shakeSince,
		Pressed:         m.pressed,
		HeartAnimating:  m.heartAnimating,
		MaxedSince:      m.maxedSince,
		LastInteraction: m.lastTap,
		Particles:       parts,
	}
}
