package zoo

import (
	"math/rand"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	clock *ManualClock
	sched *FrameScheduler
	m     *Machine
}

func newHarness(opts ...Option) *harness {
	clock := NewManualClock(epoch)
	sched := NewFrameScheduler(clock)
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	h := &harness{clock: clock, sched: sched, m: New(clock, sched, opts...)}
	h.m.Start()
	return h
}

// wait advances time and runs every callback that became due.
func (h *harness) wait(d time.Duration) {
	h.clock.Advance(d)
	h.sched.Run(h.clock.Now())
}

func assertIdle(t *testing.T, s Snapshot) {
	t.Helper()
	if s.Energy != 0 || s.Centered || !s.Shaking || s.HeartAnimating || s.Pressed {
		t.Fatalf("Expected idle defaults, got energy=%d centered=%v shaking=%v heart=%v pressed=%v",
			s.Energy, s.Centered, s.Shaking, s.HeartAnimating, s.Pressed)
	}
}

func TestNewMachineStartsIdle(t *testing.T) {
	h := newHarness()
	s := h.m.Snapshot()
	assertIdle(t, s)
	if s.Selection != PinkBear {
		t.Errorf("Expected pinkBear selected, got %s", s.Selection)
	}
	if s.Name != "Teddy" {
		t.Errorf("Expected default name Teddy, got %q", s.Name)
	}
	if !s.ShakeAnimating {
		t.Error("Expected idle shake animation after Start")
	}
	if h.m.State() != Idle {
		t.Errorf("Expected Idle, got %s", h.m.State())
	}
}

func TestFirstTapCentersWithoutEnergy(t *testing.T) {
	h := newHarness()
	h.m.HandleTap()

	s := h.m.Snapshot()
	if !s.Centered {
		t.Fatal("Expected centered after first tap")
	}
	if s.Energy != 0 {
		t.Errorf("Expected energy 0 after centering tap, got %d", s.Energy)
	}
	if s.Shaking || s.ShakeAnimating {
		t.Error("Expected shake to stop when centered")
	}
	if s.Pressed {
		t.Error("Centering tap must not press")
	}
	if h.m.State() != Centered {
		t.Errorf("Expected Centered, got %s", h.m.State())
	}
}

func TestTapsIncrementEnergyUntilMax(t *testing.T) {
	h := newHarness()
	h.m.HandleTap()

	for i := 1; i <= MaxEnergy; i++ {
		h.wait(100 * time.Millisecond)
		h.m.HandleTap()
		if got := h.m.Energy(); got != i {
			t.Fatalf("tap %d: expected energy %d, got %d", i, i, got)
		}
	}
	if h.m.State() != Maxed {
		t.Fatalf("Expected Maxed at energy %d, got %s", MaxEnergy, h.m.State())
	}

	for i := 0; i < 5; i++ {
		h.wait(100 * time.Millisecond)
		h.m.HandleTap()
	}
	if got := h.m.Energy(); got != MaxEnergy {
		t.Errorf("Expected energy capped at %d, got %d", MaxEnergy, got)
	}
}

func TestEnergyStaysInRangeForRandomTaps(t *testing.T) {
	h := newHarness()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		h.wait(time.Duration(r.Intn(3000)) * time.Millisecond)
		h.m.HandleTap()
		s := h.m.Snapshot()
		if s.Energy < 0 || s.Energy > MaxEnergy {
			t.Fatalf("step %d: energy %d out of range", i, s.Energy)
		}
		if !s.Centered && s.Energy != 0 {
			t.Fatalf("step %d: energy %d while not centered", i, s.Energy)
		}
	}
}

func TestIdleResetIsDebounced(t *testing.T) {
	h := newHarness()
	h.m.HandleTap() // t
	h.wait(time.Second)
	h.m.HandleTap() // t+1, energy 1

	h.wait(time.Second) // t+2: first check fires, stale
	s := h.m.Snapshot()
	if !s.Centered || s.Energy != 1 {
		t.Fatalf("Expected stale check to be a no-op, got centered=%v energy=%d", s.Centered, s.Energy)
	}

	h.wait(999 * time.Millisecond)
	if !h.m.Snapshot().Centered {
		t.Fatal("Expected no reset before the second check is due")
	}

	h.wait(time.Millisecond) // t+3
	assertIdle(t, h.m.Snapshot())
}

func TestScenarioPumpToMaxThenIdle(t *testing.T) {
	h := newHarness()
	h.m.HandleTap()
	if s := h.m.Snapshot(); !s.Centered || s.Energy != 0 {
		t.Fatalf("Expected centered with energy 0, got centered=%v energy=%d", s.Centered, s.Energy)
	}

	for i := 0; i < 9; i++ {
		h.wait(150 * time.Millisecond)
		h.m.HandleTap()
	}
	s := h.m.Snapshot()
	if s.Energy != MaxEnergy || !s.HeartAnimating {
		t.Fatalf("Expected maxed, got energy=%d heart=%v", s.Energy, s.HeartAnimating)
	}

	h.wait(IdleTimeout)
	assertIdle(t, h.m.Snapshot())
	if h.m.State() != Idle {
		t.Errorf("Expected Idle after timeout, got %s", h.m.State())
	}
}

func TestPressedClearsAfterLatestPress(t *testing.T) {
	h := newHarness()
	h.m.HandleTap()
	h.m.HandleTap()
	if !h.m.Snapshot().Pressed {
		t.Fatal("Expected pressed after counted tap")
	}

	h.wait(150 * time.Millisecond)
	h.m.HandleTap()

	// first press timer fires at 200ms but the second press is 50ms old
	h.wait(50 * time.Millisecond)
	if !h.m.Snapshot().Pressed {
		t.Fatal("Expected stale press timer to leave the newer press alone")
	}

	h.wait(150 * time.Millisecond)
	if h.m.Snapshot().Pressed {
		t.Error("Expected pressed to clear 200ms after the last press")
	}
}

func TestShakeRestartDelay(t *testing.T) {
	h := newHarness(WithShakeRestartDelay(ShakeRestartDelay))
	h.m.HandleTap()
	h.wait(IdleTimeout)

	s := h.m.Snapshot()
	assertIdle(t, s)
	if s.ShakeAnimating {
		t.Fatal("Expected shake animation to wait for the restart delay")
	}

	h.wait(ShakeRestartDelay)
	if !h.m.Snapshot().ShakeAnimating {
		t.Error("Expected shake animation after the restart delay")
	}
}

func TestShakeRestartSkippedWhenTappedAgain(t *testing.T) {
	h := newHarness(WithShakeRestartDelay(ShakeRestartDelay))
	h.m.HandleTap()
	h.wait(IdleTimeout)

	h.wait(100 * time.Millisecond)
	h.m.HandleTap()
	h.wait(ShakeRestartDelay)

	if h.m.Snapshot().ShakeAnimating {
		t.Error("Expected delayed shake to stay off once centered again")
	}
}

func TestParticlesExpire(t *testing.T) {
	h := newHarness(WithParticles(true))
	h.m.HandleTap()
	if n := len(h.m.Snapshot().Particles); n != 0 {
		t.Fatalf("Expected no particle for the centering tap, got %d", n)
	}

	h.m.HandleTap()
	h.wait(600 * time.Millisecond)
	h.m.HandleTap()

	parts := h.m.Snapshot().Particles
	if len(parts) != 2 {
		t.Fatalf("Expected 2 particles, got %d", len(parts))
	}
	if parts[0].ID == parts[1].ID {
		t.Error("Expected distinct particle ids")
	}
	for _, p := range parts {
		if p.X < -80 || p.X > 80 || p.Y > -40 || p.Y < -120 || p.Size < 18 || p.Size > 34 {
			t.Errorf("particle out of bounds: %+v", p)
		}
	}

	h.wait(600 * time.Millisecond)
	if n := len(h.m.Snapshot().Particles); n != 1 {
		t.Fatalf("Expected first particle gone after %v, got %d left", ParticleLifetime, n)
	}
	h.wait(600 * time.Millisecond)
	if n := len(h.m.Snapshot().Particles); n != 0 {
		t.Errorf("Expected all particles gone, got %d", n)
	}
}

func TestParticlesDisabledByDefault(t *testing.T) {
	h := newHarness()
	h.m.HandleTap()
	h.m.HandleTap()
	if n := len(h.m.Snapshot().Particles); n != 0 {
		t.Errorf("Expected no particles, got %d", n)
	}
}

func TestRenameSurvivesSelection(t *testing.T) {
	h := newHarness()
	h.m.RenameAvatar(PinkBear, "Rex")
	h.m.SelectAvatar(BlueCat)
	if got := h.m.Snapshot().Name; got != "Kitty" {
		t.Errorf("Expected Kitty for blueCat, got %q", got)
	}
	h.m.SelectAvatar(PinkBear)
	if got := h.m.DisplayName(PinkBear); got != "Rex" {
		t.Errorf("Expected Rex, got %q", got)
	}
}

func TestRenameAllowsEmpty(t *testing.T) {
	h := newHarness()
	h.m.RenameAvatar(Hare, "")
	if got := h.m.DisplayName(Hare); got != "" {
		t.Errorf("Expected empty name, got %q", got)
	}
	if got := h.m.DisplayName(Avatar("owl")); got != "" {
		t.Errorf("Expected empty name for unknown avatar, got %q", got)
	}
}

func TestSelectAvatarTouchesNothingElse(t *testing.T) {
	h := newHarness()
	h.m.HandleTap()
	h.m.HandleTap()
	before := h.m.Snapshot()

	h.m.SelectAvatar(Hare)
	h.m.SelectAvatar(Avatar("owl"))

	after := h.m.Snapshot()
	if after.Selection != Hare {
		t.Fatalf("Expected hare, got %s", after.Selection)
	}
	if after.Energy != before.Energy || after.Centered != before.Centered || after.Pressed != before.Pressed {
		t.Error("Expected selection to leave interaction state untouched")
	}
}

func TestTapHookSeesResult(t *testing.T) {
	var seen []int
	h := newHarness(WithTapHook(func(s Snapshot) { seen = append(seen, s.Energy) }))
	h.m.HandleTap()
	h.m.HandleTap()
	h.m.HandleTap()
	want := []int{0, 1, 2}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d hook calls, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("call %d: expected energy %d, got %d", i, want[i], seen[i])
		}
	}
}

func TestWithSelectionIgnoresUnknown(t *testing.T) {
	clock := NewManualClock(epoch)
	m := New(clock, NewFrameScheduler(clock), WithSelection(Avatar("owl")))
	if m.Selection() != DefaultAvatar {
		t.Errorf("Expected %s, got %s", DefaultAvatar, m.Selection())
	}
	m = New(clock, NewFrameScheduler(clock), WithSelection(BrownDog))
	if m.Selection() != BrownDog {
		t.Errorf("Expected brownDog, got %s", m.Selection())
	}
}
