package zoo

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPoseScales(t *testing.T) {
	tests := []struct {
		name           string
		snap           Snapshot
		scaleX, scaleY float64
		headerAlpha    float64
	}{
		{"idle", Snapshot{Shaking: true}, 1, 1, 1},
		{"centered", Snapshot{Centered: true}, 1.3, 1.3, 0.4},
		{"pressed", Snapshot{Centered: true, Pressed: true}, 1.15, 0.85, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PoseAt(tt.snap, epoch)
			if !almost(p.ScaleX, tt.scaleX) || !almost(p.ScaleY, tt.scaleY) {
				t.Errorf("Expected scale %vx%v, got %vx%v", tt.scaleX, tt.scaleY, p.ScaleX, p.ScaleY)
			}
			if !almost(p.HeaderAlpha, tt.headerAlpha) {
				t.Errorf("Expected header alpha %v, got %v", tt.headerAlpha, p.HeaderAlpha)
			}
		})
	}
}

func TestPoseShakeOscillates(t *testing.T) {
	s := Snapshot{ShakeAnimating: true, ShakeSince: epoch}
	if r := PoseAt(s, epoch).Rotation; !almost(r, 0) {
		t.Errorf("Expected rotation 0 at start, got %v", r)
	}
	if r := PoseAt(s, epoch.Add(ShakeHalfPeriod)).Rotation; !almost(r, ShakeAngle) {
		t.Errorf("Expected rotation %v at half period, got %v", ShakeAngle, r)
	}
	if r := PoseAt(s, epoch.Add(2*ShakeHalfPeriod)).Rotation; !almost(r, 0) {
		t.Errorf("Expected rotation back to 0, got %v", r)
	}

	s.ShakeAnimating = false
	if r := PoseAt(s, epoch.Add(ShakeHalfPeriod)).Rotation; r != 0 {
		t.Errorf("Expected no rotation without shake, got %v", r)
	}
}

func TestPoseHeartPulse(t *testing.T) {
	s := Snapshot{Centered: true, Energy: MaxEnergy, HeartAnimating: true, MaxedSince: epoch}
	if h := PoseAt(s, epoch.Add(HeartPulseHalf)).HeartScale; !almost(h, HeartPulseScale) {
		t.Errorf("Expected heart scale %v, got %v", HeartPulseScale, h)
	}
	if h := PoseAt(s, epoch.Add(2*HeartPulseHalf)).HeartScale; !almost(h, 1) {
		t.Errorf("Expected heart scale 1, got %v", h)
	}
	s.HeartAnimating = false
	if h := PoseAt(s, epoch.Add(HeartPulseHalf)).HeartScale; h != 1 {
		t.Errorf("Expected resting heart, got %v", h)
	}
}

func TestPoseMoodAndSegments(t *testing.T) {
	p := PoseAt(Snapshot{Energy: 0}, epoch)
	if p.Mood != moodDepressed {
		t.Errorf("Expected %q, got %q", moodDepressed, p.Mood)
	}
	if !p.Segments[0] || p.Segments[1] {
		t.Errorf("Expected only the first segment lit, got %v", p.Segments)
	}

	p = PoseAt(Snapshot{Centered: true, Energy: 4}, epoch)
	if p.Mood != "" {
		t.Errorf("Expected no mood mid-way, got %q", p.Mood)
	}
	lit := 0
	for _, on := range p.Segments {
		if on {
			lit++
		}
	}
	if lit != 5 {
		t.Errorf("Expected 5 lit segments, got %d", lit)
	}

	p = PoseAt(Snapshot{Centered: true, Energy: MaxEnergy}, epoch)
	if p.Mood != moodStronger {
		t.Errorf("Expected %q, got %q", moodStronger, p.Mood)
	}
}

func TestPoseParticleProgress(t *testing.T) {
	s := Snapshot{Particles: []Particle{{ID: "a", Born: epoch}}}
	p := PoseAt(s, epoch.Add(ParticleLifetime/2))
	if len(p.Particles) != 1 {
		t.Fatalf("Expected 1 particle, got %d", len(p.Particles))
	}
	if got := p.Particles[0].Progress; !almost(got, 0.5) {
		t.Errorf("Expected progress 0.5, got %v", got)
	}
	p = PoseAt(s, epoch.Add(2*ParticleLifetime))
	if got := p.Particles[0].Alpha; got != 0 {
		t.Errorf("Expected alpha clamped to 0, got %v", got)
	}
}
