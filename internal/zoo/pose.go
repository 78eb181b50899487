package zoo

import (
	"math"
	"time"
)

const (
	ShakeAngle       = 5.0
	ShakeHalfPeriod  = 600 * time.Millisecond
	HeartPulseScale  = 1.2
	HeartPulseHalf   = 500 * time.Millisecond
	EnergySegments   = MaxEnergy + 1
	moodDepressed    = "Depressed..."
	moodStronger     = "You're stronger than you think!"
	centeredScale    = 1.3
	pressedScaleX    = 1.15
	pressedScaleY    = 0.85
	fadedHeaderScale = 0.7
	fadedHeaderAlpha = 0.4
	fadedFieldScale  = 0.8
	fadedFieldAlpha  = 0.5
)

// Pose holds the animation targets a renderer draws one frame with.
type Pose struct {
	ScaleX, ScaleY float64
	// Rotation in degrees, clockwise.
	Rotation    float64
	HeartScale  float64
	HeaderScale float64
	HeaderAlpha float64
	FieldScale  float64
	FieldAlpha  float64
	Mood        string
	MoodIcon    string
	// Segments[i] is lit when i <= Energy.
	Segments  [EnergySegments]bool
	Particles []ParticlePose
}

// ParticlePose places a particle at its current point of the rise.
type ParticlePose struct {
	Particle
	// Progress runs from 0 at spawn to 1 at removal.
	Progress float64
	Alpha    float64
	// Rise is the extra upward offset in layout pixels.
	Rise float64
}

// PoseAt derives the frame parameters for s at time now.
func PoseAt(s Snapshot, now time.Time) Pose {
	p := Pose{
		ScaleX:      1,
		ScaleY:      1,
		HeartScale:  1,
		HeaderScale: 1,
		HeaderAlpha: 1,
		FieldScale:  1,
		FieldAlpha:  1,
	}

	if s.Centered {
		p.ScaleX, p.ScaleY = centeredScale, centeredScale
		if s.Pressed {
			p.ScaleX, p.ScaleY = pressedScaleX, pressedScaleY
		}
		p.HeaderScale, p.HeaderAlpha = fadedHeaderScale, fadedHeaderAlpha
		p.FieldScale, p.FieldAlpha = fadedFieldScale, fadedFieldAlpha
	}

	if s.ShakeAnimating {
		p.Rotation = ShakeAngle * pingPong(now.Sub(s.ShakeSince), ShakeHalfPeriod)
	}
	if s.HeartAnimating {
		p.HeartScale = 1 + (HeartPulseScale-1)*pingPong(now.Sub(s.MaxedSince), HeartPulseHalf)
	}

	switch s.Energy {
	case 0:
		p.Mood, p.MoodIcon = moodDepressed, "😩"
	case MaxEnergy:
		p.Mood, p.MoodIcon = moodStronger, "🎉"
	}

	for i := range p.Segments {
		p.Segments[i] = i <= s.Energy
	}

	for _, part := range s.Particles {
		prog := clampUnit(float64(now.Sub(part.Born)) / float64(ParticleLifetime))
		p.Particles = append(p.Particles, ParticlePose{
			Particle: part,
			Progress: prog,
			Alpha:    1 - prog,
			Rise:     60 * prog,
		})
	}
	return p
}

// pingPong eases 0→1 over half and back to 0 over the next half, forever.
func pingPong(elapsed, half time.Duration) float64 {
	if elapsed < 0 || half <= 0 {
		return 0
	}
	phase := math.Mod(float64(elapsed)/float64(half), 2)
	if phase > 1 {
		phase = 2 - phase
	}
	return easeInOut(phase)
}

func easeInOut(x float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*clampUnit(x))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
