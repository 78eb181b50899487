package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for sample files with an unknown extension.
var ErrUnsupported = errors.New("unsupported file type")

const resampleQuality = 4

// Player mixes squeaks into the speaker. Before Init succeeds, or while
// muted, Play does nothing.
type Player struct {
	rate     beep.SampleRate
	duration time.Duration
	mixer    *beep.Mixer
	tap      *LevelTap
	sample   *beep.Buffer
	muted    bool
	ready    bool
}

// NewPlayer creates a player producing audio at rate.
func NewPlayer(rate beep.SampleRate, squeakLength time.Duration, ringSize int) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		rate:     rate,
		duration: squeakLength,
		mixer:    mixer,
		tap:      NewLevelTap(mixer, ringSize),
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	bufferSize := p.rate.N(time.Second / 20)
	if err := speaker.Init(p.rate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.ready = true
	return nil
}

// SetMuted silences or restores squeaks.
func (p *Player) SetMuted(muted bool) { p.muted = muted }

// Muted reports whether squeaks are silenced.
func (p *Player) Muted() bool { return p.muted }

// HasSample reports whether a custom squeak sample is loaded.
func (p *Player) HasSample() bool { return p.sample != nil }

// Level returns the loudness of what played most recently.
func (p *Player) Level() float64 {
	return p.tap.Level(p.rate.N(time.Second / 30))
}

// Play squeaks at the pitch for energy.
func (p *Player) Play(energy int) {
	if !p.ready || p.muted {
		return
	}
	s := p.Squeak(energy)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Squeak builds the streamer Play would mix for energy.
func (p *Player) Squeak(energy int) beep.Streamer {
	if p.sample == nil {
		return NewSqueak(SqueakFrequency(energy), p.duration, p.rate)
	}
	s := p.sample.Streamer(0, p.sample.Len())
	return &effects.Volume{
		Streamer: beep.ResampleRatio(resampleQuality, semitones(energy), s),
		Base:     2,
		Volume:   -0.5,
	}
}

// LoadSample decodes a .wav, .mp3 or .flac file into memory and uses it for
// every following squeak.
func (p *Player) LoadSample(path string) error {
	streamer, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return fmt.Errorf("%s: no audio", filepath.Base(path))
	}

	if p.ready {
		speaker.Lock()
		p.sample = buf
		speaker.Unlock()
		return nil
	}
	p.sample = buf
	return nil
}

// ClearSample returns to the synthesized squeak.
func (p *Player) ClearSample() { p.sample = nil }

func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}
