// Package game is the ebiten frontend of the zoo: it turns mouse, touch and
// keyboard input into machine operations and draws every frame from a
// machine snapshot.
package game

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/squeezy-zoo/internal/config"
	"github.com/iburimskiy/squeezy-zoo/internal/logger"
	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

// Squeaker plays a sound for each tap.
type Squeaker interface {
	Play(energy int)
	Level() float64
	LoadSample(path string) error
	SetMuted(muted bool)
	Muted() bool
}

// frameInput is what the user did since the previous tick.
type frameInput struct {
	presses  []image.Point
	releases []image.Point
	cursor   image.Point

	squeeze bool
	rename  bool
	mute    bool
	squeak  bool
	back    bool
	quit    bool
}

// view holds the smoothed values actually drawn, easing toward the pose.
type view struct {
	scaleX, scaleY float64
	rotation       float64
	headerScale    float64
	headerAlpha    float64
	fieldScale     float64
	fieldAlpha     float64
	glow           float64
}

type Game struct {
	log     *logger.Logger
	clock   zoo.Clock
	sched   *zoo.FrameScheduler
	zoo     *zoo.Machine
	sound   Squeaker
	dialogs Dialogs

	view view
	pose zoo.Pose

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	pickerOpen bool
	lastErr    error

	art *artCache
}

// NewGame wires a machine to the given sound and dialogs.
func NewGame(cfg config.Config, log *logger.Logger, clock zoo.Clock, sound Squeaker, dialogs Dialogs) *Game {
	g := &Game{
		log:     log,
		clock:   clock,
		sched:   zoo.NewFrameScheduler(clock),
		sound:   sound,
		dialogs: dialogs,
		prevKey: map[ebiten.Key]bool{},
		view: view{
			scaleX: 1, scaleY: 1,
			headerScale: 1, headerAlpha: 1,
			fieldScale: 1, fieldAlpha: 1,
		},
		art: newArtCache(),
	}

	opts := []zoo.Option{
		zoo.WithParticles(cfg.Particles),
		zoo.WithShakeRestartDelay(cfg.ShakeRestartDelay),
		zoo.WithTapHook(g.onTap),
	}
	if a, ok := zoo.ParseAvatar(cfg.Avatar); ok {
		opts = append(opts, zoo.WithSelection(a))
	} else {
		log.Warn("unknown avatar %q, using %s", cfg.Avatar, zoo.DefaultAvatar)
	}
	g.zoo = zoo.New(clock, g.sched, opts...)
	g.zoo.Start()
	sound.SetMuted(cfg.Muted)
	return g
}

func (g *Game) onTap(s zoo.Snapshot) {
	g.sound.Play(s.Energy)
	g.log.Event("tap", s.Selection.String(), fmt.Sprintf("state=%s energy=%d", s.State(), s.Energy))
}

func (g *Game) Update() error {
	now := g.clock.Now()
	g.sched.Run(now)

	if err := g.apply(g.readInput()); err != nil {
		return err
	}

	g.pose = zoo.PoseAt(g.zoo.Snapshot(), now)
	g.animate()
	return nil
}

func (g *Game) readInput() frameInput {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	var in frameInput
	mx, my := ebiten.CursorPosition()
	in.cursor = image.Pt(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.presses = append(in.presses, in.cursor)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.releases = append(in.releases, in.cursor)
	}
	// a touch counts as a full click
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pt := image.Pt(x, y)
		in.presses = append(in.presses, pt)
		in.releases = append(in.releases, pt)
	}

	in.squeeze = justPressed(ebiten.KeySpace)
	in.rename = justPressed(ebiten.KeyN)
	in.mute = justPressed(ebiten.KeyM)
	in.squeak = justPressed(ebiten.KeyS)
	in.back = justPressed(ebiten.KeyEscape)
	in.quit = justPressed(ebiten.KeyQ)
	return in
}

// apply runs one tick of input against the machine.
func (g *Game) apply(in frameInput) error {
	if in.quit || (in.back && !g.pickerOpen) {
		return ebiten.Termination
	}
	if in.back {
		g.pickerOpen = false
	}

	g.buttonHovered = buttonHit(in.cursor)

	for _, p := range in.presses {
		g.press(p)
	}
	for _, p := range in.releases {
		if g.buttonPressed && buttonHit(p) {
			g.pickerOpen = true
		}
		g.buttonPressed = false
	}

	if in.squeeze && !g.pickerOpen {
		g.zoo.HandleTap()
	}
	if in.rename {
		g.rename()
	}
	if in.mute {
		g.sound.SetMuted(!g.sound.Muted())
		g.log.Info("muted=%v", g.sound.Muted())
	}
	if in.squeak {
		g.chooseSqueak()
	}
	return nil
}

func (g *Game) press(p image.Point) {
	if g.pickerOpen {
		if a, ok := pickerIconAt(p); ok {
			g.zoo.SelectAvatar(a)
			g.log.Event("select", a.String(), "picker")
			g.pickerOpen = false
		} else if !sheetHit(p) {
			g.pickerOpen = false
		}
		return
	}

	switch {
	case avatarHit(p):
		g.zoo.HandleTap()
	case fieldHit(p):
		g.rename()
	case buttonHit(p):
		g.buttonPressed = true
	}
}

func (g *Game) rename() {
	a := g.zoo.Selection()
	name, ok, err := g.dialogs.AskName(g.zoo.DisplayName(a))
	if err != nil {
		g.fail(fmt.Errorf("rename: %w", err))
		return
	}
	if ok {
		g.zoo.RenameAvatar(a, name)
		g.log.Event("rename", a.String(), name)
	}
}

func (g *Game) chooseSqueak() {
	path, ok, err := g.dialogs.AskSqueakFile()
	if err != nil {
		g.fail(fmt.Errorf("choose squeak: %w", err))
		return
	}
	if !ok {
		return
	}
	if err := g.sound.LoadSample(path); err != nil {
		g.fail(err)
		return
	}
	g.lastErr = nil
	g.log.Info("squeak sample loaded from %s", path)
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.log.Error("%v", err)
}

func (g *Game) animate() {
	f := config.SmoothingFactor
	v := &g.view
	v.scaleX = smooth(v.scaleX, g.pose.ScaleX, f)
	v.scaleY = smooth(v.scaleY, g.pose.ScaleY, f)
	v.rotation = smooth(v.rotation, g.pose.Rotation, f)
	v.headerScale = smooth(v.headerScale, g.pose.HeaderScale, f)
	v.headerAlpha = smooth(v.headerAlpha, g.pose.HeaderAlpha, f)
	v.fieldScale = smooth(v.fieldScale, g.pose.FieldScale, f)
	v.fieldAlpha = smooth(v.fieldAlpha, g.pose.FieldAlpha, f)
	v.glow = smooth(v.glow, g.sound.Level(), f)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
