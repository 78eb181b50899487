package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/squeezy-zoo/internal/logger"
	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

// squeaker is the part of the sound player the terminal app needs.
type squeaker interface {
	Play(energy int)
	SetMuted(muted bool)
	Muted() bool
}

var (
	styleDefault = tcell.StyleDefault
	stylePink    = tcell.StyleDefault.Foreground(tcell.ColorHotPink)
	styleFaded   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBold    = tcell.StyleDefault.Bold(true)
	styleField   = tcell.StyleDefault.Reverse(true)
)

type app struct {
	screen tcell.Screen
	clock  zoo.Clock
	sched  *zoo.FrameScheduler
	zoo    *zoo.Machine
	sound  squeaker
	log    *logger.Logger

	width, height int
	editing       bool
	mouseDown     bool
}

func newApp(screen tcell.Screen, clock zoo.Clock, sound squeaker, log *logger.Logger, opts ...zoo.Option) *app {
	a := &app{
		screen: screen,
		clock:  clock,
		sched:  zoo.NewFrameScheduler(clock),
		sound:  sound,
		log:    log,
	}
	opts = append(opts, zoo.WithTapHook(func(s zoo.Snapshot) {
		a.sound.Play(s.Energy)
		a.log.Event("tap", s.Selection.String(), fmt.Sprintf("state=%s energy=%d", s.State(), s.Energy))
	}))
	a.zoo = zoo.New(clock, a.sched, opts...)
	a.zoo.Start()
	a.width, a.height = screen.Size()
	return a
}

// artOrigin is the top-left cell of the resting avatar drawing.
func (a *app) artOrigin() (x, y int) {
	w, _ := artSize()
	return a.width/2 - w/2, 6
}

func (a *app) avatarHit(x, y int) bool {
	ox, oy := a.artOrigin()
	w, h := artSize()
	return x >= ox-2 && x < ox+w+2 && y >= oy-1 && y < oy+h+1
}

// handleEvent applies one terminal event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.editing {
			a.editName(ev)
			return true
		}
		return a.handleKey(ev)

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.mouseDown {
			x, y := ev.Position()
			if a.avatarHit(x, y) {
				a.zoo.HandleTap()
			}
		}
		a.mouseDown = down

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		next := a.zoo.Selection().Next()
		a.zoo.SelectAvatar(next)
		a.log.Event("select", next.String(), "tab")
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.zoo.HandleTap()
		case 'n':
			a.editing = true
		case 'm':
			a.sound.SetMuted(!a.sound.Muted())
		}
	}
	return true
}

// editName edits the selected avatar's name in place; every keystroke is a
// rename, like a bound text field.
func (a *app) editName(ev *tcell.EventKey) {
	sel := a.zoo.Selection()
	name := []rune(a.zoo.DisplayName(sel))
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		a.editing = false
		a.log.Event("rename", sel.String(), string(name))
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(name) == 0 {
			return
		}
		name = name[:len(name)-1]
	case tcell.KeyRune:
		name = append(name, ev.Rune())
	default:
		return
	}
	a.zoo.RenameAvatar(sel, string(name))
}

func (a *app) puts(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *app) putsCentered(y int, s string, style tcell.Style) {
	a.puts(a.width/2-len([]rune(s))/2, y, s, style)
}

func (a *app) draw(now time.Time) {
	a.screen.Clear()
	snap := a.zoo.Snapshot()
	pose := zoo.PoseAt(snap, now)

	header := styleBold
	if snap.Centered {
		header = styleFaded
	}
	a.putsCentered(1, "Squeezy Zoo", header)
	a.putsCentered(2, "Let the Squishing begin!", styleFaded)

	a.drawHeart(pose)
	a.drawAvatar(snap, pose)
	a.drawParticles(pose)

	_, h := artSize()
	row := 6 + h + 2
	if pose.Mood != "" {
		a.putsCentered(row, pose.MoodIcon+" "+pose.Mood, styleDefault)
	}
	a.drawEnergyBar(row+2, pose)

	a.putsCentered(row+4, "Name your buddy:", styleFaded)
	name := snap.Name
	if a.editing {
		name += "_"
	} else if name == "" {
		name = "Enter name"
	}
	a.putsCentered(row+5, " "+name+" ", styleField)

	a.putsCentered(row+7, "Buddy: "+snap.Selection.String()+"  [Tab] next", stylePink)

	status := "click/space: squeeze  n: name  m: mute  q: quit"
	if a.sound.Muted() {
		status = "muted | " + status
	}
	a.puts(0, a.height-1, status, styleFaded)
	a.screen.Show()
}

func (a *app) drawHeart(pose zoo.Pose) {
	// the pulse widens the row of hearts
	n := 3 + int(math.Round((pose.HeartScale-1)/(zoo.HeartPulseScale-1)*2))
	hearts := ""
	for i := 0; i < n; i++ {
		hearts += "♥ "
	}
	style := styleFaded
	if pose.HeartScale > 1 {
		style = stylePink
	}
	a.putsCentered(4, hearts, style)
}

func (a *app) drawAvatar(snap zoo.Snapshot, pose zoo.Pose) {
	ox, oy := a.artOrigin()
	ox += int(math.Round(pose.Rotation / zoo.ShakeAngle * 2))

	lines := art[snap.Selection]
	style := styleDefault
	if snap.Centered {
		style = stylePink
	}
	if snap.Pressed {
		// squashed: drop the top row and sit one lower
		lines = lines[1:]
		oy++
	}
	for i, l := range lines {
		a.puts(ox, oy+i, l, style)
	}
}

func (a *app) drawParticles(pose zoo.Pose) {
	ox, oy := a.artOrigin()
	w, _ := artSize()
	for _, p := range pose.Particles {
		x := ox + w/2 + int(p.X/10)
		y := oy + int((p.Y-p.Rise)/40)
		if y < 0 {
			continue
		}
		style := stylePink
		if p.Alpha < 0.4 {
			style = styleFaded
		}
		a.screen.SetContent(x, y, '♥', nil, style)
	}
}

func (a *app) drawEnergyBar(y int, pose zoo.Pose) {
	x := a.width/2 - len(pose.Segments)
	for i, lit := range pose.Segments {
		style := styleFaded
		if lit {
			style = stylePink
		}
		a.screen.SetContent(x+2*i, y, '▮', nil, style)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			now := a.clock.Now()
			a.sched.Run(now)
			a.draw(now)
		}
	}
}
