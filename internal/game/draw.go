package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/squeezy-zoo/internal/config"
	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

var (
	background = color.RGBA{R: 250, G: 247, B: 250, A: 255}
	titleColor = color.RGBA{R: 30, G: 30, B: 35, A: 255}
	secondary  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	unlit      = color.RGBA{R: 128, G: 128, B: 128, A: 51}
	sheetColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dimColor   = color.RGBA{A: 90}
)

// artCache renders avatars and the heart once, on first draw.
type artCache struct {
	avatars map[zoo.Avatar]*ebiten.Image
	heart   *ebiten.Image
}

func newArtCache() *artCache {
	return &artCache{avatars: map[zoo.Avatar]*ebiten.Image{}}
}

func (c *artCache) avatar(a zoo.Avatar) *ebiten.Image {
	img, ok := c.avatars[a]
	if !ok {
		img = ebiten.NewImage(artSize, artSize)
		drawAnimal(img, a)
		c.avatars[a] = img
	}
	return img
}

func (c *artCache) heartImage() *ebiten.Image {
	if c.heart == nil {
		c.heart = ebiten.NewImage(config.HeartSize, config.HeartSize)
		drawHeart(c.heart, config.HeartSize/2, config.HeartSize/2, config.HeartSize*0.95, pink)
	}
	return c.heart
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.zoo.Snapshot()

	g.drawHeader(screen)
	g.drawBackdropHeart(screen)
	g.drawGlow(screen)
	g.drawAvatar(screen, snap.Selection)
	g.drawParticles(screen)
	g.drawMood(screen)
	g.drawEnergyBar(screen)
	g.drawNameField(screen, snap.Name)
	g.drawButton(screen)
	if g.pickerOpen {
		g.drawPicker(screen, snap.Selection)
	}

	status := "Tap to squeeze | Space: squeeze  N: rename  S: squeak  M: mute  Esc/Q: quit"
	if g.sound.Muted() {
		status = "Muted | " + status
	}
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, statusY)
}

// drawText draws s centred on x with its baseline at y, scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale, alpha float64, clr color.Color) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, 0)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	v := g.view
	drawText(screen, "Squeezy Zoo", centerX, titleY, 3*v.headerScale, v.headerAlpha, titleColor)
	drawText(screen, "Let the Squishing begin!", centerX, subtitleY, 1.4*v.headerScale, v.headerAlpha, secondary)
}

func (g *Game) drawBackdropHeart(screen *ebiten.Image) {
	img := g.art.heartImage()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-config.HeartSize/2, -config.HeartSize/2)
	op.GeoM.Scale(g.pose.HeartScale, g.pose.HeartScale)
	op.GeoM.Translate(centerX, avatarY)
	op.ColorScale.ScaleAlpha(0.2)
	screen.DrawImage(img, op)
}

func (g *Game) drawGlow(screen *ebiten.Image) {
	if g.view.glow < 0.01 {
		return
	}
	r, gr, b := hsvToRgb(330+60*g.view.glow, 0.5, 1)
	clr := withAlpha(color.RGBA{R: r, G: gr, B: b, A: 255}, 0.35*g.view.glow)
	radius := float32(config.AvatarHeight/2) * float32(g.view.scaleY) * float32(1+0.15*g.view.glow)
	vector.DrawFilledCircle(screen, centerX, avatarY, radius, clr, true)
}

func (g *Game) drawAvatar(screen *ebiten.Image, a zoo.Avatar) {
	img := g.art.avatar(a)
	v := g.view
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-artSize/2, -artSize/2)
	// the art is square; stretch it to the avatar frame
	op.GeoM.Scale(float64(config.AvatarWidth)/artSize, float64(config.AvatarHeight)/artSize)
	op.GeoM.Scale(v.scaleX, v.scaleY)
	op.GeoM.Rotate(v.rotation * math.Pi / 180)
	op.GeoM.Translate(centerX, avatarY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.pose.Particles {
		x := float32(centerX + p.X)
		y := float32(avatarY + p.Y - p.Rise)
		clr := withAlpha(pink, p.Alpha)
		drawHeart(screen, x, y, float32(p.Size), clr)
	}
}

func (g *Game) drawMood(screen *ebiten.Image) {
	if g.pose.Mood == "" {
		return
	}
	drawText(screen, g.pose.Mood, centerX, moodY, 1.2, 1, titleColor)
}

func (g *Game) drawEnergyBar(screen *ebiten.Image) {
	for i, lit := range g.pose.Segments {
		x, y, w, h := segmentRect(i)
		clr := unlit
		if lit {
			clr = pink
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, true)
	}
}

func (g *Game) drawNameField(screen *ebiten.Image, name string) {
	v := g.view
	drawText(screen, "Name your buddy:", centerX, labelY, v.headerScale, v.headerAlpha, secondary)

	x, y, w, h := fieldRect()
	s := float32(v.fieldScale)
	fw, fh := float32(w)*s, float32(h)*s
	fx := float32(x) + (float32(w)-fw)/2
	fy := float32(y) + (float32(h)-fh)/2
	border := withAlpha(color.RGBA{R: 190, G: 190, B: 195, A: 255}, v.fieldAlpha)
	vector.DrawFilledRect(screen, fx, fy, fw, fh, withAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, v.fieldAlpha), true)
	vector.StrokeRect(screen, fx, fy, fw, fh, 1, border, true)

	label, clr := name, titleColor
	if label == "" {
		label, clr = "Enter name", secondary
	}
	drawText(screen, label, centerX, float64(y+h/2+4), v.fieldScale, v.fieldAlpha, clr)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 190, G: 190, B: 195, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 215, G: 215, B: 220, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 232, G: 232, B: 235, A: 255} // Normal
	}

	x, y, w, h := buttonRect()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, true)
	drawText(screen, "Choose Your Buddy", centerX, float64(y+h/2+4), 1.2, 1, pink)
}

func (g *Game) drawPicker(screen *ebiten.Image, selected zoo.Avatar) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, dimColor, false)
	vector.DrawFilledRect(screen, 0, sheetY, config.WindowWidth, config.SheetHeight, sheetColor, false)
	// drag indicator
	vector.DrawFilledRect(screen, centerX-18, sheetY+8, 36, 5, unlit, true)
	drawText(screen, "Select a Buddy", centerX, sheetY+44, 1.4, 1, titleColor)

	for i, a := range zoo.Avatars() {
		x, y, w, h := iconRect(i)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w)/artSize, float64(h)/artSize)
		op.GeoM.Translate(float64(x), float64(y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.art.avatar(a), op)

		border := color.Color(softGray)
		if a == selected {
			border = pink
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, border, true)
	}
}
