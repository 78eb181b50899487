package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

const artSize = 220

var (
	pink      = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	softGray  = color.RGBA{R: 200, G: 200, B: 205, A: 255}
	ink       = color.RGBA{R: 40, G: 30, B: 40, A: 255}
	cheekPink = color.RGBA{R: 255, G: 150, B: 170, A: 160}
)

type palette struct {
	fur, inner color.RGBA
}

var palettes = map[zoo.Avatar]palette{
	zoo.PinkBear:   {fur: color.RGBA{R: 246, G: 160, B: 190, A: 255}, inner: color.RGBA{R: 252, G: 210, B: 222, A: 255}},
	zoo.YellowDuck: {fur: color.RGBA{R: 250, G: 215, B: 80, A: 255}, inner: color.RGBA{R: 255, G: 150, B: 40, A: 255}},
	zoo.BlueCat:    {fur: color.RGBA{R: 130, G: 170, B: 235, A: 255}, inner: color.RGBA{R: 200, G: 215, B: 250, A: 255}},
	zoo.BrownDog:   {fur: color.RGBA{R: 165, G: 115, B: 75, A: 255}, inner: color.RGBA{R: 215, G: 175, B: 135, A: 255}},
	zoo.Hare:       {fur: color.RGBA{R: 215, G: 210, B: 205, A: 255}, inner: color.RGBA{R: 245, G: 200, B: 205, A: 255}},
}

// fillTriangle fills an isosceles triangle from apex (x, y0) down to a base
// of half-width hw at y1, one row at a time.
func fillTriangle(dst *ebiten.Image, x, y0, y1, hw float32, clr color.Color) {
	if y1 == y0 {
		return
	}
	step := float32(1)
	if y1 < y0 {
		step = -1
	}
	for y := y0; (step > 0 && y <= y1) || (step < 0 && y >= y1); y += step {
		w := hw * (y - y0) / (y1 - y0)
		vector.DrawFilledRect(dst, x-w, y, 2*w, 1, clr, true)
	}
}

// drawHeart fills a heart of the given width centred on (cx, cy).
func drawHeart(dst *ebiten.Image, cx, cy, size float32, clr color.Color) {
	r := size / 4
	top := cy - size/8
	vector.DrawFilledCircle(dst, cx-r, top, r, clr, true)
	vector.DrawFilledCircle(dst, cx+r, top, r, clr, true)
	// inverted triangle: apex at the bottom, base through the lobe centres
	fillTriangle(dst, cx, cy+size/2, top, size/2*0.97, clr)
}

// drawAnimal paints a into an artSize square.
func drawAnimal(dst *ebiten.Image, a zoo.Avatar) {
	p, ok := palettes[a]
	if !ok {
		p = palette{fur: softGray, inner: softGray}
	}
	const c = artSize / 2
	head := float32(78)
	headY := float32(c + 20)

	switch a {
	case zoo.PinkBear:
		for _, dx := range []float32{-58, 58} {
			vector.DrawFilledCircle(dst, c+dx, headY-58, 28, p.fur, true)
			vector.DrawFilledCircle(dst, c+dx, headY-58, 15, p.inner, true)
		}
	case zoo.BlueCat:
		for _, dx := range []float32{-45, 45} {
			fillTriangle(dst, c+dx*1.3, headY-head-18, headY-35, 30, p.fur)
			fillTriangle(dst, c+dx*1.3, headY-head-4, headY-42, 16, p.inner)
		}
	case zoo.BrownDog:
		for _, dx := range []float32{-72, 72} {
			for i := 0; i < 5; i++ {
				vector.DrawFilledCircle(dst, c+dx, headY-40+float32(i)*16, 22, p.inner, true)
			}
		}
	case zoo.Hare:
		for _, dx := range []float32{-28, 28} {
			for i := 0; i < 6; i++ {
				y := headY - head - float32(i)*14
				vector.DrawFilledCircle(dst, c+dx, y, 17, p.fur, true)
				vector.DrawFilledCircle(dst, c+dx, y, 8, p.inner, true)
			}
		}
	case zoo.YellowDuck:
		vector.DrawFilledCircle(dst, c-6, headY-head-4, 12, p.fur, true)
		vector.DrawFilledCircle(dst, c+8, headY-head-8, 10, p.fur, true)
	}

	vector.DrawFilledCircle(dst, c, headY, head, p.fur, true)

	// face
	vector.DrawFilledCircle(dst, c-28, headY-12, 9, ink, true)
	vector.DrawFilledCircle(dst, c+28, headY-12, 9, ink, true)
	vector.DrawFilledCircle(dst, c-25, headY-15, 3, color.White, true)
	vector.DrawFilledCircle(dst, c+31, headY-15, 3, color.White, true)
	vector.DrawFilledCircle(dst, c-46, headY+14, 11, cheekPink, true)
	vector.DrawFilledCircle(dst, c+46, headY+14, 11, cheekPink, true)

	if a == zoo.YellowDuck {
		vector.DrawFilledRect(dst, c-22, headY+6, 44, 14, p.inner, true)
		vector.DrawFilledCircle(dst, c-22, headY+13, 7, p.inner, true)
		vector.DrawFilledCircle(dst, c+22, headY+13, 7, p.inner, true)
		return
	}
	vector.DrawFilledCircle(dst, c, headY+10, 24, p.inner, true)
	vector.DrawFilledCircle(dst, c, headY+4, 7, ink, true)
	vector.StrokeLine(dst, c, headY+11, c-8, headY+19, 2, ink, true)
	vector.StrokeLine(dst, c, headY+11, c+8, headY+19, 2, ink, true)
}
