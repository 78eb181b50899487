package game

import (
	"image"

	"github.com/iburimskiy/squeezy-zoo/internal/config"
	"github.com/iburimskiy/squeezy-zoo/internal/zoo"
)

const (
	centerX = config.WindowWidth / 2
	avatarY = config.AvatarY + config.AvatarHeight/2

	titleY    = 50
	subtitleY = 82
	moodY     = 440
	labelY    = config.FieldY - 20
	statusY   = config.WindowHeight - 20
	sheetY    = config.WindowHeight - config.SheetHeight
	iconsY    = sheetY + 80
)

func inRect(p image.Point, x, y, w, h int) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

// avatarHit reports whether p lands on the resting avatar.
func avatarHit(p image.Point) bool {
	dx := p.X - centerX
	dy := p.Y - avatarY
	r := config.AvatarHeight / 2
	return dx*dx+dy*dy <= r*r
}

func buttonRect() (x, y, w, h int) {
	return centerX - config.ButtonWidth/2, config.ButtonY, config.ButtonWidth, config.ButtonHeight
}

func buttonHit(p image.Point) bool {
	x, y, w, h := buttonRect()
	return inRect(p, x, y, w, h)
}

func fieldRect() (x, y, w, h int) {
	return centerX - config.FieldWidth/2, config.FieldY, config.FieldWidth, config.FieldHeight
}

func fieldHit(p image.Point) bool {
	x, y, w, h := fieldRect()
	return inRect(p, x, y, w, h)
}

func sheetHit(p image.Point) bool {
	return p.Y >= sheetY
}

// iconRect returns the picker cell of the i-th avatar in picker order.
func iconRect(i int) (x, y, w, h int) {
	n := len(zoo.Avatars())
	total := n*config.IconSize + (n-1)*config.IconGap
	x0 := centerX - total/2
	return x0 + i*(config.IconSize+config.IconGap), iconsY, config.IconSize, config.IconSize
}

// pickerIconAt returns the avatar whose picker cell contains p.
func pickerIconAt(p image.Point) (zoo.Avatar, bool) {
	for i, a := range zoo.Avatars() {
		x, y, w, h := iconRect(i)
		if inRect(p, x, y, w, h) {
			return a, true
		}
	}
	return "", false
}

func segmentRect(i int) (x, y, w, h int) {
	total := zoo.EnergySegments*config.SegmentWidth + (zoo.EnergySegments-1)*config.SegmentGap
	x0 := centerX - total/2
	return x0 + i*(config.SegmentWidth+config.SegmentGap), config.EnergyBarY, config.SegmentWidth, config.SegmentHeight
}
