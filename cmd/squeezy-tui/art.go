package main

import "github.com/iburimskiy/squeezy-zoo/internal/zoo"

var art = map[zoo.Avatar][]string{
	zoo.PinkBear: {
		`(c)___(c)`,
		` / o o \ `,
		`(   Y   )`,
		` \_____/ `,
	},
	zoo.YellowDuck: {
		`   __     `,
		` <(o )___ `,
		`  ( ._> / `,
		`   '---'  `,
	},
	zoo.BlueCat: {
		` /\_/\  `,
		`( o.o ) `,
		` > ^ <  `,
		`(_____) `,
	},
	zoo.BrownDog: {
		` / \__     `,
		`(    @\___ `,
		` /        O`,
		`/   (_____/`,
	},
	zoo.Hare: {
		` (\(\   `,
		` ( -.-) `,
		` o_(")(")`,
		`         `,
	},
}

// artSize returns the width and height of the widest avatar drawing.
func artSize() (w, h int) {
	for _, lines := range art {
		if len(lines) > h {
			h = len(lines)
		}
		for _, l := range lines {
			if len(l) > w {
				w = len(l)
			}
		}
	}
	return w, h
}
