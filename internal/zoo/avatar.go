package zoo

import "sort"

// Avatar identifies one of the animals the user can pick.
type Avatar string

const (
	PinkBear   Avatar = "pinkBear"
	YellowDuck Avatar = "yellowDuck"
	BlueCat    Avatar = "blueCat"
	BrownDog   Avatar = "brownDog"
	Hare       Avatar = "hare"
)

// DefaultAvatar is selected when the app starts.
const DefaultAvatar = PinkBear

var defaultNames = map[Avatar]string{
	PinkBear:   "Teddy",
	YellowDuck: "Ducky",
	BlueCat:    "Kitty",
	BrownDog:   "Doggo",
	Hare:       "Bunny",
}

var icons = map[Avatar]string{
	PinkBear:   "teddybear.fill",
	YellowDuck: "bird",
	BlueCat:    "cat",
	BrownDog:   "dog",
	Hare:       "hare",
}

// Avatars returns the fixed avatar set in picker order (sorted by identifier).
func Avatars() []Avatar {
	out := make([]Avatar, 0, len(icons))
	for a := range icons {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether a belongs to the fixed avatar set.
func (a Avatar) Valid() bool {
	_, ok := icons[a]
	return ok
}

// Icon returns the picker icon name for a.
func (a Avatar) Icon() string { return icons[a] }

// DefaultName returns the name an avatar starts with.
func (a Avatar) DefaultName() string { return defaultNames[a] }

func (a Avatar) String() string { return string(a) }

// ParseAvatar resolves an identifier such as "blueCat".
func ParseAvatar(s string) (Avatar, bool) {
	a := Avatar(s)
	return a, a.Valid()
}

// Next returns the avatar after a in picker order, wrapping around.
func (a Avatar) Next() Avatar {
	all := Avatars()
	for i, v := range all {
		if v == a {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
