package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Dialogs asks the user for input outside the game window. Each method
// blocks until the dialog closes; ok is false when the user cancelled.
type Dialogs interface {
	AskName(current string) (name string, ok bool, err error)
	AskSqueakFile() (path string, ok bool, err error)
}

// ZenityDialogs shows native dialogs.
type ZenityDialogs struct{}

// AskName opens a text entry prefilled with the current name.
func (ZenityDialogs) AskName(current string) (string, bool, error) {
	name, err := zenity.Entry(
		"Name your buddy:",
		zenity.Title("Squeezy Zoo"),
		zenity.EntryText(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return name, true, nil
}

// AskSqueakFile lets the user pick an audio file to squeak with.
func (ZenityDialogs) AskSqueakFile() (string, bool, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a Squeak"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return filename, true, nil
}
