// Package input maps terminal key events onto playback intents. Bindings
// live in a declarative table so the main loop never switches on raw keys.
package input

import "github.com/gdamore/tcell/v2"

// Intent is a discrete playback command resolved from a key event
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentTogglePlay
	IntentRestart
	IntentStepForward
	IntentStepBackward
	IntentFastForward
	IntentRewind
)

// KeyTable maps keys to intents. Special keys (arrows, Escape, Ctrl-*)
// and printable runes live in separate tables, matching how tcell
// reports them.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the default playback bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentStepBackward,
			tcell.KeyRight:  IntentStepForward,
		},
		Runes: map[rune]Intent{
			' ': IntentTogglePlay,
			'r': IntentRestart,
			'R': IntentRestart,
			'f': IntentFastForward,
			'F': IntentFastForward,
			'b': IntentRewind,
			'B': IntentRewind,
			'q': IntentQuit,
			'Q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
