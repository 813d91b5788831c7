package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// A Key identifies a single key input, i.e. either a printable rune or a
// special key such as ESC, possibly modified.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a debug representation of this key.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}
