package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// A Keyspec is a full key sequence specification string, e.g. "<space>qw"
// meaning the SPACE key, then the Q key, then the W key.
type Keyspec string

// ConfigKeyspecToKeys converts a key sequence specification string to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos := range spec {
		switch spec[pos] {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{specR[pos]})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], specR[pos])

		default:
			if specialContext {
				if !unicode.IsLetter(specR[pos]) && spec[pos] != '-' {
					return nil,
						fmt.Errorf("illegal character '%c' in special context (pos %d)", spec[pos], pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], specR[pos])
			} else {
				keys = append(keys, []rune{specR[pos]})
			}

		}
	}

	if specialContext {
		return nil, fmt.Errorf("unclosed special context ('<') at end of spec '%s'", spec)
	}

	result := make([]Key, 0)
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %s", string(keyIdentifier), err.Error())
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// identifierKeyMapping maps the special key identifiers usable in a Keyspec
// (without the angle brackets) to their keys.
func identifierKeyMapping() map[string]Key {
	mapping := map[string]Key{
		"space": {Key: tcell.KeyRune, Ch: ' '},
		"cr":    {Key: tcell.KeyEnter},
		"esc":   {Key: tcell.KeyESC},
		"del":   {Key: tcell.KeyDelete},
		"bs":    {Key: tcell.KeyBackspace2},
		"tab":   {Key: tcell.KeyTab},
		"left":  {Key: tcell.KeyLeft},
		"right": {Key: tcell.KeyRight},
		"up":    {Key: tcell.KeyUp},
		"down":  {Key: tcell.KeyDown},

		"c-space": {Key: tcell.KeyCtrlSpace},
		"c-bs":    {Key: tcell.KeyBackspace},
	}
	for r := 'a'; r <= 'z'; r++ {
		mapping["c-"+string(r)] = Key{Key: tcell.KeyCtrlA + tcell.Key(r-'a')}
	}
	return mapping
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierKeyMapping()[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identfier.
func ToConfigIdentifierString(k Key) string {
	for identifier, key := range identifierKeyMapping() {
		if key == k {
			return "<" + identifier + ">"
		}
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
}
