// Package keyspec parses symbolic hotkey specifications such as "F1" or
// "{CTRL}{SHIFT}A" into a modifier bit-set and a Windows virtual-key code.
package keyspec

import (
	"errors"
	"fmt"
	"strings"
)

// Modifiers is a bit-set of modifier keys. The values match the Win32
// MOD_* constants so they can be handed to RegisterHotKey unchanged.
type Modifiers uint16

const (
	ModNone     Modifiers = 0x0000
	ModAlt      Modifiers = 0x0001
	ModCtrl     Modifiers = 0x0002
	ModShift    Modifiers = 0x0004
	ModWin      Modifiers = 0x0008
	ModNoRepeat Modifiers = 0x4000
)

// ErrInvalidKeySpec is returned when a spec cannot be resolved to a key.
var ErrInvalidKeySpec = errors.New("invalid key spec")

// modifierTokens maps the uppercased content of a {...} token to its bit.
// Unknown tokens are stripped from the spec but contribute no bit.
var modifierTokens = map[string]Modifiers{
	"SHFT":     ModShift,
	"SHIFT":    ModShift,
	"CTRL":     ModCtrl,
	"CONTROL":  ModCtrl,
	"ALT":      ModAlt,
	"WIN":      ModWin,
	"NOREPEAT": ModNoRepeat,
}

// Parse resolves a key spec into its modifier set and virtual-key code.
// Modifier tokens accumulate by bitwise OR, so token order and duplicates
// do not affect the result. An empty residual after stripping modifiers
// yields KeyNone without error.
func Parse(spec string) (Modifiers, Key, error) {
	mods, rest, err := stripModifiers(spec)
	if err != nil {
		return ModNone, KeyNone, err
	}
	key, err := resolveKey(rest)
	if err != nil {
		return ModNone, KeyNone, err
	}
	return mods, key, nil
}

// ParseKey resolves the unmodified key of a spec: modifier tokens are
// stripped and discarded. Used when a swallowed hotkey has to be replayed
// to the real foreground window as a plain keystroke.
func ParseKey(spec string) (Key, error) {
	_, rest, err := stripModifiers(spec)
	if err != nil {
		return KeyNone, err
	}
	return resolveKey(rest)
}

// stripModifiers extracts every {...} token left-to-right and returns the
// accumulated bits plus the remaining text. A brace without its partner
// fails with ErrInvalidKeySpec rather than scanning forever.
func stripModifiers(spec string) (Modifiers, string, error) {
	rest := strings.ToUpper(strings.TrimSpace(spec))
	mods := ModNone
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		length := strings.IndexByte(rest[open:], '}')
		if length < 0 {
			return ModNone, "", fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidKeySpec, spec)
		}
		mods |= modifierTokens[rest[open+1:open+length]]
		rest = rest[:open] + rest[open+length+1:]
	}
	if strings.IndexByte(rest, '}') >= 0 {
		return ModNone, "", fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidKeySpec, spec)
	}
	return mods, strings.TrimSpace(rest), nil
}

// resolveKey maps the post-stripping spec text to a virtual-key code.
// Resolution order: the ordered alias table (substring containment, first
// match wins), then exact punctuation/digit symbols, then the named
// virtual-key vocabulary.
func resolveKey(text string) (Key, error) {
	if text == "" {
		return KeyNone, nil
	}
	for _, alias := range keyAliases {
		if strings.Contains(text, alias.name) {
			return alias.key, nil
		}
	}
	if key, ok := symbolKeys[text]; ok {
		return key, nil
	}
	if key, ok := namedKeys[text]; ok {
		return key, nil
	}
	return KeyNone, fmt.Errorf("%w: unknown key %q", ErrInvalidKeySpec, text)
}
