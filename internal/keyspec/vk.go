package keyspec

import "strconv"

// Key is a Windows virtual-key code.
type Key uint16

const (
	KeyNone        Key = 0x00
	KeyBack        Key = 0x08
	KeyTab         Key = 0x09
	KeyClear       Key = 0x0C
	KeyReturn      Key = 0x0D
	KeyPause       Key = 0x13
	KeyCapsLock    Key = 0x14
	KeyEscape      Key = 0x1B
	KeySpace       Key = 0x20
	KeyPageUp      Key = 0x21
	KeyPageDown    Key = 0x22
	KeyEnd         Key = 0x23
	KeyHome        Key = 0x24
	KeyLeft        Key = 0x25
	KeyUp          Key = 0x26
	KeyRight       Key = 0x27
	KeyDown        Key = 0x28
	KeyPrintScreen Key = 0x2C
	KeyInsert      Key = 0x2D
	KeyDelete      Key = 0x2E
	KeyLWin        Key = 0x5B
	KeyRWin        Key = 0x5C
	KeyApps        Key = 0x5D
	KeyMultiply    Key = 0x6A
	KeyAdd         Key = 0x6B
	KeySeparator   Key = 0x6C
	KeySubtract    Key = 0x6D
	KeyDecimal     Key = 0x6E
	KeyDivide      Key = 0x6F
	KeyNumLock     Key = 0x90
	KeyScrollLock  Key = 0x91
	KeyPlay        Key = 0xFA

	keyOEM1      Key = 0xBA // ;:
	keyOEMPlus   Key = 0xBB // =+
	keyOEMComma  Key = 0xBC // ,<
	keyOEMMinus  Key = 0xBD // -_
	keyOEMPeriod Key = 0xBE // .>
	keyOEM2      Key = 0xBF // /?
	keyOEM3      Key = 0xC0 // `~
	keyOEM4      Key = 0xDB // [{
	keyOEM5      Key = 0xDC // \|
	keyOEM6      Key = 0xDD // ]}
	keyOEM7      Key = 0xDE // '"
)

// keyAliases is consulted by substring containment, first match wins.
// The order is load-bearing: an alias must come before any alias that is
// a substring of it (PAGEUP before UP, ESCAPE before ESC, LWIN before
// WIN), otherwise the shorter name would shadow the longer one.
var keyAliases = []struct {
	name string
	key  Key
}{
	{"PRINTSCREEN", KeyPrintScreen},
	{"PRINTSCRN", KeyPrintScreen},
	{"PRINT", KeyPrintScreen},
	{"PLAY", KeyPlay},
	{"PAUSE", KeyPause},
	{"LWIN", KeyLWin},
	{"RWIN", KeyRWin},
	{"WIN", KeyLWin},
	{"PAGEUP", KeyPageUp},
	{"PGUP", KeyPageUp},
	{"PAGEDOWN", KeyPageDown},
	{"PGDOWN", KeyPageDown},
	{"UP", KeyUp},
	{"DOWN", KeyDown},
	{"LEFT", KeyLeft},
	{"RIGHT", KeyRight},
	{"SPACE", KeySpace},
	{"SPC", KeySpace},
	{"ESCAPE", KeyEscape},
	{"ESC", KeyEscape},
	{"CLEAR", KeyClear},
	{"CLR", KeyClear},
	{"CAPSLOCK", KeyCapsLock},
	{"END", KeyEnd},
	{"HOME", KeyHome},
	{"INSERT", KeyInsert},
}

// symbolKeys holds the exact-match punctuation and shifted-digit symbols.
// "*" resolves to the numpad multiply key, so the shifted-8 reading of
// the same character is unreachable.
var symbolKeys = map[string]Key{
	"]":  keyOEM6,
	"[":  keyOEM4,
	",":  keyOEMComma,
	"<":  keyOEMComma,
	".":  keyOEMPeriod,
	">":  keyOEMPeriod,
	"?":  keyOEM2,
	"/":  keyOEM2,
	";":  keyOEM1,
	":":  keyOEM1,
	"\"": keyOEM7,
	"'":  keyOEM7,
	"|":  keyOEM5,
	"\\": keyOEM5,
	"+":  keyOEMPlus,
	"=":  keyOEMPlus,
	"-":  keyOEMMinus,
	"_":  keyOEMMinus,
	"*":  KeyMultiply,
	"`":  keyOEM3,
	"~":  keyOEM3,
	"!":  Key('1'),
	"@":  Key('2'),
	"#":  Key('3'),
	"$":  Key('4'),
	"%":  Key('5'),
	"^":  Key('6'),
	"&":  Key('7'),
	"(":  Key('9'),
	")":  Key('0'),
}

// namedKeys is the fallback vocabulary of named virtual keys, consulted
// by exact match after the alias and symbol tables.
var namedKeys = map[string]Key{
	"TAB":        KeyTab,
	"ENTER":      KeyReturn,
	"RETURN":     KeyReturn,
	"BACK":       KeyBack,
	"BKSP":       KeyBack,
	"DELETE":     KeyDelete,
	"DEL":        KeyDelete,
	"APPS":       KeyApps,
	"NUMLOCK":    KeyNumLock,
	"SCROLL":     KeyScrollLock,
	"SCROLLLOCK": KeyScrollLock,
	"SNAPSHOT":   KeyPrintScreen,
	"ADD":        KeyAdd,
	"SUBTRACT":   KeySubtract,
	"MULTIPLY":   KeyMultiply,
	"DIVIDE":     KeyDivide,
	"DECIMAL":    KeyDecimal,
	"SEPARATOR":  KeySeparator,
}

func init() {
	for c := byte('A'); c <= 'Z'; c++ {
		namedKeys[string(c)] = Key(c)
	}
	for c := byte('0'); c <= '9'; c++ {
		symbolKeys[string(c)] = Key(c)
	}
	for n := 1; n <= 24; n++ {
		namedKeys["F"+strconv.Itoa(n)] = Key(0x70 + n - 1) // VK_F1 = 0x70
	}
	for n := 0; n <= 9; n++ {
		namedKeys["NUMPAD"+strconv.Itoa(n)] = Key(0x60 + n) // VK_NUMPAD0 = 0x60
	}
}
