package colors

// EscapeLen is the byte length of every palette escape token ("\x1b[31m").
const EscapeLen = 5

// escapeDefault restores the text's primary color.
const escapeDefault = "\x1b[39m"

// Escape tokens understood by the text layout. Only 5-byte SGR foreground codes are
// listed; anything else is rendered as plain text.
var palette = map[string]Color{
	"\x1b[30m": Black,
	"\x1b[31m": Red,
	"\x1b[32m": Green,
	"\x1b[33m": Yellow,
	"\x1b[34m": Blue,
	"\x1b[35m": Magenta,
	"\x1b[36m": Cyan,
	"\x1b[37m": White,

	"\x1b[90m": Gray,
	"\x1b[91m": 0xFF_FF5555,
	"\x1b[92m": 0xFF_55FF55,
	"\x1b[93m": 0xFF_FFFF55,
	"\x1b[94m": 0xFF_5555FF,
	"\x1b[95m": 0xFF_FF55FF,
	"\x1b[96m": 0xFF_55FFFF,
	"\x1b[97m": 0xFF_F5F5F5,
}

// LookupEscape returns the palette color for a 5-byte token. isDefault is true for
// the reset token "\x1b[39m", in which case the caller falls back to its own primary color.
func LookupEscape(token string) (c Color, isDefault, ok bool) {
	if len(token) != EscapeLen || token[0] != 0x1b {
		return 0, false, false
	}
	if token == escapeDefault {
		return 0, true, true
	}
	c, ok = palette[token]
	return c, false, ok
}
