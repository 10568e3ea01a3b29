package glyph

type fontDef struct {
	height int
	digits map[rune][]string
}

var builtins = map[string]fontDef{
	"block": blockFont,
	"slim":  slimFont,
}

var blockFont = fontDef{
	height: 7,
	digits: map[rune][]string{
		'0': {" ██████ ", "██    ██", "██    ██", "██    ██", "██    ██", "██    ██", " ██████ "},
		'1': {"    ██  ", "  ████  ", "    ██  ", "    ██  ", "    ██  ", "    ██  ", " ██████ "},
		'2': {" ██████ ", "██    ██", "      ██", "  ██████", "██      ", "██      ", "████████"},
		'3': {" ██████ ", "██    ██", "      ██", "  ██████", "      ██", "██    ██", " ██████ "},
		'4': {"██    ██", "██    ██", "██    ██", "████████", "      ██", "      ██", "      ██"},
		'5': {"████████", "██      ", "██      ", "██████  ", "      ██", "██    ██", " ██████ "},
		'6': {" ██████ ", "██      ", "██      ", "██████  ", "██    ██", "██    ██", " ██████ "},
		'7': {"████████", "      ██", "     ██ ", "    ██  ", "   ██   ", "  ██    ", "  ██    "},
		'8': {" ██████ ", "██    ██", "██    ██", " ██████ ", "██    ██", "██    ██", " ██████ "},
		'9': {" ██████ ", "██    ██", "██    ██", " ███████", "      ██", "      ██", " ██████ "},
	},
}

var slimFont = fontDef{
	height: 5,
	digits: map[rune][]string{
		'0': {"███", "█ █", "█ █", "█ █", "███"},
		'1': {"  █", "  █", "  █", "  █", "  █"},
		'2': {"███", "  █", "███", "█  ", "███"},
		'3': {"███", "  █", "███", "  █", "███"},
		'4': {"█ █", "█ █", "███", "  █", "  █"},
		'5': {"███", "█  ", "███", "  █", "███"},
		'6': {"███", "█  ", "███", "█ █", "███"},
		'7': {"███", "  █", "  █", "  █", "  █"},
		'8': {"███", "█ █", "███", "█ █", "███"},
		'9': {"███", "█ █", "███", "  █", "███"},
	},
}
