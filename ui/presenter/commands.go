package presenter

import "github.com/soocke/contour-annotator-go/config"

// Command is a session key command.
type Command int

const (
	CommandNone Command = iota
	CommandSave
	CommandClear
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandSave:
		return "save"
	case CommandClear:
		return "clear"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyMap binds single-character key symbols to commands. Matching is exact,
// so "S" does not trigger save when Save is "s".
type KeyMap struct {
	Save, Clear, Quit string
}

// DefaultKeyMap is s / c / q.
var DefaultKeyMap = KeyMap{Save: "s", Clear: "c", Quit: "q"}

// KeyMapFromConfig reads the bindings from cfg, falling back to the defaults.
func KeyMapFromConfig(cfg *config.Config) KeyMap {
	if cfg == nil {
		return DefaultKeyMap
	}
	return KeyMap{Save: cfg.SaveKey, Clear: cfg.ClearKey, Quit: cfg.QuitKey}
}

// Lookup maps a Tk keysym to a command; unknown keys map to CommandNone.
func (k KeyMap) Lookup(keysym string) Command {
	switch keysym {
	case "":
		return CommandNone
	case k.Save:
		return CommandSave
	case k.Clear:
		return CommandClear
	case k.Quit:
		return CommandQuit
	}
	return CommandNone
}
