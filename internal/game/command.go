package game

import "strings"

// CommandKind names one of the four game commands.
type CommandKind string

const (
	CommandLetter CommandKind = "letter"
	CommandDelete CommandKind = "delete"
	CommandSubmit CommandKind = "submit"
	CommandReset  CommandKind = "reset"
)

// Command is the input to Engine.Apply. Letter is used only by CommandLetter.
type Command struct {
	Kind   CommandKind
	Letter rune
}

// KeyboardLayout is the on-screen keyboard, row by row. ENTER submits and
// DELETE removes the last letter.
var KeyboardLayout = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"ENTER", "Z", "X", "C", "V", "B", "N", "M", "DELETE"},
}

// CommandForKey maps a key name to a Command. Single letters map to
// CommandLetter; ENTER to submit; DELETE and BACKSPACE to delete.
func CommandForKey(key string) (Command, bool) {
	k := strings.ToUpper(strings.TrimSpace(key))
	switch k {
	case "ENTER":
		return Command{Kind: CommandSubmit}, true
	case "DELETE", "BACKSPACE":
		return Command{Kind: CommandDelete}, true
	}
	if len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		return Command{Kind: CommandLetter, Letter: rune(k[0])}, true
	}
	return Command{}, false
}
