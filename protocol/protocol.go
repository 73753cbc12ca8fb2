package protocol

// Cmd represents a player command in the interactive loop
type Cmd int

const (
	Unknown Cmd = iota
	Play
	Challenge
	Pass
	Quit
)

var cmdNames = []string{
	"Unknown",
	"Play",
	"Challenge",
	"Pass",
	"Quit",
}

func (c Cmd) String() string {
	return cmdNames[c]
}
