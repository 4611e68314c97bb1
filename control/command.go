// Package control defines the command messages the view sends to the
// application command loop. Applying every command on one goroutine keeps
// session transitions in the order the user made them.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdStop
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Command is the message sent from the UI to AppManager.commandLoop. The
// optional Reply channel confirms completion back to the sender.
type Command struct {
	Type  CommandType
	Reply chan error // optional reply channel
}
