package hub

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for controls that are rendered but have no behavior yet.
var ErrUnsupported = errors.New("not implemented yet")

// CommandKind enumerates the non-navigation controls of the UI.
type CommandKind int

const (
	OpenScripts CommandKind = iota
	UploadScript
	AddScript
	LikeScript
	DownloadScript
	SelectCategory
	CreateTopic
	EditProfile
	Notifications
)

var commandNames = map[CommandKind]string{
	OpenScripts:    "open scripts",
	UploadScript:   "upload script",
	AddScript:      "add script",
	LikeScript:     "like script",
	DownloadScript: "download script",
	SelectCategory: "select category",
	CreateTopic:    "create topic",
	EditProfile:    "edit profile",
	Notifications:  "notifications",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is a single activation of a control. ScriptID and Category are only
// meaningful for the kinds that target a script or a tab.
type Command struct {
	Kind     CommandKind
	ScriptID int
	Category string
}

// Result describes what activating a command did.
type Result struct {
	Command  Command
	Navigate bool
	Target   Page
	Err      error
}

// Execute runs a command. Only OpenScripts has an effect: it moves to the
// scripts page. Everything else reports ErrUnsupported and changes nothing.
func Execute(cmd Command) Result {
	switch cmd.Kind {
	case OpenScripts:
		return Result{Command: cmd, Navigate: true, Target: PageScripts}
	case LikeScript, DownloadScript:
		return Result{Command: cmd, Err: fmt.Errorf("%s #%d: %w", cmd.Kind, cmd.ScriptID, ErrUnsupported)}
	case SelectCategory:
		return Result{Command: cmd, Err: fmt.Errorf("%s %q: %w", cmd.Kind, cmd.Category, ErrUnsupported)}
	default:
		return Result{Command: cmd, Err: fmt.Errorf("%s: %w", cmd.Kind, ErrUnsupported)}
	}
}
