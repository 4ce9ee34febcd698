package app

import (
	"strings"

	"github.com/dshills/chord/internal/input/mode"
)

// executeCommand runs the command line. An empty line just leaves Command
// mode. The line is consumed before it runs, so a failing command leaves
// an empty prompt behind in Command mode.
func (e *Editor) executeCommand() error {
	if e.command == "" {
		return e.SetMode(mode.Normal)
	}

	line := e.command
	e.command = ""
	if err := e.runCommand(line); err != nil {
		return err
	}
	return e.SetMode(mode.Normal)
}

// runCommand interprets one command line:
//
//	q          quit
//	e <file>   load file
//	w [file]   save, to the associated file by default
//	wq [file]  save then quit
//
// Unknown commands are ignored.
func (e *Editor) runCommand(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	var arg string
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "q":
		e.Stop()
	case "e":
		if arg == "" {
			return NewOperationError("edit", "", ErrNoFilename)
		}
		return e.Load(arg)
	case "w":
		return e.Save(arg)
	case "wq":
		if err := e.Save(arg); err != nil {
			return err
		}
		e.Stop()
	default:
		e.logger.Debug("unknown command", "command", fields[0])
	}
	return nil
}
