package keymap

// Default action names bound by DefaultBindings. The editor registers an
// implementation for each.
const (
	ActionMoveLeft        = "cursor.moveLeft"
	ActionMoveDown        = "cursor.moveDown"
	ActionMoveUp          = "cursor.moveUp"
	ActionMoveRight       = "cursor.moveRight"
	ActionMoveLineEnd     = "cursor.moveLineEnd"
	ActionFirstNonBlank   = "cursor.firstNonBlank"
	ActionMoveFirstLine   = "cursor.moveFirstLine"
	ActionMoveLastLine    = "cursor.moveLastLine"
	ActionModeNormal      = "mode.normal"
	ActionModeInsert      = "mode.insert"
	ActionModeAppend      = "mode.append"
	ActionModeAppendEnd   = "mode.appendLineEnd"
	ActionModeInsertStart = "mode.insertLineStart"
	ActionModeCommand     = "mode.command"
	ActionOpenLineBelow   = "edit.openLineBelow"
	ActionOpenLineAbove   = "edit.openLineAbove"
	ActionDeleteChar      = "edit.deleteChar"
	ActionDeleteLine      = "edit.deleteLine"
	ActionBannerClear     = "banner.clear"
	ActionCommandExecute  = "command.execute"
	ActionQuit            = "editor.quit"
)

// DefaultBindings returns the built-in bindings in registration order.
// Override files are applied after these.
func DefaultBindings() []Binding {
	return []Binding{
		// Movement - basic
		{Modes: "n", Keys: "h", Action: ActionMoveLeft, Description: "Move left"},
		{Modes: "n", Keys: "j", Action: ActionMoveDown, Description: "Move down"},
		{Modes: "n", Keys: "k", Action: ActionMoveUp, Description: "Move up"},
		{Modes: "n", Keys: "l", Action: ActionMoveRight, Description: "Move right"},
		{Modes: "ni", Keys: "<Left>", Action: ActionMoveLeft, Description: "Move left"},
		{Modes: "ni", Keys: "<Down>", Action: ActionMoveDown, Description: "Move down"},
		{Modes: "ni", Keys: "<Up>", Action: ActionMoveUp, Description: "Move up"},
		{Modes: "ni", Keys: "<Right>", Action: ActionMoveRight, Description: "Move right"},

		// Movement - line
		{Modes: "n", Keys: "$", Action: ActionMoveLineEnd, Description: "Move to line end"},
		{Modes: "n", Keys: "<End>", Action: ActionMoveLineEnd, Description: "Move to line end"},
		{Modes: "n", Keys: "_", Action: ActionFirstNonBlank, Description: "Move to first non-blank"},
		{Modes: "n", Keys: "<Home>", Action: ActionFirstNonBlank, Description: "Move to first non-blank"},

		// Movement - document
		{Modes: "n", Keys: "gg", Action: ActionMoveFirstLine, Description: "Go to document start"},
		{Modes: "n", Keys: "G", Action: ActionMoveLastLine, Description: "Go to document end"},

		// Mode switching
		{Modes: "n", Keys: "i", Action: ActionModeInsert, Description: "Insert before cursor"},
		{Modes: "n", Keys: "a", Action: ActionModeAppend, Description: "Append after cursor"},
		{Modes: "n", Keys: "A", Action: ActionModeAppendEnd, Description: "Append at line end"},
		{Modes: "n", Keys: "I", Action: ActionModeInsertStart, Description: "Insert at first non-blank"},
		{Modes: "n", Keys: ":", Action: ActionModeCommand, Description: "Enter command mode"},
		{Modes: "nic", Keys: "<Esc>", Action: ActionModeNormal, Description: "Return to normal mode"},

		// Editing
		{Modes: "n", Keys: "o", Action: ActionOpenLineBelow, Description: "Open line below"},
		{Modes: "n", Keys: "O", Action: ActionOpenLineAbove, Description: "Open line above"},
		{Modes: "n", Keys: "x", Action: ActionDeleteChar, Description: "Delete character"},
		{Modes: "n", Keys: "dd", Action: ActionDeleteLine, Description: "Delete line"},

		// Editor
		{Modes: "n", Keys: "<CR>", Action: ActionBannerClear, Description: "Dismiss message"},
		{Modes: "c", Keys: "<CR>", Action: ActionCommandExecute, Description: "Execute command line"},
		{Modes: "n", Keys: "<C-w><C-q>", Action: ActionQuit, Description: "Quit"},
	}
}
