package view

// MenuInfo is the state snapshot the presentation layer renders from. It is
// assembled by the controller; views never touch the state machine or the
// game model directly.
type MenuInfo struct {
	StateName    string
	PlayerColor  string
	PlayerNumber int
	SessionID    string
	CurrentTurn  string
	WhiteJoined  bool
	BlackJoined  bool
	MoveCount    int
}

// User command actions produced by WaitForInput.
const (
	ActionNone    = ""
	ActionSingle  = "single"
	ActionJoin    = "join"
	ActionStart   = "start"
	ActionMove    = "move"
	ActionDisplay = "display"
	ActionEnd     = "end"
	ActionUpload  = "upload"
	ActionQuit    = "quit"
)

// Command is one user intention with its arguments (color for join, squares
// for move, path for upload).
type Command struct {
	Action string
	Args   []string
}

// View is the display contract the core calls outward through. Any front
// end (console, graphical board, remote UI) can stand behind it without the
// session, state machine or router changing.
type View interface {
	DisplayWelcome()
	DisplayBoard(board string)
	DisplayGameOver(result string)
	DisplayMenu(info MenuInfo)
	DisplayInfo(text string)
	DisplaySuccess(text string)
	DisplayWarning(text string)
	DisplayError(text string)
	ConfirmAction(prompt string) bool
	WaitForInput(info MenuInfo) (Command, error)
	Cleanup()
}
