package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const menuSeparator = "============================================================"
const menuDivider = "------------------------------------------------------------"

// Console is the text front end: a state-aware menu on an io.Writer and
// line-based input from an io.Reader.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole - creates a console view over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// DisplayWelcome - prints the welcome banner.
func (that *Console) DisplayWelcome() {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, menuSeparator)
	fmt.Fprintln(that.out, "WELCOME TO CHESS")
	fmt.Fprintln(that.out, menuSeparator)
}

// DisplayBoard - prints a board snapshot as received from the server.
func (that *Console) DisplayBoard(board string) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, board)
}

// DisplayGameOver - prints the game result.
func (that *Console) DisplayGameOver(result string) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, menuSeparator)
	fmt.Fprintf(that.out, "GAME OVER: %s\n", result)
	fmt.Fprintln(that.out, menuSeparator)
}

// DisplayMenu - prints the main menu for the current client state.
func (that *Console) DisplayMenu(info MenuInfo) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, menuSeparator)
	fmt.Fprintln(that.out, "CHESS GAME CLIENT")
	fmt.Fprintln(that.out, menuSeparator)

	fmt.Fprintf(that.out, "\nStatus: %s\n", info.StateName)

	if info.WhiteJoined || info.BlackJoined {
		fmt.Fprintf(that.out, "White player: %s\n", joinedLabel(info.WhiteJoined))
		fmt.Fprintf(that.out, "Black player: %s\n", joinedLabel(info.BlackJoined))
	}

	if info.PlayerColor != "" {
		fmt.Fprintf(that.out, "You are playing as: %s\n", strings.ToUpper(info.PlayerColor))
	}

	if info.CurrentTurn != "" {
		turnMsg := fmt.Sprintf("Current turn: %s", strings.ToUpper(info.CurrentTurn))
		if info.PlayerColor == info.CurrentTurn {
			turnMsg += " (YOUR TURN)"
		}
		fmt.Fprintf(that.out, "\n%s\n", turnMsg)
		fmt.Fprintf(that.out, "Move count: %d\n", info.MoveCount)
	}

	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, menuDivider)
	fmt.Fprintln(that.out, "MENU OPTIONS:")
	fmt.Fprintln(that.out, menuDivider)

	switch info.StateName {
	case "CONNECTED":
		for num, option := range connectedOptions(info) {
			fmt.Fprintf(that.out, "%d. %s\n", num+1, option.label)
		}
		fmt.Fprintln(that.out, "Q. Quit")

	case "JOINED":
		if info.WhiteJoined && info.BlackJoined {
			fmt.Fprintln(that.out, "1. Start Game")
		} else {
			fmt.Fprintln(that.out, "Waiting for opponent to join...")
		}
		fmt.Fprintln(that.out, "Q. Quit")

	case "PLAYING":
		fmt.Fprintln(that.out, "Enter a move as: <from> <to>   (example: e2 e4)")
		fmt.Fprintln(that.out)
		fmt.Fprintln(that.out, "Special commands:")
		fmt.Fprintln(that.out, "  :d => display board")
		fmt.Fprintln(that.out, "  :e => end game")
		fmt.Fprintln(that.out, "  :q => quit")

	case "GAME_OVER":
		fmt.Fprintln(that.out, "1. Display Final Board")
		fmt.Fprintln(that.out, "Q. Quit")
	}

	fmt.Fprintln(that.out, menuSeparator)
}

// DisplayInfo - prints an informational message.
func (that *Console) DisplayInfo(text string) {
	fmt.Fprintln(that.out, text)
}

// DisplaySuccess - prints a success message.
func (that *Console) DisplaySuccess(text string) {
	fmt.Fprintf(that.out, "[OK] %s\n", text)
}

// DisplayWarning - prints a warning message.
func (that *Console) DisplayWarning(text string) {
	fmt.Fprintf(that.out, "[WARN] %s\n", text)
}

// DisplayError - prints an error message.
func (that *Console) DisplayError(text string) {
	fmt.Fprintf(that.out, "[ERROR] %s\n", text)
}

// ConfirmAction - asks the user to confirm an action.
func (that *Console) ConfirmAction(prompt string) bool {
	fmt.Fprintf(that.out, "%s (yes/no): ", prompt)

	line, err := that.in.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "yes" || answer == "y"
}

// WaitForInput - reads one user choice and translates it into a Command for
// the current state. Unrecognized input yields ActionNone.
func (that *Console) WaitForInput(info MenuInfo) (Command, error) {
	fmt.Fprint(that.out, "\nEnter choice: ")

	line, err := that.in.ReadString('\n')
	if err != nil {
		return Command{}, fmt.Errorf("failed to read input: %w", err)
	}

	return that.parseChoice(info, strings.TrimSpace(line)), nil
}

// Cleanup - releases view resources; the console has none.
func (that *Console) Cleanup() {}

// parseChoice - maps a raw input line onto a Command for the given state.
func (that *Console) parseChoice(info MenuInfo, choice string) Command {
	lower := strings.ToLower(choice)
	if lower == "q" || lower == ":q" || lower == "quit" || lower == "exit" {
		return Command{Action: ActionQuit}
	}

	switch info.StateName {
	case "CONNECTED":
		return parseConnectedChoice(info, choice)

	case "JOINED":
		if choice == "1" {
			return Command{Action: ActionStart}
		}

	case "PLAYING":
		return parsePlayingChoice(choice)

	case "GAME_OVER":
		if choice == "1" {
			return Command{Action: ActionDisplay}
		}
	}

	return Command{Action: ActionNone}
}

// menuOption couples a menu label with the command it triggers.
type menuOption struct {
	label   string
	command Command
}

// connectedOptions - builds the join options still available; taken colors
// disappear from the menu.
func connectedOptions(info MenuInfo) []menuOption {
	var options []menuOption

	if !info.WhiteJoined && !info.BlackJoined {
		options = append(options, menuOption{
			label:   "Single Player Game (play both sides)",
			command: Command{Action: ActionSingle},
		})
	}

	if !info.WhiteJoined {
		options = append(options, menuOption{
			label:   "Join as White Player",
			command: Command{Action: ActionJoin, Args: []string{"white"}},
		})
	}

	if !info.BlackJoined {
		options = append(options, menuOption{
			label:   "Join as Black Player",
			command: Command{Action: ActionJoin, Args: []string{"black"}},
		})
	}

	return options
}

// parseConnectedChoice - resolves a numeric choice against the dynamic join
// options; "upload <path>" is accepted in any numbering.
func parseConnectedChoice(info MenuInfo, choice string) Command {
	fields := strings.Fields(choice)
	if len(fields) == 2 && strings.ToLower(fields[0]) == "upload" {
		return Command{Action: ActionUpload, Args: []string{fields[1]}}
	}

	options := connectedOptions(info)
	for num, option := range options {
		if choice == fmt.Sprintf("%d", num+1) {
			return option.command
		}
	}

	return Command{Action: ActionNone}
}

// parsePlayingChoice - resolves in-game input: special commands or a move.
func parsePlayingChoice(choice string) Command {
	switch strings.ToLower(choice) {
	case ":d", "d":
		return Command{Action: ActionDisplay}
	case ":e", "e":
		return Command{Action: ActionEnd}
	}

	fields := strings.Fields(choice)
	if len(fields) == 2 {
		return Command{Action: ActionMove, Args: fields}
	}

	return Command{Action: ActionNone}
}

// joinedLabel - renders a seat status.
func joinedLabel(joined bool) string {
	if joined {
		return "Joined"
	}
	return "Waiting..."
}
