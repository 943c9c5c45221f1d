package protocol

// Outbound command names.
const (
	CommandJoinGame     = "join_game"
	CommandStartGame    = "start_game"
	CommandMakeMove     = "make_move"
	CommandDisplayBoard = "display_board"
	CommandEndGame      = "end_game"
	CommandUploadGame   = "upload_game"
)

// JoinGameCommand requests a seat at the board.
type JoinGameCommand struct {
	Command      string `json:"command"`
	Color        string `json:"color"`
	SinglePlayer bool   `json:"single_player,omitempty"`
}

// NewJoinGame - builds a join_game command for one color.
func NewJoinGame(color string, singlePlayer bool) JoinGameCommand {
	return JoinGameCommand{Command: CommandJoinGame, Color: color, SinglePlayer: singlePlayer}
}

// StartGameCommand asks the server to start the game.
type StartGameCommand struct {
	Command string `json:"command"`
}

// NewStartGame - builds a start_game command.
func NewStartGame() StartGameCommand {
	return StartGameCommand{Command: CommandStartGame}
}

// MakeMoveCommand submits one move in source/destination square form.
type MakeMoveCommand struct {
	Command string `json:"command"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// NewMakeMove - builds a make_move command.
func NewMakeMove(from, to string) MakeMoveCommand {
	return MakeMoveCommand{Command: CommandMakeMove, From: from, To: to}
}

// DisplayBoardCommand requests a board snapshot.
type DisplayBoardCommand struct {
	Command string `json:"command"`
}

// NewDisplayBoard - builds a display_board command.
func NewDisplayBoard() DisplayBoardCommand {
	return DisplayBoardCommand{Command: CommandDisplayBoard}
}

// EndGameCommand asks the server to end the current game.
type EndGameCommand struct {
	Command string `json:"command"`
}

// NewEndGame - builds an end_game command.
func NewEndGame() EndGameCommand {
	return EndGameCommand{Command: CommandEndGame}
}

// UploadMetadata describes one chunk of a game-script upload.
type UploadMetadata struct {
	Filename     string `json:"filename"`
	TotalSize    int64  `json:"total_size"`
	ChunksTotal  int    `json:"chunks_total"`
	ChunkCurrent int    `json:"chunk_current"`
}

// UploadGameCommand carries one chunk of a game script.
type UploadGameCommand struct {
	Command  string         `json:"command"`
	Metadata UploadMetadata `json:"metadata"`
	Data     string         `json:"data"`
}

// NewUploadGame - builds an upload_game command for one chunk.
func NewUploadGame(meta UploadMetadata, data string) UploadGameCommand {
	return UploadGameCommand{Command: CommandUploadGame, Metadata: meta, Data: data}
}
