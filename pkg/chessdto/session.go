package chessdto

// Scores holds the capture score of each side.
type Scores struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// Cell is one occupied square. Empty squares are left out of snapshots.
type Cell struct {
	Square string `json:"square"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Piece  string `json:"piece"`
	Color  string `json:"color"`
	Glyph  string `json:"glyph"`
}

// SessionState is a read-only snapshot of a game for presentation
// collaborators.
type SessionState struct {
	SessionUUID string     `json:"session_uuid"`
	Rules       string     `json:"rules"`
	Turn        string     `json:"turn"`
	TurnPlayer  string     `json:"turn_player"`
	WhitePlayer string     `json:"white_player"`
	BlackPlayer string     `json:"black_player"`
	Cells       []Cell     `json:"cells"`
	Selected    string     `json:"selected,omitempty"`
	LegalMoves  []string   `json:"legal_moves,omitempty"`
	Scores      Scores     `json:"scores"`
	MoveCount   int        `json:"move_count"`
	LastMove    *MoveEntry `json:"last_move,omitempty"`
	FEN         string     `json:"fen"`
}
