package chessdto

// MoveEntry is one played move as shown in the history list.
type MoveEntry struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"`
	Player   string `json:"player"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
	Points   int    `json:"points,omitempty"`
}

// ClickSummary reports what one square click did.
type ClickSummary struct {
	Outcome      string       `json:"outcome"`
	Square       string       `json:"square"`
	Piece        string       `json:"piece,omitempty"`
	Destinations []string     `json:"destinations,omitempty"`
	Move         *MoveEntry   `json:"move,omitempty"`
	Error        *DomainError `json:"error,omitempty"`
}
