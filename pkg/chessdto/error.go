package chessdto

const (
	CodeOutOfBounds = "out_of_bounds"
	CodeNoPiece     = "no_piece"
	CodeIllegalMove = "illegal_move"
	CodeNotYourTurn = "not_your_turn"
	CodeBadSquare   = "bad_square"
	CodeInternal    = "internal"
)

// DomainError is an error shaped for presentation: a stable code, a
// message fit for the player, and whether retrying with other input
// makes sense.
type DomainError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "chess error"
}
