package chesspresenter

import (
	"strings"

	"github.com/park285/clickchess/pkg/chessdto"
)

// Presenter delivers formatted text without coupling the driver to how
// boards are drawn.
type Presenter struct {
	formatter   *Formatter
	sendMessage func(message string) error
}

func NewPresenter(formatter *Formatter, sendMessage func(message string) error) *Presenter {
	return &Presenter{
		formatter:   formatter,
		sendMessage: sendMessage,
	}
}

func (p *Presenter) Formatter() *Formatter { return p.formatter }

// Message sends text as is. Blank text is dropped.
func (p *Presenter) Message(message string) error {
	if p == nil || p.sendMessage == nil {
		return nil
	}
	if strings.TrimSpace(message) == "" {
		return nil
	}
	return p.sendMessage(message)
}

// Board sends message (if any) followed by the drawn board and status.
func (p *Presenter) Board(message string, state *chessdto.SessionState) error {
	if p == nil {
		return nil
	}
	if err := p.Message(message); err != nil {
		return err
	}
	if state == nil || p.formatter == nil {
		return nil
	}
	return p.Message(p.formatter.Board(state) + "\n" + p.formatter.HUD(state))
}
