package mailer

import (
	"context"

	"rescuerehab/internal/utils"
)

// Log only records that a message would have been sent. Used in development.
type Log struct {
	From Sender
}

func (m Log) Send(_ context.Context, msg Message) error {
	utils.Log.Info().
		Str("module", "MAILER").
		Str("from", m.From.Email).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("html_bytes", len(msg.HTML)).
		Msg("email not delivered (log transport)")
	return nil
}
