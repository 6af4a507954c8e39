package notify

import (
	"context"

	"go.uber.org/zap"
)

// Mail is an outbound message.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers outbound mail. Delivery is a collaborator concern; the
// service only depends on this interface.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// LogMailer writes mail to the log instead of delivering it. Used in
// development and as the default when no SMTP relay is configured.
type LogMailer struct {
	from   string
	logger *zap.Logger
}

// NewLogMailer constructs the logging mailer.
func NewLogMailer(from string, logger *zap.Logger) *LogMailer {
	return &LogMailer{from: from, logger: logger}
}

// Send logs the message.
func (m *LogMailer) Send(_ context.Context, mail Mail) error {
	m.logger.Info("outbound mail",
		zap.String("from", m.from),
		zap.String("to", mail.To),
		zap.String("subject", mail.Subject),
		zap.String("body", mail.Body),
	)
	return nil
}
