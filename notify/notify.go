package notify

import "log"

// Field is one labelled value in the notification body. Order is preserved.
type Field struct {
	Label string
	Value string
}

// Sink receives a best-effort notification about a new guest request. Failure
// is observable only via logs, never via the caller's result.
type Sink interface {
	Notify(subject string, fields []Field)
}

// LogSink is used when no SMTP credentials are configured.
type LogSink struct{}

func (LogSink) Notify(subject string, fields []Field) {
	log.Printf("notify (email disabled): %s", subject)
}
