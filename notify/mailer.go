package notify

import (
	"bytes"
	"html/template"
	"log"

	"lapillo/config"

	"github.com/wneessen/go-mail"
)

const bodyTemplate = `<!doctype html>
<html>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>{{.Subject}}</h2>
  <table border="0" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
    {{range .Fields}}
    <tr>
      <td style="border:1px solid #e6eef6; background:#f5f7fb;"><strong>{{.Label}}</strong></td>
      <td style="border:1px solid #e6eef6;">{{.Value}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>`

var tmpl = template.Must(template.New("notification").Parse(bodyTemplate))

// Mailer sends the notification email over SMTP. Sends run on their own
// goroutine so provider latency never delays the guest-facing response.
type Mailer struct {
	cfg config.SMTP
}

// NewSink returns a Mailer when SMTP is configured, otherwise a LogSink.
func NewSink(cfg config.SMTP) Sink {
	if !cfg.Enabled() {
		log.Println("SMTP not configured; request notifications disabled")
		return LogSink{}
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Notify(subject string, fields []Field) {
	go func() {
		if err := m.send(subject, fields); err != nil {
			log.Printf("notification send failed: %v", err)
		}
	}()
}

func (m *Mailer) send(subject string, fields []Field) error {
	body, err := RenderBody(subject, fields)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(m.cfg.To); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	return client.DialAndSend(msg)
}

// RenderBody fills the HTML table template with the ordered fields.
func RenderBody(subject string, fields []Field) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Subject string
		Fields  []Field
	}{subject, fields})
	return buf.String(), err
}
