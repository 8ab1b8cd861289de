package report

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"hunter/pkg/domain"
)

// EmailOptions configure the SMTP notifier.
type EmailOptions struct {
	// Host and Port address the SMTP server. The connection uses implicit TLS,
	// so the usual port is 465.
	Host string
	Port int

	Username string
	Password string

	From string
	To   []string

	// MaxGroups caps how many groups the mail body lists; 0 means unlimited.
	MaxGroups int
}

// Emailer delivers the run report as a plain-text mail over SMTP with
// implicit TLS.
type Emailer struct {
	opts EmailOptions
}

// NewEmailer constructs an Emailer.
func NewEmailer(opts EmailOptions) *Emailer {
	return &Emailer{opts: opts}
}

// Name identifies the notifier in logs.
func (e *Emailer) Name() string { return "email" }

// Notify renders the report body and sends it to every configured recipient.
func (e *Emailer) Notify(ctx context.Context, summary domain.Summary, groups []domain.Group) error {
	subject := fmt.Sprintf("Domain hunt: %d interesting base names", len(groups))
	body := BuildBody(summary, groups, e.opts.MaxGroups)

	msg := buildMessage(e.opts.From, e.opts.To, subject, body)

	return e.send(ctx, msg)
}

// buildMessage assembles an RFC 5322 plain-text message.
func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(b.String())
}

func (e *Emailer) send(ctx context.Context, msg []byte) error {
	addr := net.JoinHostPort(e.opts.Host, fmt.Sprint(e.opts.Port))

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: e.opts.Host, MinVersion: tls.VersionTLS12}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("could not connect to smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, e.opts.Host)
	if err != nil {
		_ = conn.Close()

		return fmt.Errorf("could not create smtp client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	auth := smtp.PlainAuth("", e.opts.Username, e.opts.Password, e.opts.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("could not authenticate: %w", err)
	}

	if err := client.Mail(e.opts.From); err != nil {
		return fmt.Errorf("could not set sender: %w", err)
	}
	for _, rcpt := range e.opts.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("could not add recipient %q: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("could not open message body: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("could not write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not finish message body: %w", err)
	}

	return client.Quit()
}
