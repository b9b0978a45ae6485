package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/garageservices/garage-backend/internal/config"
)

const (
	defaultHost = "smtp-relay.brevo.com"
	defaultPort = "587"

	smtpTimeout = 15 * time.Second
)

// Config is the resolved SMTP transport configuration. Each value is the
// first non-blank of the GARAGE_SMTP_* and SMTP_* variants.
type Config struct {
	Host   string
	Port   string
	User   string
	Pass   string
	From   string
	Secure bool
}

// ReadConfig resolves SMTP settings from the loader. User, password and
// sender are required; the returned error names the keys that must be set.
func ReadConfig(loader *config.Loader) (Config, error) {
	cfg := Config{
		Host: firstNonBlank(loader.FirstNonBlank("GARAGE_SMTP_HOST", "SMTP_HOST"), defaultHost),
		Port: firstNonBlank(loader.FirstNonBlank("GARAGE_SMTP_PORT", "SMTP_PORT"), defaultPort),
		User: loader.FirstNonBlank("GARAGE_SMTP_USER", "SMTP_USER"),
		Pass: loader.FirstNonBlank("GARAGE_SMTP_PASS", "SMTP_PASS"),
	}
	cfg.From = firstNonBlank(loader.FirstNonBlank("GARAGE_SMTP_FROM", "SMTP_FROM"), cfg.User)

	secureText := loader.FirstNonBlank("GARAGE_SMTP_SECURE", "SMTP_SECURE")
	if secureText == "" {
		cfg.Secure = cfg.Port == "465"
	} else {
		cfg.Secure = strings.EqualFold(secureText, "true")
	}

	var missing []string
	for _, kv := range []struct{ key, value string }{
		{"SMTP_USER", cfg.User},
		{"SMTP_PASS", cfg.Pass},
		{"SMTP_FROM", cfg.From},
	} {
		if kv.value == "" {
			missing = append(missing, kv.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf(
			"missing required SMTP configuration: %s. Set either GARAGE_SMTP_* or SMTP_* values in .env",
			strings.Join(missing, ", "),
		)
	}

	cfg.Pass = normalizePassword(cfg.Pass, cfg.Host)
	return cfg, nil
}

// Mailer sends plain-text mail over SMTP with the configuration in effect at
// send time.
type Mailer struct {
	loader *config.Loader
}

func New(loader *config.Loader) *Mailer {
	return &Mailer{loader: loader}
}

// Send submits one plain-text message. Authentication failures are rewritten
// into an actionable hint; other transport failures keep the driver message
// behind a fixed prefix.
func (m *Mailer) Send(to, subject, body string) error {
	cfg, err := ReadConfig(m.loader)
	if err != nil {
		return err
	}

	if err := transmit(cfg, to, subject, body); err != nil {
		return rewriteSendError(err)
	}

	zap.L().Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func transmit(cfg Config, to, subject, body string) error {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	conn, err := net.DialTimeout("tcp", addr, smtpTimeout)
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(time.Now().Add(smtpTimeout)); err != nil {
		conn.Close()
		return err
	}

	if cfg.Secure {
		conn = tls.Client(conn, &tls.Config{ServerName: cfg.Host})
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if !cfg.Secure {
		// STARTTLS is required on the submission port.
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fmt.Errorf("server %s does not support STARTTLS", cfg.Host)
		}
		if err := client.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	message := buildMessage(cfg.From, to, subject, body)
	if _, err := w.Write([]byte(message)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

// App passwords are often copied with spaces; Gmail expects no spaces.
func normalizePassword(password, host string) string {
	trimmed := strings.TrimSpace(password)
	if isGmailHost(host) {
		return strings.ReplaceAll(trimmed, " ", "")
	}
	return trimmed
}

func isGmailHost(host string) bool {
	return strings.Contains(strings.ToLower(host), "gmail.com")
}

func rewriteSendError(err error) error {
	message := err.Error()
	lower := strings.ToLower(message)

	if strings.Contains(lower, "535") ||
		strings.Contains(lower, "authentication failed") ||
		strings.Contains(lower, "username and password not accepted") {
		return fmt.Errorf("email send failed: SMTP authentication failed. Use a valid Gmail App Password or a valid Brevo SMTP key")
	}

	if message == "" {
		message = "unknown SMTP error"
	}
	return fmt.Errorf("email send failed: %s", message)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
