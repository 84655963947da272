package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

const mimeBoundary = "==taskdag-mail-boundary"

// headerSanitizer strips newline injection from address and subject
// fields.
var headerSanitizer = strings.NewReplacer("\r\n", "", "\r", "", "\n", "", "%0a", "", "%0d", "")

// MailerConfig is the SMTP connection configuration, read from the
// environment at bootstrap.
type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// MailerConfigFromEnv reads SMTP_* variables. An empty host leaves the
// sendEmail tool refusing to send.
func MailerConfigFromEnv() MailerConfig {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return MailerConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmailTool sends mail over SMTP with optional attachments.
type SendEmailTool struct {
	cfg MailerConfig
}

// NewSendEmailTool creates the sendEmail tool.
func NewSendEmailTool(cfg MailerConfig) *SendEmailTool {
	return &SendEmailTool{cfg: cfg}
}

func (t *SendEmailTool) Definition() Definition {
	return Definition{
		Name:        "sendEmail",
		Description: "Send an email. Attachments carry inline content or a path into the artifacts directory; dependency results fill the first attachment's content.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"to": {
					"type": "array",
					"items": {"type": "string"},
					"minItems": 1,
					"description": "Recipient addresses"
				},
				"subject": {
					"type": "string",
					"description": "The email subject"
				},
				"body": {
					"type": "string",
					"description": "The plain-text email body"
				},
				"attachments": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"filename": {"type": "string"},
							"content":  {"type": "string"},
							"path":     {"type": "string"}
						},
						"required": ["filename"]
					},
					"description": "Optional attachments, either inline content or an artifacts path"
				}
			},
			"required": ["to", "subject", "body"],
			"additionalProperties": false
		}`),
	}
}

type emailAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content,omitempty"`
	Path     string `json:"path,omitempty"`
}

type sendEmailInput struct {
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	Attachments []emailAttachment `json:"attachments,omitempty"`
}

func (t *SendEmailTool) Execute(ctx context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in sendEmailInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	if t.cfg.Host == "" {
		return nil, errors.New("SMTP is not configured; set SMTP_HOST")
	}
	if len(in.To) == 0 {
		return nil, errors.New("to is required")
	}
	from := t.cfg.From
	if from == "" {
		from = t.cfg.Username
	}
	if from == "" {
		return nil, errors.New("no sender address; set SMTP_FROM or SMTP_USERNAME")
	}

	to := make([]string, len(in.To))
	for i, addr := range in.To {
		to[i] = headerSanitizer.Replace(addr)
	}

	msg, err := t.composeMail(to, from, headerSanitizer.Replace(in.Subject), in.Body, in.Attachments, ec)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ec.Emit().Progress(fmt.Sprintf("sending email to %s", strings.Join(to, ", ")))
	if err := t.send(from, to, msg); err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	return map[string]interface{}{
		"to":          to,
		"subject":     in.Subject,
		"attachments": len(in.Attachments),
	}, nil
}

func (t *SendEmailTool) send(from string, to []string, msg []byte) error {
	addr := t.cfg.Host + ":" + t.cfg.Port
	if t.cfg.Username != "" || t.cfg.Password != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		return smtp.SendMail(addr, auth, from, to, msg)
	}
	return t.sendWithoutAuth(addr, from, to, msg)
}

func (t *SendEmailTool) sendWithoutAuth(addr, from string, to []string, msg []byte) error {
	c, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write(msg); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (t *SendEmailTool) composeMail(to []string, from, subject, body string, attachments []emailAttachment, ec *ExecContext) ([]byte, error) {
	var b strings.Builder
	b.WriteString("To: " + strings.Join(to, ",") + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/mixed;\r\n")
	b.WriteString("  boundary=\"" + mimeBoundary + "\"\r\n\r\n")

	b.WriteString("--" + mimeBoundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	b.WriteString(base64.StdEncoding.EncodeToString([]byte(body)) + "\r\n")

	for _, att := range attachments {
		content := att.Content
		if att.Path != "" {
			path, err := resolveArtifactPath(ec.ArtifactsDir, att.Path)
			if err != nil {
				return nil, fmt.Errorf("attachment %q: %w", att.Filename, err)
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("attachment %q: failed to read %s: %w", att.Filename, att.Path, err)
			}
			content = string(raw)
		}
		filename := headerSanitizer.Replace(att.Filename)
		b.WriteString("--" + mimeBoundary + "\r\n")
		b.WriteString("Content-Type: application/octet-stream\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString("Content-Disposition: attachment; filename=\"" + filename + "\"\r\n\r\n")
		b.WriteString(base64.StdEncoding.EncodeToString([]byte(content)) + "\r\n")
	}

	b.WriteString("--" + mimeBoundary + "--\r\n")
	return []byte(b.String()), nil
}

// DependencyResolver joins dependency content into the first attachment
// when attachments are declared non-empty.
func (t *SendEmailTool) DependencyResolver() DependencyResolver {
	return func(params map[string]interface{}, deps []Dependency) map[string]interface{} {
		out := DefaultResolve(params, deps)
		if len(deps) == 0 {
			return out
		}
		atts, ok := out["attachments"].([]interface{})
		if !ok || len(atts) == 0 {
			return out
		}
		if first, ok := atts[0].(map[string]interface{}); ok {
			first["content"] = JoinDependencyContent(deps)
		}
		return out
	}
}
