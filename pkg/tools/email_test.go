package tools

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmailRequiresConfiguration(t *testing.T) {
	tool := NewSendEmailTool(MailerConfig{})
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"to":      []interface{}{"ada@example.com"},
		"subject": "hello",
		"body":    "world",
	}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP is not configured")
}

func TestSendEmailRequiresSender(t *testing.T) {
	tool := NewSendEmailTool(MailerConfig{Host: "mail.example.com", Port: "587"})
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"to":      []interface{}{"ada@example.com"},
		"subject": "hello",
		"body":    "world",
	}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sender address")
}

func TestComposeMail(t *testing.T) {
	ec := testExecContext(t)
	tool := NewSendEmailTool(MailerConfig{Host: "mail.example.com", From: "bot@example.com"})

	msg, err := tool.composeMail(
		[]string{"ada@example.com", "grace@example.com"},
		"bot@example.com",
		"Weekly report",
		"All systems nominal.",
		[]emailAttachment{{Filename: "report.txt", Content: "line one\nline two"}},
		ec,
	)
	require.NoError(t, err)
	text := string(msg)

	assert.Contains(t, text, "To: ada@example.com,grace@example.com\r\n")
	assert.Contains(t, text, "From: bot@example.com\r\n")
	assert.Contains(t, text, "Subject: Weekly report\r\n")
	assert.Contains(t, text, `Content-Disposition: attachment; filename="report.txt"`)
	assert.Contains(t, text, base64.StdEncoding.EncodeToString([]byte("All systems nominal.")))
	assert.Contains(t, text, base64.StdEncoding.EncodeToString([]byte("line one\nline two")))
	assert.True(t, strings.HasSuffix(text, "--"+mimeBoundary+"--\r\n"))
}

func TestComposeMailReadsAttachmentFromArtifacts(t *testing.T) {
	ec := testExecContext(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(ec.ArtifactsDir, "data.csv"),
		[]byte("a,b\n1,2"), 0o644))

	tool := NewSendEmailTool(MailerConfig{Host: "mail.example.com", From: "bot@example.com"})
	msg, err := tool.composeMail(
		[]string{"ada@example.com"}, "bot@example.com", "s", "b",
		[]emailAttachment{{Filename: "data.csv", Path: "data.csv"}},
		ec,
	)
	require.NoError(t, err)
	assert.Contains(t, string(msg), base64.StdEncoding.EncodeToString([]byte("a,b\n1,2")))
}

func TestComposeMailConfinesAttachmentPath(t *testing.T) {
	ec := testExecContext(t)
	tool := NewSendEmailTool(MailerConfig{Host: "mail.example.com", From: "bot@example.com"})

	_, err := tool.composeMail(
		[]string{"ada@example.com"}, "bot@example.com", "s", "b",
		[]emailAttachment{{Filename: "passwd", Path: "../../../etc/passwd"}},
		ec,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the artifacts directory")
}

func TestHeaderSanitizerStripsInjection(t *testing.T) {
	assert.Equal(t,
		"victim@example.comBcc: attacker@example.com",
		headerSanitizer.Replace("victim@example.com\r\nBcc: attacker@example.com"))
}

func TestMailerConfigFromEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USERNAME", "bot")
	t.Setenv("SMTP_PASSWORD", "hunter2")
	t.Setenv("SMTP_FROM", "bot@example.com")

	cfg := MailerConfigFromEnv()
	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, "587", cfg.Port)
	assert.Equal(t, "bot", cfg.Username)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, "bot@example.com", cfg.From)
}
