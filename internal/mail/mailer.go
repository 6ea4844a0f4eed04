package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Xenn-00/werkstatt-meister/internal/config"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// PhaseChangeEmail ist eine fertig gerenderte Phasenwechsel-Mail an
// genau einen Empfänger.
type PhaseChangeEmail struct {
	To       string
	Subject  string
	Text     string
	HTMLBody string
}

type Mailer interface {
	SendPhaseChangeNotification(email *PhaseChangeEmail) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

func (m *MailService) SendPhaseChangeNotification(email *PhaseChangeEmail) error {
	url := m.MailtrapUrl

	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "Werkstatt Meister - Phasenwechsel",
		},
		"to": []map[string]string{
			{
				"email": email.To,
			},
		},
		"subject": email.Subject,
		"text":    email.Text,
		"html":    email.HTMLBody,
		// Autoresponder sollen auf die No-Reply-Adresse nicht reagieren.
		"headers": map[string]string{
			"Precedence":               "Bulk",
			"X-Auto-Response-Suppress": "All",
			"Auto-Submitted":           "auto-generated",
		},
		"category": "Workshop Phase Change",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Error when send the request.")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}
