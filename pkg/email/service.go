package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/pkg/logger"
)

// Service sends transactional notification emails through SendGrid. With no
// API key it logs and drops messages, so enrichment never depends on email
// delivery being configured.
type Service struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       logger.Logger
}

func NewService(apiKey, fromEmail, fromName string, log logger.Logger) *Service {
	s := &Service{
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
	if apiKey != "" {
		s.client = sendgrid.NewSendClient(apiKey)
	}
	return s
}

// NotifyBatchCompleted emails the batch owner a completion summary. Delivery
// failures are logged and swallowed; the batch outcome is already committed.
func (s *Service) NotifyBatchCompleted(ctx context.Context, batch *ent.EnrichmentBatch) {
	if batch.OwnerEmail == "" {
		return
	}

	subject := fmt.Sprintf("Enrichment complete: %s", batch.Name)
	body := fmt.Sprintf(
		"Your enrichment batch %q has finished.\n\nContacts processed: %d\nContacts enriched: %d\nContacts failed: %d\n",
		batch.Name, batch.ProcessedCount, batch.SucceededCount, batch.FailedCount,
	)

	if err := s.send(ctx, batch.OwnerEmail, subject, body); err != nil {
		s.log.Error("failed to send batch completion email",
			"batch_id", batch.ID, "to", batch.OwnerEmail, "error", err)
	}
}

func (s *Service) send(ctx context.Context, toEmail, subject, body string) error {
	if s.client == nil {
		s.log.Info("email delivery disabled, dropping message",
			"to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	msg := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed with status %d: %s", resp.StatusCode, resp.Body)
	}

	s.log.Info("notification email sent", "to", toEmail, "subject", subject)
	return nil
}
