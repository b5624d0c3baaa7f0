package handlers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ailawatlas/catalog_service/internal/dto"
	"github.com/ailawatlas/catalog_service/internal/interfaces"
)

// MailHandler drains user.verify_email events from the mail topic and hands
// them to the SMTP sender.
type MailHandler struct {
	Mailer interfaces.VerificationNotifier
}

func NewMailHandler(mailer interfaces.VerificationNotifier) *MailHandler {
	return &MailHandler{Mailer: mailer}
}

func (h *MailHandler) HandleMessage(message string) error {
	var event dto.VerifyEmailEvent

	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Printf("invalid event payload: %s\n", message)
		return err
	}

	log.Printf("verify email event received: email=%s", event.Email)

	return h.Mailer.SendVerificationCode(context.Background(), event.Email, event.Code)
}
