package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

// SendReservationEmail sends a confirmation message for a freshly created
// reservation using the SMTP credentials stored in the configuration row.
// When credentials are incomplete it logs a mock line and reports success, so
// a missing mail server never blocks checkout.
func SendReservationEmail(cfg models.Configuration, recipient, guestName, roomTitle string, res models.Reservation) error {
	if cfg.SMTPHost == "" || cfg.SMTPPort == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		log.Printf("[MOCK EMAIL] reservation #%d confirmation to:%s room:%s total:%.0f", res.ID, recipient, roomTitle, res.Total)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guestName = safe(guestName)
	roomTitle = safe(roomTitle)

	site := cfg.SiteName
	if site == "" {
		site = "Hostal Acuario"
	}

	from := fmt.Sprintf("%s <%s>", site, cfg.SMTPUser)
	to := []string{recipient}
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)

	subject := fmt.Sprintf("Reserva recibida — %s", site)
	body := fmt.Sprintf(
		"Hola %s,\n\n"+
			"Recibimos tu reserva para %s.\n"+
			"Entrada: %s\n"+
			"Salida:  %s\n"+
			"Total:   %.0f\n\n"+
			"Estado actual: %s. Te avisaremos cuando sea confirmada.\n\n%s\n",
		guestName, roomTitle,
		res.StartDate.Format(time.DateOnly),
		res.EndDate.Format(time.DateOnly),
		res.Total, res.Status, site,
	)

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, cfg.SMTPUser, to, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reservation email: %w", err)
	}
	return nil
}
