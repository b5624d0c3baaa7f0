package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

const verifyTemplate = `<html>
<body>
  <p>Hello,</p>
  <p>Your verification code is:</p>
  <h2>{{.Code}}</h2>
  <p>Enter it in the app to activate your account.</p>
</body>
</html>`

var verifyTmpl = template.Must(template.New("verify-email").Parse(verifyTemplate))

type Service struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	subject  string
	retries  int
	timeout  time.Duration
}

func NewService(host, port, username, password, from, fromName, subject string) *Service {
	p, err := strconv.Atoi(port)
	if err != nil || p == 0 {
		p = 587
	}

	return &Service{
		dialer:   gomail.NewDialer(host, p, username, password),
		from:     from,
		fromName: fromName,
		subject:  subject,
		retries:  3,
		timeout:  15 * time.Second,
	}
}

func (s *Service) SendVerificationCode(ctx context.Context, email, code string) error {
	var buf bytes.Buffer
	if err := verifyTmpl.Execute(&buf, map[string]string{"Code": code}); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", email)
	m.SetHeader("Subject", s.subject)
	m.SetBody("text/html", buf.String())

	var lastErr error
	for i := 0; i < s.retries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)

		done := make(chan error, 1)
		go func() {
			done <- s.dialer.DialAndSend(m)
		}()

		select {
		case <-attemptCtx.Done():
			lastErr = fmt.Errorf("email sending timed out after %s", s.timeout)
			log.Printf("[MAIL] attempt %d: %v", i+1, lastErr)
		case sendErr := <-done:
			if sendErr == nil {
				cancel()
				log.Printf("[MAIL] sent to=%s", email)
				return nil
			}
			lastErr = sendErr
			log.Printf("[MAIL] attempt %d: failed to send to %s: %v", i+1, email, sendErr)
		}
		cancel()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}

	return fmt.Errorf("failed to send email to %s after %d retries: %w", email, s.retries, lastErr)
}
