package utils

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// AlertMailer sends operator alerts over SMTP. Persistence failures
// happen after the webhook response has been written, so mail and logs
// are the only way anyone finds out about them.
type AlertMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Send delivers a plain-text alert mail.
func (m *AlertMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", fmt.Sprintf("[%s] %s", AppName, subject))
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send alert mail: %v", err)
	}
	return nil
}
