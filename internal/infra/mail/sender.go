package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/bytewerk/leadboard/internal/entity"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From string
	To   string // sales inbox
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendLeadAlert mails the sales inbox about a freshly captured lead.
func (s *EmailSender) SendLeadAlert(lead *entity.Lead) error {
	tmplPath := filepath.Join("templates", "lead_alert.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("read mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, lead); err != nil {
		return fmt.Errorf("render mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s", lead.FullName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
