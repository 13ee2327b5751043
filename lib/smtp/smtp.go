package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
	IsConfigured() bool
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	if from == "" {
		from = user
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
	}
	if !Instance.IsConfigured() {
		log.Warn("smtp client is not configured, emails will not be sent")
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("email skipped, smtp client is not configured")
		return nil
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(i.from, to, subject, message))
	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.from, []string{to}, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.from, []string{to}, body)
	}
	if err != nil {
		logger.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Job Portal - %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n",
		from, to, subject, message)
}
