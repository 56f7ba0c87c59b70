package utils

import "gopkg.in/gomail.v2"

// SendEmail delivers a single message through the configured SMTP relay.
func SendEmail(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error {
	d := gomail.NewDialer(smtpServer, smtpPort, sender, password)

	if err := d.DialAndSend(message); err != nil {
		return err
	}

	return nil
}
