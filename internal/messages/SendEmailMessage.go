package messages

import (
	"Listline/internal/repositories"
)

type SendEmailMessage struct {
	To          string `json:"to"`
	DisplayName string `json:"displayName"`
	Subject     string `json:"subject"`
	HtmlBody    string `json:"htmlBody"`
}

func (m *SendEmailMessage) OutboxMessageType() repositories.OutboxMessageType {
	return repositories.SendMailOutboxMessageType
}
