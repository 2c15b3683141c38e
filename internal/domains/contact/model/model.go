package model

import (
	"manzil/shared/model"
)

const (
	ContactTableName  = "contact_messages"
	ContactEntityName = "contact_message"

	NewsletterTableName  = "newsletter_subscriptions"
	NewsletterEntityName = "newsletter_subscription"

	FieldID    = "id"
	FieldEmail = "email"
)

type ContactMessage struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	model.Metadata
}

type NewsletterSubscription struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	model.Metadata
}
