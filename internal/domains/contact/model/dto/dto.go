package dto

import (
	"manzil/internal/domains/contact/model"
	"manzil/shared"
	gDto "manzil/shared/dto"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,max=30"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (c *CreateContactMessageRequest) ToModel(user string) model.ContactMessage {
	return model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SubscribeNewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (c *SubscribeNewsletterRequest) ToModel(user string) model.NewsletterSubscription {
	return model.NewsletterSubscription{
		ID:    uuid.NewString(),
		Email: c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ContactMessageResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	gDto.Metadata
}

func (r *ContactMessageResponse) FromModel(model model.ContactMessage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message

	r.Metadata.FromModel(model.Metadata)
}

type GetContactMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetContactMessagesResponse) FromModels(models []model.ContactMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]ContactMessageResponse, len(models))
	for i, m := range models {
		r.Messages[i].FromModel(m)
	}
}

type NewsletterSubscriptionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *NewsletterSubscriptionResponse) FromModel(model model.NewsletterSubscription) {
	r.ID = model.ID
	r.Email = model.Email

	r.Metadata.FromModel(model.Metadata)
}

type GetNewsletterSubscriptionsResponse struct {
	Subscriptions []NewsletterSubscriptionResponse `json:"subscriptions"`
	TotalPage     int                              `json:"total_page"`
	TotalData     int                              `json:"total_data"`
}

func (r *GetNewsletterSubscriptionsResponse) FromModels(models []model.NewsletterSubscription, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscriptions = make([]NewsletterSubscriptionResponse, len(models))
	for i, m := range models {
		r.Subscriptions[i].FromModel(m)
	}
}
