package dto

import (
	"time"

	"manzil/internal/domains/activity/model"
	"manzil/shared"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
)

type RecordActivityRequest struct {
	Action   string       `json:"action"    validate:"required,max=100"`
	Entity   string       `json:"entity"    validate:"required,max=100"`
	EntityID string       `json:"entity_id" validate:"omitempty,max=100"`
	Detail   model.Detail `json:"detail"    validate:"omitempty"`
}

func (c *RecordActivityRequest) ToModel(user, ip, userAgent string) model.Activity {
	return model.Activity{
		ID:        uuid.NewString(),
		UserID:    user,
		Action:    c.Action,
		Entity:    c.Entity,
		EntityID:  c.EntityID,
		Detail:    c.Detail,
		IP:        ip,
		UserAgent: userAgent,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ActivityResponse struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Action    string       `json:"action"`
	Entity    string       `json:"entity"`
	EntityID  string       `json:"entity_id,omitempty"`
	Detail    model.Detail `json:"detail,omitempty"`
	IP        string       `json:"ip,omitempty"`
	UserAgent string       `json:"user_agent,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (r *ActivityResponse) FromModel(model model.Activity) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Action = model.Action
	r.Entity = model.Entity
	r.EntityID = model.EntityID
	r.Detail = model.Detail
	r.IP = model.IP
	r.UserAgent = model.UserAgent
	r.CreatedAt = model.CreatedAt
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, m := range models {
		r.Activities[i].FromModel(m)
	}
}
