package dto

import (
	"manzil/internal/domains/room/model"
	"manzil/shared"
	gDto "manzil/shared/dto"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	HotelID       string         `json:"hotel_id"       validate:"required,uuid"`
	Name          string         `json:"name"           validate:"required,max=200"`
	NameAr        string         `json:"name_ar"        validate:"required,max=200"`
	Description   string         `json:"description"    validate:"omitempty"`
	DescriptionAr string         `json:"description_ar" validate:"omitempty"`
	Price         float64        `json:"price"          validate:"required,gt=0"`
	Capacity      int            `json:"capacity"       validate:"required,gte=1"`
	Available     int            `json:"available"      validate:"gte=0"`
	Images        pq.StringArray `json:"images"         validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		Name:          c.Name,
		NameAr:        c.NameAr,
		Description:   c.Description,
		DescriptionAr: c.DescriptionAr,
		Price:         c.Price,
		Capacity:      c.Capacity,
		Available:     c.Available,
		Images:        c.Images,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name          string         `db:"name"           json:"name"           validate:"omitempty,max=200"`
	NameAr        string         `db:"name_ar"        json:"name_ar"        validate:"omitempty,max=200"`
	Description   string         `db:"description"    json:"description"    validate:"omitempty"`
	DescriptionAr string         `db:"description_ar" json:"description_ar" validate:"omitempty"`
	Price         float64        `db:"price"          json:"price"          validate:"omitempty,gt=0"`
	Capacity      int            `db:"capacity"       json:"capacity"       validate:"omitempty,gte=1"`
	Available     *int           `db:"available"      json:"available"      validate:"omitempty,gte=0"`
	Images        pq.StringArray `db:"images"         json:"images"         validate:"omitempty"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	NameAr        string   `json:"name_ar"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"description_ar"`
	Price         float64  `json:"price"`
	Capacity      int      `json:"capacity"`
	Available     int      `json:"available"`
	Images        []string `json:"images"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.NameAr = model.NameAr
	r.Description = model.Description
	r.DescriptionAr = model.DescriptionAr
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Available = model.Available
	r.Images = model.Images

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, m := range models {
		r.Rooms[i].FromModel(m)
	}
}
