package dto

import (
	"manzil/internal/domains/hotel/model"
	"manzil/shared"
	gDto "manzil/shared/dto"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateHotelRequest struct {
	Name       string         `json:"name"        validate:"required,max=200"`
	NameAr     string         `json:"name_ar"     validate:"required,max=200"`
	Location   string         `json:"location"    validate:"required,max=200"`
	LocationAr string         `json:"location_ar" validate:"required,max=200"`
	Rating     float64        `json:"rating"      validate:"omitempty,gte=0,lte=5"`
	Amenities  pq.StringArray `json:"amenities"   validate:"omitempty"`
	Published  bool           `json:"published"`
	Featured   bool           `json:"featured"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:         uuid.NewString(),
		Name:       c.Name,
		NameAr:     c.NameAr,
		Location:   c.Location,
		LocationAr: c.LocationAr,
		Rating:     c.Rating,
		Amenities:  c.Amenities,
		Published:  c.Published,
		Featured:   c.Featured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name       string         `db:"name"        json:"name"        validate:"omitempty,max=200"`
	NameAr     string         `db:"name_ar"     json:"name_ar"     validate:"omitempty,max=200"`
	Location   string         `db:"location"    json:"location"    validate:"omitempty,max=200"`
	LocationAr string         `db:"location_ar" json:"location_ar" validate:"omitempty,max=200"`
	Rating     float64        `db:"rating"      json:"rating"      validate:"omitempty,gte=0,lte=5"`
	Amenities  pq.StringArray `db:"amenities"   json:"amenities"   validate:"omitempty"`
	Published  *bool          `db:"published"   json:"published"   validate:"omitempty"`
	Featured   *bool          `db:"featured"    json:"featured"    validate:"omitempty"`
}

type HotelResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameAr        string   `json:"name_ar"`
	Location      string   `json:"location"`
	LocationAr    string   `json:"location_ar"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	Published     bool     `json:"published"`
	Featured      bool     `json:"featured"`
	HeadlinePrice float64  `json:"headline_price"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.NameAr = model.NameAr
	r.Location = model.Location
	r.LocationAr = model.LocationAr
	r.Rating = model.Rating
	r.Amenities = model.Amenities
	r.Published = model.Published
	r.Featured = model.Featured

	if model.HeadlinePrice != nil {
		r.HeadlinePrice = *model.HeadlinePrice
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, m := range models {
		r.Hotels[i].FromModel(m)
	}
}
