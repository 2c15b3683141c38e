package model

import (
	"manzil/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldName          = "name"
	FieldNameAr        = "name_ar"
	FieldDescription   = "description"
	FieldDescriptionAr = "description_ar"
	FieldPrice         = "price"
	FieldCapacity      = "capacity"
	FieldAvailable     = "available"
)

type Room struct {
	ID            string         `db:"id"`
	HotelID       string         `db:"hotel_id"`
	Name          string         `db:"name"`
	NameAr        string         `db:"name_ar"`
	Description   string         `db:"description"`
	DescriptionAr string         `db:"description_ar"`
	Price         float64        `db:"price"`
	Capacity      int            `db:"capacity"`
	Available     int            `db:"available"`
	Images        pq.StringArray `db:"images"`
	model.Metadata
}
