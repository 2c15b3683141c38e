package model

import (
	"manzil/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	// PriceTableName is the aliased subquery joined for the headline price.
	PriceTableName = "hotel_room_prices"

	FieldID            = "id"
	FieldName          = "name"
	FieldNameAr        = "name_ar"
	FieldLocation      = "location"
	FieldLocationAr    = "location_ar"
	FieldRating        = "rating"
	FieldAmenities     = "amenities"
	FieldPublished     = "published"
	FieldFeatured      = "featured"
	FieldHeadlinePrice = "headline_price"
)

type Hotel struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	NameAr        string         `db:"name_ar"`
	Location      string         `db:"location"`
	LocationAr    string         `db:"location_ar"`
	Rating        float64        `db:"rating"`
	Amenities     pq.StringArray `db:"amenities"`
	Published     bool           `db:"published"`
	Featured      bool           `db:"featured"`
	HeadlinePrice *float64       `db:"headline_price" table:"hotel_room_prices" column:"headline_price"`
	model.Metadata
}

// GetJoinQuery projects the cheapest room per hotel as the headline price.
// Hotels without rooms come back with a NULL headline price.
func (Hotel) GetJoinQuery() string {
	return "LEFT JOIN (SELECT hotel_id, MIN(price) AS headline_price FROM rooms GROUP BY hotel_id) hotel_room_prices ON hotel_room_prices.hotel_id = hotels.id"
}
