package model

import (
	"manzil/shared/model"
)

const (
	TableName  = "media"
	EntityName = "media"

	FieldID       = "id"
	FieldCategory = "category"
	FieldURL      = "url"
)

type Media struct {
	ID          string `db:"id"`
	FileName    string `db:"file_name"`
	URL         string `db:"url"`
	ContentType string `db:"content_type"`
	Size        int64  `db:"size"`
	Category    string `db:"category"`
	model.Metadata
}
