package dto

import (
	"mime/multipart"

	"manzil/internal/domains/media/model"
	"manzil/shared"
	gDto "manzil/shared/dto"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
)

type UploadMediaRequest struct {
	File     *multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png image/webp image/gif,maxfilesize=5"`
	FileData multipart.File        `validate:"required"`
	Category string                `validate:"omitempty,max=100"`
}

func (c *UploadMediaRequest) ToModel(user, url string) model.Media {
	return model.Media{
		ID:          uuid.NewString(),
		FileName:    c.File.Filename,
		URL:         url,
		ContentType: c.File.Header.Get("Content-Type"),
		Size:        c.File.Size,
		Category:    c.Category,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MediaResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Category    string `json:"category,omitempty"`
	gDto.Metadata
}

func (r *MediaResponse) FromModel(model model.Media) {
	r.ID = model.ID
	r.FileName = model.FileName
	r.URL = model.URL
	r.ContentType = model.ContentType
	r.Size = model.Size
	r.Category = model.Category

	r.Metadata.FromModel(model.Metadata)
}

type GetMediaResponse struct {
	Media     []MediaResponse `json:"media"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMediaResponse) FromModels(models []model.Media, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Media = make([]MediaResponse, len(models))
	for i, m := range models {
		r.Media[i].FromModel(m)
	}
}
