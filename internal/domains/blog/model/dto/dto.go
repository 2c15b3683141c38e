package dto

import (
	"time"

	"manzil/internal/domains/blog/model"
	"manzil/shared"
	gDto "manzil/shared/dto"
	gModel "manzil/shared/model"
	"manzil/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BlockRequest struct {
	Type    string `json:"type"    validate:"required,oneof=paragraph heading image quote"`
	Text    string `json:"text"    validate:"omitempty"`
	TextAr  string `json:"text_ar" validate:"omitempty"`
	URL     string `json:"url"     validate:"omitempty,url"`
	Caption string `json:"caption" validate:"omitempty,max=300"`
}

type CreateBlogRequest struct {
	Title      string         `json:"title"       validate:"required,max=200"`
	TitleAr    string         `json:"title_ar"    validate:"required,max=200"`
	Slug       string         `json:"slug"        validate:"required,max=200,lowercase"`
	Category   string         `json:"category"    validate:"required,max=100"`
	Tags       pq.StringArray `json:"tags"        validate:"omitempty"`
	Content    []BlockRequest `json:"content"     validate:"required,min=1,dive"`
	CoverImage string         `json:"cover_image" validate:"omitempty,url"`
	Published  bool           `json:"published"`
}

func (c *CreateBlogRequest) ToModel(user string) model.Blog {
	content := make(model.Blocks, len(c.Content))
	for i, block := range c.Content {
		content[i] = model.Block(block)
	}

	var publishedAt *time.Time
	if c.Published {
		now := timezone.Now()
		publishedAt = &now
	}

	return model.Blog{
		ID:          uuid.NewString(),
		Title:       c.Title,
		TitleAr:     c.TitleAr,
		Slug:        c.Slug,
		Category:    c.Category,
		Tags:        c.Tags,
		Content:     content,
		CoverImage:  c.CoverImage,
		Published:   c.Published,
		PublishedAt: publishedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBlogRequest struct {
	Title      string         `db:"title"       json:"title"       validate:"omitempty,max=200"`
	TitleAr    string         `db:"title_ar"    json:"title_ar"    validate:"omitempty,max=200"`
	Slug       string         `db:"slug"        json:"slug"        validate:"omitempty,max=200,lowercase"`
	Category   string         `db:"category"    json:"category"    validate:"omitempty,max=100"`
	Tags       pq.StringArray `db:"tags"        json:"tags"        validate:"omitempty"`
	Content    []BlockRequest `json:"content"                      validate:"omitempty,min=1,dive"`
	CoverImage string         `db:"cover_image" json:"cover_image" validate:"omitempty,url"`
	Published  *bool          `db:"published"   json:"published"   validate:"omitempty"`
}

// ToBlocks converts the request content into the stored block list, or nil
// when the content was not part of the update.
func (u *UpdateBlogRequest) ToBlocks() model.Blocks {
	if len(u.Content) == 0 {
		return nil
	}

	content := make(model.Blocks, len(u.Content))
	for i, block := range u.Content {
		content[i] = model.Block(block)
	}

	return content
}

type BlogResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	TitleAr     string        `json:"title_ar"`
	Slug        string        `json:"slug"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Content     []model.Block `json:"content"`
	CoverImage  string        `json:"cover_image,omitempty"`
	Published   bool          `json:"published"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	gDto.Metadata
}

func (r *BlogResponse) FromModel(model model.Blog) {
	r.ID = model.ID
	r.Title = model.Title
	r.TitleAr = model.TitleAr
	r.Slug = model.Slug
	r.Category = model.Category
	r.Tags = model.Tags
	r.Content = model.Content
	r.CoverImage = model.CoverImage
	r.Published = model.Published
	r.PublishedAt = model.PublishedAt

	r.Metadata.FromModel(model.Metadata)
}

type GetBlogsResponse struct {
	Blogs     []BlogResponse `json:"blogs"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBlogsResponse) FromModels(models []model.Blog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Blogs = make([]BlogResponse, len(models))
	for i, m := range models {
		r.Blogs[i].FromModel(m)
	}
}
