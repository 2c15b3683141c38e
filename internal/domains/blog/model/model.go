package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"manzil/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "blogs"
	EntityName = "blog"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldTitleAr   = "title_ar"
	FieldSlug      = "slug"
	FieldCategory  = "category"
	FieldPublished = "published"

	BlockTypeParagraph = "paragraph"
	BlockTypeHeading   = "heading"
	BlockTypeImage     = "image"
	BlockTypeQuote     = "quote"
)

// Block is one content unit of a blog post. Text blocks carry both language
// variants; image blocks carry the URL and an optional caption.
type Block struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	TextAr  string `json:"text_ar,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Blocks is the ordered block list stored as jsonb.
type Blocks []Block

func (b Blocks) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}

	value, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal blog content: %w", err)
	}

	return value, nil
}

func (b *Blocks) Scan(src any) error {
	if src == nil {
		*b = nil

		return nil
	}

	var data []byte

	switch value := src.(type) {
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported type for blog content: %T", src)
	}

	if err := json.Unmarshal(data, b); err != nil {
		return fmt.Errorf("failed to unmarshal blog content: %w", err)
	}

	return nil
}

type Blog struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	TitleAr     string         `db:"title_ar"`
	Slug        string         `db:"slug"`
	Category    string         `db:"category"`
	Tags        pq.StringArray `db:"tags"`
	Content     Blocks         `db:"content"`
	CoverImage  string         `db:"cover_image"`
	Published   bool           `db:"published"`
	PublishedAt *time.Time     `db:"published_at"`
	model.Metadata
}
