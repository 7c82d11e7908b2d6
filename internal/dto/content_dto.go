package dto

import "encoding/json"

type CreateContentPageRequest struct {
	PageKey     string          `json:"pageKey" binding:"required,max=100"`
	Title       string          `json:"title" binding:"required,max=255"`
	Content     json.RawMessage `json:"content"`
	IsPublished *bool           `json:"isPublished"`
}

// UpdateContentPageRequest carries a partial update; nil fields keep their
// stored values.
type UpdateContentPageRequest struct {
	Title       *string         `json:"title" binding:"omitempty,max=255"`
	Content     json.RawMessage `json:"content"`
	IsPublished *bool           `json:"isPublished"`
}
