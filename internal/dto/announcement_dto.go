package dto

type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Content     string `json:"content" binding:"required"`
	IsPublished *bool  `json:"isPublished"`
}

type UpdateAnnouncementRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"isPublished"`
}
