package dto

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	Location    string    `json:"location" binding:"max=255"`
	IsPublished *bool     `json:"isPublished"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"eventDate"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	IsPublished *bool      `json:"isPublished"`
}
