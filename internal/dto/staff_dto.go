package dto

type CreateStaffMemberRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Position   string `json:"position" binding:"required,max=100"`
	Department string `json:"department" binding:"max=100"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone" binding:"max=50"`
	ImageURL   string `json:"imageUrl"`
	IsActive   *bool  `json:"isActive"`
	Order      *int   `json:"order"`
}

type UpdateStaffMemberRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Position   *string `json:"position" binding:"omitempty,max=100"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	ImageURL   *string `json:"imageUrl"`
	IsActive   *bool   `json:"isActive"`
	Order      *int    `json:"order"`
}
