package dto

type CreatePostRequest struct {
	Title         string `json:"title" binding:"required,min=2"`
	Content       string `json:"content" binding:"required"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`
	FeaturedImage string `json:"featured_image" binding:"required"`
}

type EditPostRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive"`
	FeaturedImage *string `json:"featured_image"`
}
