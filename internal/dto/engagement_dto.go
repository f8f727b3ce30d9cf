package dto

type CreateEngagementRequest struct {
	UserID         string   `json:"user_id" form:"user_id" validate:"required,uuid"`
	Content        string   `json:"content" form:"content" validate:"required"`
	EngagementType string   `json:"engagement_type" form:"engagement_type"`
	Tags           []string `json:"tags" form:"tags"`
}

type UpdateEngagementRequest struct {
	UserID         string    `json:"user_id" form:"user_id" validate:"required,uuid"`
	Content        *string   `json:"content" form:"content"`
	EngagementType *string   `json:"engagement_type" form:"engagement_type"`
	Tags           *[]string `json:"tags" form:"tags"`
}

type LikeRequest struct {
	UserID string `json:"user_id" form:"user_id" validate:"required,uuid"`
}

type CommentRequest struct {
	UserID          string  `json:"user_id" form:"user_id" validate:"required,uuid"`
	Content         string  `json:"content" form:"content" validate:"required"`
	ParentCommentID *string `json:"parent_comment_id" form:"parent_comment_id" validate:"omitempty,uuid"`
}

type ViewRequest struct {
	UserID string `json:"user_id" form:"user_id" validate:"required,uuid"`
}
