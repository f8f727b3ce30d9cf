package dto

type UpdateUserRequest struct {
	FullName            *string `json:"full_name"`
	Phone               *string `json:"phone"`
	CulturalAffiliation *string `json:"cultural_affiliation"`
	AvatarURL           *string `json:"avatar_url"`
	NewsletterAgreed    *bool   `json:"newsletter_agreed"`
}

type UpdateUserVerificationRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid"`
	IsVerified *bool  `json:"is_verified" validate:"required"`
}
