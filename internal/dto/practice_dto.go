package dto

type CreatePracticeRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	Title            string `json:"title" validate:"required"`
	Type             string `json:"type"`
	CulturalGroup    string `json:"cultural_group"`
	Description      string `json:"description"`
	TimeOfYear       string `json:"time_of_year"`
	SensitivityLevel string `json:"cultural_sensitivity_level" validate:"omitempty,oneof=public restricted"`
}

type UpdatePracticeRequest struct {
	UserID           string  `json:"user_id" validate:"required,uuid"`
	Title            *string `json:"title"`
	Type             *string `json:"type"`
	CulturalGroup    *string `json:"cultural_group"`
	Description      *string `json:"description"`
	TimeOfYear       *string `json:"time_of_year"`
	SensitivityLevel *string `json:"cultural_sensitivity_level" validate:"omitempty,oneof=public restricted"`
}
