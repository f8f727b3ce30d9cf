package dto

type CreatePlantRequest struct {
	UserID          string   `json:"user_id" form:"user_id" validate:"required,uuid"`
	ScientificName  string   `json:"scientific_name" form:"scientific_name" validate:"required"`
	Family          string   `json:"family" form:"family"`
	LocalNames      []string `json:"local_names" form:"local_names"`
	CulturalGroup   string   `json:"cultural_group" form:"cultural_group"`
	Description     string   `json:"description" form:"description"`
	TraditionalUses []string `json:"traditional_uses" form:"traditional_uses"`
	RegionsFound    []string `json:"regions_found" form:"regions_found"`
	SafetyNotes     string   `json:"safety_notes" form:"safety_notes"`
}

type UpdatePlantRequest struct {
	UserID          string    `json:"user_id" form:"user_id" validate:"required,uuid"`
	ScientificName  *string   `json:"scientific_name" form:"scientific_name"`
	Family          *string   `json:"family" form:"family"`
	LocalNames      *[]string `json:"local_names" form:"local_names"`
	CulturalGroup   *string   `json:"cultural_group" form:"cultural_group"`
	Description     *string   `json:"description" form:"description"`
	TraditionalUses *[]string `json:"traditional_uses" form:"traditional_uses"`
	RegionsFound    *[]string `json:"regions_found" form:"regions_found"`
	SafetyNotes     *string   `json:"safety_notes" form:"safety_notes"`
	// DeleteImages lists stored image URLs to detach from the entry.
	DeleteImages []string `json:"delete_images" form:"delete_images"`
}

type VerifyRequest struct {
	UserID string `json:"user_id" form:"user_id" validate:"required,uuid"`
	Status string `json:"status" form:"status" validate:"required,oneof=verified rejected"`
	Notes  string `json:"notes" form:"notes"`
}

type DeleteOwnedRequest struct {
	UserID string `json:"user_id" form:"user_id" validate:"required,uuid"`
}
