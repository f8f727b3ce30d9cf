package dto

type CreateSeekerReportRequest struct {
	UserID         string   `json:"user_id" form:"user_id" validate:"required,uuid"`
	ProductName    string   `json:"product_name" form:"product_name" validate:"required"`
	ProductBarcode string   `json:"product_barcode" form:"product_barcode"`
	ShopName       string   `json:"shop_name" form:"shop_name"`
	Location       string   `json:"location" form:"location"`
	Reason         string   `json:"reason" form:"reason" validate:"required"`
	Description    string   `json:"description" form:"description"`
	EvidenceURLs   []string `json:"evidence_urls" form:"evidence_urls"`
}

type CreateContributorReportRequest struct {
	UserID          string   `json:"user_id" form:"user_id" validate:"required,uuid"`
	BusinessID      string   `json:"business_id" form:"business_id" validate:"required"`
	DistributorName string   `json:"distributor_name" form:"distributor_name"`
	ProductName     string   `json:"product_name" form:"product_name" validate:"required"`
	BatchNumber     string   `json:"batch_number" form:"batch_number"`
	Reason          string   `json:"reason" form:"reason" validate:"required"`
	Description     string   `json:"description" form:"description"`
	EvidenceURLs    []string `json:"evidence_urls" form:"evidence_urls"`
}

type UpdateSeekerReportRequest struct {
	UserID         string  `json:"user_id" form:"user_id" validate:"required,uuid"`
	ProductName    *string `json:"product_name" form:"product_name"`
	ProductBarcode *string `json:"product_barcode" form:"product_barcode"`
	ShopName       *string `json:"shop_name" form:"shop_name"`
	Location       *string `json:"location" form:"location"`
	Reason         *string `json:"reason" form:"reason"`
	Description    *string `json:"description" form:"description"`
}

type UpdateContributorReportRequest struct {
	UserID          string  `json:"user_id" form:"user_id" validate:"required,uuid"`
	BusinessID      *string `json:"business_id" form:"business_id"`
	DistributorName *string `json:"distributor_name" form:"distributor_name"`
	ProductName     *string `json:"product_name" form:"product_name"`
	BatchNumber     *string `json:"batch_number" form:"batch_number"`
	Reason          *string `json:"reason" form:"reason"`
	Description     *string `json:"description" form:"description"`
}

type UpdateReportStatusRequest struct {
	UserID string `json:"user_id" form:"user_id" validate:"required,uuid"`
	Status string `json:"status" form:"status" validate:"required"`
}
