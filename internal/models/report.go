package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeekerReport is a consumer food-safety report against a shop-bought product.
// The primary key is exposed as report_id.
type SeekerReport struct {
	ReportID       uuid.UUID          `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`
	UserID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductName    string             `gorm:"size:255;not null" json:"product_name"`
	ProductBarcode string             `gorm:"size:100;index" json:"product_barcode"`
	ShopName       string             `gorm:"size:255;not null" json:"shop_name"`
	Location       string             `gorm:"size:255" json:"location"`
	Reason         SeekerReportReason `gorm:"size:50;not null;index" json:"reason"`
	Description    string             `gorm:"type:text;not null" json:"description"`
	Status         ReportStatus       `gorm:"size:50;default:'PENDING_REVIEW';index" json:"status"`
	EvidenceURLs   datatypes.JSON     `gorm:"column:evidence_urls;type:jsonb;default:'[]'" json:"evidence_urls"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	User           User               `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
}

// ContributorReport is a supply-side report against a distributor batch.
type ContributorReport struct {
	ReportID        uuid.UUID               `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`
	UserID          uuid.UUID               `gorm:"type:uuid;not null;index" json:"user_id"`
	BusinessID      string                  `gorm:"size:100;not null;index" json:"business_id"`
	ProductName     string                  `gorm:"size:255;not null" json:"product_name"`
	DistributorName string                  `gorm:"size:255;not null;index" json:"distributor_name"`
	BatchNumber     string                  `gorm:"size:100;not null;index" json:"batch_number"`
	Reason          ContributorReportReason `gorm:"size:50;not null;index" json:"reason"`
	Description     string                  `gorm:"type:text;not null" json:"description"`
	Status          ReportStatus            `gorm:"size:50;default:'PENDING_REVIEW';index" json:"status"`
	EvidenceURLs    datatypes.JSON          `gorm:"column:evidence_urls;type:jsonb;default:'[]'" json:"evidence_urls"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	User            User                    `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
}
