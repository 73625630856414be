package models

import "gorm.io/datatypes"

// VerificationRecord notes who fact-checked a guide or segment, and when.
type VerificationRecord struct {
	Record
	DateVerified datatypes.Date `gorm:"not null" json:"date_verified" validate:"required"`

	VerifiedByIDs []uint `gorm:"-" json:"verified_by_ids" m2m:"verification_record_verifiers,verification_record_id,person_and_organization_id"`
}

func (VerificationRecord) TableName() string { return "verification_records" }
