package models

import "gorm.io/datatypes"

// Provenance attributes a guide's data to the publisher it was based on.
type Provenance struct {
	Record
	PublisherID uint           `gorm:"index;not null" json:"publisher_id" ref:"person_and_organizations" validate:"required"`
	URL         string         `gorm:"column:url;size:200;not null" json:"url" validate:"required,weburl,max=200"`
	Version     datatypes.Date `gorm:"not null" json:"version" validate:"required"`
	Description string         `gorm:"size:250;not null" json:"description" validate:"required,max=250"`
}

func (Provenance) TableName() string { return "provenances" }
