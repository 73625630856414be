package models

type UserGeneratedContent struct {
	Record
	CreatorID           uint   `gorm:"index;not null" json:"creator_id" ref:"person_and_organizations" validate:"required"`
	AccountablePersonID uint   `gorm:"index;not null" json:"accountable_person_id" ref:"person_and_organizations" validate:"required"`
	SpatialCoverage     string `gorm:"size:500;not null" json:"spatial_coverage" validate:"required,max=500"`
	AssociatedMedia     string `gorm:"size:500;not null" json:"associated_media" validate:"required,max=500"`
}

func (UserGeneratedContent) TableName() string { return "user_generated_contents" }
