package models

// PersonAndOrganization is an author, publisher, verifier or content creator.
type PersonAndOrganization struct {
	Record
	Name           string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email          string `gorm:"size:254" json:"email" validate:"omitempty,email,max=254"`
	Website        string `gorm:"size:200" json:"website" validate:"omitempty,weburl,max=200"`
	MapReferenceID *uint  `gorm:"index" json:"map_reference_id,omitempty" ref:"map_references"`
}

func (PersonAndOrganization) TableName() string { return "person_and_organizations" }
