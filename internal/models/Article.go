package models

// Article is additional reading attached to a segment.
type Article struct {
	Record
	Headline  string `gorm:"size:100;not null" json:"headline" validate:"required,max=100"`
	Body      string `gorm:"type:text;not null" json:"body" validate:"required"`
	Backstory string `gorm:"type:text;not null" json:"backstory" validate:"required"`
}

func (Article) TableName() string { return "articles" }
