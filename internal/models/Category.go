package models

type Category struct {
	Record
	Content string `gorm:"size:30;not null" json:"content" validate:"required,max=30"`
}

func (Category) TableName() string { return "categories" }
