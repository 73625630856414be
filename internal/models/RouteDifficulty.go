package models

type RouteDifficulty struct {
	Record
	DifficultyTerm   string `gorm:"size:15;not null" json:"difficulty_term" validate:"required,max=15"`
	Description      string `gorm:"size:250;not null" json:"description" validate:"required,max=250"`
	DifficultyDefURL string `gorm:"column:difficulty_defurl;size:200;not null" json:"difficulty_defurl" validate:"required,weburl,max=200"`
}

func (RouteDifficulty) TableName() string { return "route_difficulties" }
