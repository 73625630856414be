package models

// Activity is a controlled-vocabulary term such as walking or cycling.
type Activity struct {
	Record
	PrefLabel  string `gorm:"size:100;not null" json:"pref_label" validate:"required,max=100"`
	Identifier string `gorm:"size:200;not null" json:"identifier" validate:"required,weburl,max=200"`
}

func (Activity) TableName() string { return "activities" }
