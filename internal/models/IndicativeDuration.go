package models

// IndicativeDuration holds an ISO 8601 duration such as "PT3H30M".
type IndicativeDuration struct {
	Record
	Duration string `gorm:"size:10;not null" json:"duration" validate:"required,max=10,iso8601duration"`
}

func (IndicativeDuration) TableName() string { return "indicative_durations" }
