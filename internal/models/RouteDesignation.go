package models

type RouteDesignation struct {
	Record
	RouteDesTerm string `gorm:"size:100;not null" json:"route_des_term" validate:"required,max=100"`
	Description  string `gorm:"size:250;not null" json:"description" validate:"required,max=250"`
	URL          string `gorm:"column:url;size:200;not null" json:"url" validate:"required,weburl,max=200"`
}

func (RouteDesignation) TableName() string { return "route_designations" }
