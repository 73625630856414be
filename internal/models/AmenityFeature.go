package models

type AmenityFeature struct {
	Record
	RoutePointID uint   `gorm:"index;not null" json:"route_point_id" ref:"route_points" validate:"required"`
	Name         string `gorm:"size:75;not null" json:"name" validate:"required,max=75"`
}

func (AmenityFeature) TableName() string { return "amenity_features" }
