package models

// GeoCoordinates is a WGS84 position of a route point.
type GeoCoordinates struct {
	Record
	RoutePointID *uint   `gorm:"index" json:"route_point_id,omitempty" ref:"route_points"`
	Latitude     float64 `gorm:"not null" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `gorm:"not null" json:"longitude" validate:"gte=-180,lte=180"`
}

func (GeoCoordinates) TableName() string { return "geo_coordinates" }
