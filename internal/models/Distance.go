package models

// DefaultDistanceUnit is used when a distance is stored without a unit.
const DefaultDistanceUnit = "km"

// Distance is a measured length or height. When RoutePointID is set the
// distance is that point's elevation.
type Distance struct {
	Record
	RoutePointID *uint   `gorm:"index" json:"route_point_id,omitempty" ref:"route_points"`
	Value        float64 `gorm:"not null" json:"value"`
	Unit         string  `gorm:"size:6;not null;default:km" json:"unit" validate:"required,max=6"`
}

func (Distance) TableName() string { return "distances" }

func (d *Distance) ApplyDefaults() {
	if d.Unit == "" {
		d.Unit = DefaultDistanceUnit
	}
}
