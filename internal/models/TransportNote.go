package models

// TransportNote explains how to reach a route point by one transport mode.
type TransportNote struct {
	Record
	RoutePointID  *uint         `gorm:"index" json:"route_point_id,omitempty" ref:"route_points"`
	TransportMode TransportMode `gorm:"size:100;not null" json:"transport_mode" validate:"required,oneof=Bus Rail Road Foot Bicycle"`
	Description   string        `gorm:"size:500;not null" json:"description" validate:"required,max=500"`
}

func (TransportNote) TableName() string { return "transport_notes" }
