package models

// MapReference locates a route point on a printed map sheet.
type MapReference struct {
	Record
	RoutePointID  uint   `gorm:"index;not null" json:"route_point_id" ref:"route_points" validate:"required"`
	MapSeries     string `gorm:"size:10;not null" json:"map_series" validate:"required,max=10"`
	MapNumber     string `gorm:"size:10;not null" json:"map_number" validate:"required,max=10"`
	GridReference string `gorm:"size:10;not null" json:"grid_reference" validate:"required,max=10"`
}

func (MapReference) TableName() string { return "map_references" }
