package models

// RoutePoint is a named waypoint on a guide or on one of its segments.
type RoutePoint struct {
	Record
	RouteGuideID           *string `gorm:"index;size:200" json:"route_guide_id,omitempty" ref:"route_guides,parent"`
	RouteGuideSegmentID    *string `gorm:"index;size:200" json:"route_guide_segment_id,omitempty" ref:"route_guide_segments,parent"`
	Name                   string  `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	IsAccessPoint          bool    `gorm:"not null" json:"is_access_point"`
	IsPreferredAccessPoint bool    `gorm:"not null" json:"is_preferred_access_point"`
	Description            string  `gorm:"type:text" json:"description"`
	Headline               string  `gorm:"size:200" json:"headline" validate:"max=200"`
	SameAs                 string  `gorm:"size:200;not null" json:"same_as" validate:"required,weburl,max=200"`
}

func (RoutePoint) TableName() string { return "route_points" }
