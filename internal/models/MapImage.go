package models

// MapImage is a rendered map picture for a guide or one of its segments.
type MapImage struct {
	Record
	RouteGuideID        *string `gorm:"index;size:200" json:"route_guide_id,omitempty" ref:"route_guides,parent"`
	RouteGuideSegmentID *string `gorm:"index;size:200" json:"route_guide_segment_id,omitempty" ref:"route_guide_segments,parent"`
	MapType             MapType `gorm:"size:12;not null" json:"map_type" validate:"required,oneof=RouteMap ElevationMap CustomMap"`
	Image               string  `gorm:"size:200;not null" json:"image" validate:"required,weburl,max=200"`
	EncodingFormat      string  `gorm:"size:40;not null" json:"encoding_format" validate:"required,max=40"`
}

func (MapImage) TableName() string { return "map_images" }
