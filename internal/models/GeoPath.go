package models

// GeoPath points at an encoded track file (GPX, KML, ...) for a guide or
// one of its segments.
type GeoPath struct {
	Record
	RouteGuideID        *string `gorm:"index;size:200" json:"route_guide_id,omitempty" ref:"route_guides,parent"`
	RouteGuideSegmentID *string `gorm:"index;size:200" json:"route_guide_segment_id,omitempty" ref:"route_guide_segments,parent"`
	MapType             MapType `gorm:"size:12;not null" json:"map_type" validate:"required,oneof=RouteMap ElevationMap CustomMap"`
	URL                 string  `gorm:"column:url;size:200;not null" json:"url" validate:"required,weburl,max=200"`
	EncodingFormat      string  `gorm:"size:40;not null" json:"encoding_format" validate:"required,max=40"`
}

func (GeoPath) TableName() string { return "geo_paths" }
