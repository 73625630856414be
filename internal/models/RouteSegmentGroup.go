package models

// RouteSegmentGroup bundles segments that together form one way through a
// guide. Groups that are alternatives to each other are linked through the
// route_segment_group_alternatives edge table rather than a self reference.
type RouteSegmentGroup struct {
	Record
	IDAsURL     string `gorm:"column:id_as_url;size:200;not null" json:"id_as_url" validate:"required,weburl,max=200"`
	Name        string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"size:250;not null" json:"description" validate:"required,max=250"`

	SegmentIDs     []string `gorm:"-" json:"segment_ids" m2m:"route_segment_group_segments,route_segment_group_id,route_guide_segment_id"`
	AlternativeIDs []uint   `gorm:"-" json:"alternative_ids" m2m:"route_segment_group_alternatives,route_segment_group_id,alternative_group_id"`
}

func (RouteSegmentGroup) TableName() string { return "route_segment_groups" }
