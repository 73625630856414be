package models

type AccessibilityDescription struct {
	Record
	RouteGuideID        *string `gorm:"index;size:200" json:"route_guide_id,omitempty" ref:"route_guides,parent"`
	RouteGuideSegmentID *string `gorm:"index;size:200" json:"route_guide_segment_id,omitempty" ref:"route_guide_segments,parent"`
	Description         string  `gorm:"size:250;not null" json:"description" validate:"required,max=250"`
}

func (AccessibilityDescription) TableName() string { return "accessibility_descriptions" }
