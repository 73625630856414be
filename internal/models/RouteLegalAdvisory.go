package models

// RouteLegalAdvisory records the legal status of a guide or segment under a
// route designation (public footpath, bridleway, ...).
type RouteLegalAdvisory struct {
	Record
	RouteGuideID        *string `gorm:"index;size:200" json:"route_guide_id,omitempty" ref:"route_guides,parent"`
	RouteGuideSegmentID *string `gorm:"index;size:200" json:"route_guide_segment_id,omitempty" ref:"route_guide_segments,parent"`
	RouteDesignationID  uint    `gorm:"index;not null" json:"route_designation_id" ref:"route_designations" validate:"required"`
	Description         string  `gorm:"size:250;not null" json:"description" validate:"required,max=250"`
	LegalDefURL         string  `gorm:"column:legal_defurl;size:200;not null" json:"legal_defurl" validate:"required,weburl,max=200"`
}

func (RouteLegalAdvisory) TableName() string { return "route_legal_advisories" }
