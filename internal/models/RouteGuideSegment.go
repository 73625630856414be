package models

import (
	"time"

	"gorm.io/datatypes"
)

// RouteGuideSegment is a numbered sub-section of a RouteGuide.
//
// As with RouteGuide, IsLoop is true only for segments made by
// NewRouteGuideSegment; a zero value stores false.
type RouteGuideSegment struct {
	IDAsURL              string          `gorm:"primaryKey;column:id_as_url;size:200" json:"id_as_url" validate:"required,weburl,max=200"`
	Name                 string          `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	URL                  string          `gorm:"column:url;size:200;not null" json:"url" validate:"required,weburl,max=200"`
	DatePublished        *datatypes.Date `json:"date_published,omitempty"`
	DateModified         *datatypes.Date `json:"date_modified,omitempty"`
	Description          string          `gorm:"type:text" json:"description"`
	Headline             string          `gorm:"size:200" json:"headline" validate:"max=200"`
	IsLoop               bool            `gorm:"not null" json:"is_loop"`
	Segment              int             `gorm:"not null" json:"segment"`
	TopLevelRouteGuideID string          `gorm:"index;size:200;not null" json:"top_level_route_guide_id" ref:"route_guides" validate:"required"`
	VerificationRecordID *uint           `gorm:"index" json:"verification_record_id,omitempty" ref:"verification_records"`
	RouteDifficultyID    *uint           `gorm:"index" json:"route_difficulty_id,omitempty" ref:"route_difficulties"`
	DistanceID           *uint           `gorm:"index" json:"distance_id" ref:"distances" validate:"required"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`

	ActivityIDs       []uint `gorm:"-" json:"activity_ids" m2m:"route_guide_segment_activities,route_guide_segment_id,activity_id"`
	CategoryIDs       []uint `gorm:"-" json:"category_ids" m2m:"route_guide_segment_categories,route_guide_segment_id,category_id"`
	AdditionalInfoIDs []uint `gorm:"-" json:"additional_info_ids" m2m:"route_guide_segment_articles,route_guide_segment_id,article_id"`
}

func (RouteGuideSegment) TableName() string { return "route_guide_segments" }

// NewRouteGuideSegment returns segment number n of guide, looping by default
// like its parent.
func NewRouteGuideSegment(guide, id, name, url string, n int) *RouteGuideSegment {
	return &RouteGuideSegment{
		IDAsURL:              id,
		Name:                 name,
		URL:                  url,
		IsLoop:               true,
		Segment:              n,
		TopLevelRouteGuideID: guide,
	}
}
