package models

import (
	"time"

	"gorm.io/datatypes"
)

// RouteGuide is a top-level trail description, keyed by its canonical URL.
//
// IsLoop defaults to true only when the guide is built with NewRouteGuide.
// The column has no database default, so a RouteGuide literal that leaves
// IsLoop unset is stored as not a loop.
type RouteGuide struct {
	IDAsURL              string          `gorm:"primaryKey;column:id_as_url;size:200" json:"id_as_url" validate:"required,weburl,max=200"`
	Name                 string          `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	URL                  string          `gorm:"column:url;size:200;not null" json:"url" validate:"required,weburl,max=200"`
	DatePublished        *datatypes.Date `json:"date_published,omitempty"`
	DateModified         *datatypes.Date `json:"date_modified,omitempty"`
	Description          string          `gorm:"type:text" json:"description"`
	Headline             string          `gorm:"size:200" json:"headline" validate:"max=200"`
	IsLoop               bool            `gorm:"not null" json:"is_loop"`
	IsBasedOnID          *uint           `gorm:"index" json:"is_based_on_id,omitempty" ref:"provenances"`
	VerificationRecordID *uint           `gorm:"index" json:"verification_record_id,omitempty" ref:"verification_records"`
	RouteDifficultyID    *uint           `gorm:"index" json:"route_difficulty_id,omitempty" ref:"route_difficulties"`
	DistanceID           *uint           `gorm:"index" json:"distance_id" ref:"distances" validate:"required"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`

	AuthorIDs   []uint `gorm:"-" json:"author_ids" m2m:"route_guide_authors,route_guide_id,person_and_organization_id"`
	ActivityIDs []uint `gorm:"-" json:"activity_ids" m2m:"route_guide_activities,route_guide_id,activity_id"`
}

func (RouteGuide) TableName() string { return "route_guides" }

// NewRouteGuide returns a guide carrying the declared defaults; guides are
// loops unless told otherwise. It is the only place that default is applied.
func NewRouteGuide(id, name, url string) *RouteGuide {
	return &RouteGuide{IDAsURL: id, Name: name, URL: url, IsLoop: true}
}
