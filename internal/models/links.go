package models

// Join tables for the many-to-many relations. Each row names both ends; the
// owning entity declares the relation with an m2m tag.

type RouteGuideAuthor struct {
	RouteGuideID            string `gorm:"primaryKey;size:200" ref:"route_guides"`
	PersonAndOrganizationID uint   `gorm:"primaryKey" ref:"person_and_organizations"`
}

func (RouteGuideAuthor) TableName() string { return "route_guide_authors" }

type RouteGuideActivity struct {
	RouteGuideID string `gorm:"primaryKey;size:200" ref:"route_guides"`
	ActivityID   uint   `gorm:"primaryKey" ref:"activities"`
}

func (RouteGuideActivity) TableName() string { return "route_guide_activities" }

type RouteGuideSegmentActivity struct {
	RouteGuideSegmentID string `gorm:"primaryKey;size:200" ref:"route_guide_segments"`
	ActivityID          uint   `gorm:"primaryKey" ref:"activities"`
}

func (RouteGuideSegmentActivity) TableName() string { return "route_guide_segment_activities" }

type RouteGuideSegmentCategory struct {
	RouteGuideSegmentID string `gorm:"primaryKey;size:200" ref:"route_guide_segments"`
	CategoryID          uint   `gorm:"primaryKey" ref:"categories"`
}

func (RouteGuideSegmentCategory) TableName() string { return "route_guide_segment_categories" }

type RouteGuideSegmentArticle struct {
	RouteGuideSegmentID string `gorm:"primaryKey;size:200" ref:"route_guide_segments"`
	ArticleID           uint   `gorm:"primaryKey" ref:"articles"`
}

func (RouteGuideSegmentArticle) TableName() string { return "route_guide_segment_articles" }

type VerificationRecordVerifier struct {
	VerificationRecordID    uint `gorm:"primaryKey" ref:"verification_records"`
	PersonAndOrganizationID uint `gorm:"primaryKey" ref:"person_and_organizations"`
}

func (VerificationRecordVerifier) TableName() string { return "verification_record_verifiers" }

type RouteSegmentGroupSegment struct {
	RouteSegmentGroupID uint   `gorm:"primaryKey" ref:"route_segment_groups"`
	RouteGuideSegmentID string `gorm:"primaryKey;size:200" ref:"route_guide_segments"`
}

func (RouteSegmentGroupSegment) TableName() string { return "route_segment_group_segments" }

// RouteSegmentGroupAlternative is an edge between two groups that are
// alternatives to each other.
type RouteSegmentGroupAlternative struct {
	RouteSegmentGroupID uint `gorm:"primaryKey" ref:"route_segment_groups"`
	AlternativeGroupID  uint `gorm:"primaryKey" ref:"route_segment_groups"`
}

func (RouteSegmentGroupAlternative) TableName() string { return "route_segment_group_alternatives" }
