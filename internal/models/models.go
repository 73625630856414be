// Package models declares the route catalog entities.
//
// Besides the usual gorm and json tags, fields carry two catalog tags:
//
//	ref:"<table>[,parent]"  the column references the primary key of <table>;
//	                        "parent" marks the guide/segment pair of which
//	                        exactly one must be set.
//	m2m:"<join>,<owner>,<target>"  the slice holds the target keys stored in
//	                        join table <join>.
//
// Every reference cascades on delete.
package models

// All returns one value of every persisted type, parents before children.
func All() []any {
	return []any{
		&PersonAndOrganization{},
		&Provenance{},
		&VerificationRecord{},
		&RouteDifficulty{},
		&Activity{},
		&Category{},
		&Article{},
		&RouteDesignation{},
		&IndicativeDuration{},
		&Distance{},
		&RouteGuide{},
		&RouteGuideSegment{},
		&RoutePoint{},
		&MapReference{},
		&AmenityFeature{},
		&GeoCoordinates{},
		&TransportNote{},
		&GeoPath{},
		&MapImage{},
		&AccessibilityDescription{},
		&RouteGradient{},
		&RouteLegalAdvisory{},
		&RouteSegmentGroup{},
		&UserGeneratedContent{},
		&RouteGuideAuthor{},
		&RouteGuideActivity{},
		&RouteGuideSegmentActivity{},
		&RouteGuideSegmentCategory{},
		&RouteGuideSegmentArticle{},
		&VerificationRecordVerifier{},
		&RouteSegmentGroupSegment{},
		&RouteSegmentGroupAlternative{},
	}
}
