package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protoroute/internal/catalog"
	"protoroute/internal/catalog/catalogtest"
	"protoroute/internal/models"
)

func TestCheckCleanStore(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	g := catalogtest.Guide(t, s, "https://example.org/guides/tidy")
	catalogtest.Point(t, s, &g.IDAsURL, nil, "gate")

	violations, err := s.Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckFindsRowsWrittenAround(t *testing.T) {
	s, db := catalogtest.NewStore(t)
	g := catalogtest.Guide(t, s, "https://example.org/guides/messy")
	seg := catalogtest.Segment(t, s, g.IDAsURL, "https://example.org/guides/messy/1", 1)

	orphan := &models.RoutePoint{Name: "orphan", SameAs: "https://example.org/orphan"}
	require.NoError(t, db.Create(orphan).Error)
	both := &models.RoutePoint{
		RouteGuideID:        &g.IDAsURL,
		RouteGuideSegmentID: &seg.IDAsURL,
		Name:                "both",
		SameAs:              "https://example.org/both",
	}
	require.NoError(t, db.Create(both).Error)

	bench := &models.AmenityFeature{RoutePointID: 999, Name: "bench"}
	require.NoError(t, db.Create(bench).Error)
	require.NoError(t, db.Create(&models.RouteGuideAuthor{
		RouteGuideID:            g.IDAsURL,
		PersonAndOrganizationID: 42,
	}).Error)

	violations, err := s.Check(context.Background())
	require.NoError(t, err)

	const parents = "route_guide_id|route_guide_segment_id"
	assert.ElementsMatch(t, []catalog.Violation{
		{Table: "route_points", Column: parents, Kind: catalog.ViolationParent, Key: orphan.ID},
		{Table: "route_points", Column: parents, Kind: catalog.ViolationParent, Key: both.ID},
		{Table: "amenity_features", Column: "route_point_id", Kind: catalog.ViolationDangling, Key: bench.ID},
		{Table: "route_guide_authors", Column: "person_and_organization_id", Kind: catalog.ViolationDangling, Key: uint(42)},
	}, violations)
}

func TestViolationString(t *testing.T) {
	v := catalog.Violation{Table: "amenity_features", Column: "route_point_id", Kind: catalog.ViolationDangling, Key: uint(7)}
	assert.Equal(t, "amenity_features[7].route_point_id: dangling_reference", v.String())
}
