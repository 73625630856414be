package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"protoroute/internal/catalog"
	"protoroute/internal/catalog/catalogtest"
	"protoroute/internal/models"
)

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func datatypesDate(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestDeleteGuideCascades(t *testing.T) {
	s, db := catalogtest.NewStore(t)
	ctx := context.Background()

	author := catalogtest.Person(t, s, "Author")
	g := catalogtest.Guide(t, s, "https://example.org/guides/full")
	g.AuthorIDs = []uint{author.ID}
	require.NoError(t, s.RouteGuides.Update(ctx, g))

	seg := catalogtest.Segment(t, s, g.IDAsURL, "https://example.org/guides/full/1", 1)
	start := catalogtest.Point(t, s, &g.IDAsURL, nil, "start")
	summit := catalogtest.Point(t, s, nil, &seg.IDAsURL, "summit")

	require.NoError(t, s.GeoCoordinates.Create(ctx, &models.GeoCoordinates{RoutePointID: &start.ID, Latitude: 54.5, Longitude: -3.1}))
	require.NoError(t, s.AmenityFeatures.Create(ctx, &models.AmenityFeature{RoutePointID: start.ID, Name: "car park"}))
	require.NoError(t, s.MapReferences.Create(ctx, &models.MapReference{
		RoutePointID: summit.ID, MapSeries: "OL", MapNumber: "4", GridReference: "NY215072",
	}))
	require.NoError(t, s.Distances.Create(ctx, &models.Distance{RoutePointID: &summit.ID, Value: 978, Unit: "m"}))
	require.NoError(t, s.GeoPaths.Create(ctx, &models.GeoPath{
		RouteGuideID: &g.IDAsURL, MapType: models.RouteMap, URL: "https://example.org/full.gpx", EncodingFormat: "gpx",
	}))
	require.NoError(t, s.MapImages.Create(ctx, &models.MapImage{
		RouteGuideSegmentID: &seg.IDAsURL, MapType: models.ElevationMap, Image: "https://example.org/full-1.png", EncodingFormat: "image/png",
	}))
	require.NoError(t, s.AccessibilityDescriptions.Create(ctx, &models.AccessibilityDescription{
		RouteGuideID: &g.IDAsURL, Description: "rough ground",
	}))
	require.NoError(t, s.RouteGradients.Create(ctx, &models.RouteGradient{
		RouteGuideSegmentID:  &seg.IDAsURL,
		TotalElevationGainID: catalogtest.Distance(t, s, 0.9).ID,
		TotalElevationLossID: catalogtest.Distance(t, s, 0.9).ID,
		GradientTerm:         "steep",
		GradientDefURL:       "https://example.org/gradients",
		Description:          "one long pull",
	}))

	report, err := s.RouteGuides.Delete(ctx, g.IDAsURL)
	require.NoError(t, err)

	assert.Equal(t, int64(1), report["route_guides"])
	assert.Equal(t, int64(1), report["route_guide_segments"])
	assert.Equal(t, int64(2), report["route_points"])
	assert.Equal(t, int64(1), report["route_guide_authors"])
	assert.Equal(t, int64(1), report["distances"], "only the summit elevation hangs off a point")

	for _, model := range []any{
		&models.RouteGuide{}, &models.RouteGuideSegment{}, &models.RoutePoint{},
		&models.GeoCoordinates{}, &models.AmenityFeature{}, &models.MapReference{},
		&models.GeoPath{}, &models.MapImage{}, &models.AccessibilityDescription{},
		&models.RouteGradient{}, &models.RouteGuideAuthor{},
	} {
		assert.Zero(t, count(t, db, model), "%T left behind", model)
	}

	// Records the guide merely points at survive.
	_, err = s.People.Get(ctx, author.ID)
	assert.NoError(t, err)
	_, err = s.Distances.Get(ctx, *g.DistanceID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count(t, db, &models.Distance{}))
}

func TestDeletePersonRemovesJoinRowsOnly(t *testing.T) {
	s, db := catalogtest.NewStore(t)
	ctx := context.Background()

	author := catalogtest.Person(t, s, "Author")
	g := catalogtest.Guide(t, s, "https://example.org/guides/shared")
	g.AuthorIDs = []uint{author.ID}
	require.NoError(t, s.RouteGuides.Update(ctx, g))

	report, err := s.People.Delete(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report["route_guide_authors"])
	assert.Equal(t, int64(2), report.Total())

	got, err := s.RouteGuides.Get(ctx, g.IDAsURL)
	require.NoError(t, err)
	assert.Empty(t, got.AuthorIDs)
	assert.Zero(t, count(t, db, &models.RouteGuideAuthor{}))
}

func TestDeleteFollowsEveryReference(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	publisher := catalogtest.Person(t, s, "Publisher")
	prov := &models.Provenance{PublisherID: publisher.ID, URL: "https://example.org/source", Description: "based on"}
	prov.Version = datatypesDate(2022, 1, 1)
	require.NoError(t, s.Provenances.Create(ctx, prov))

	g := catalogtest.Guide(t, s, "https://example.org/guides/derived")
	g.IsBasedOnID = &prov.ID
	require.NoError(t, s.RouteGuides.Update(ctx, g))

	report, err := s.People.Delete(ctx, publisher.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report["provenances"])
	assert.Equal(t, int64(1), report["route_guides"])

	_, err = s.RouteGuides.Get(ctx, g.IDAsURL)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeleteDistanceTakesGuide(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()
	g := catalogtest.Guide(t, s, "https://example.org/guides/measured")

	report, err := s.Distances.Delete(ctx, *g.DistanceID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report["route_guides"])
}

func TestDeleteSegmentGroupEdges(t *testing.T) {
	s, db := catalogtest.NewStore(t)
	ctx := context.Background()

	a := &models.RouteSegmentGroup{IDAsURL: "https://example.org/groups/a", Name: "A", Description: "first"}
	require.NoError(t, s.SegmentGroups.Create(ctx, a))
	b := &models.RouteSegmentGroup{IDAsURL: "https://example.org/groups/b", Name: "B", Description: "second", AlternativeIDs: []uint{a.ID}}
	require.NoError(t, s.SegmentGroups.Create(ctx, b))

	report, err := s.SegmentGroups.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report["route_segment_group_alternatives"])
	assert.Zero(t, count(t, db, &models.RouteSegmentGroupAlternative{}))

	got, err := s.SegmentGroups.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AlternativeIDs)
}

func TestDeleteMissing(t *testing.T) {
	s, _ := catalogtest.NewStore(t)

	_, err := s.RouteGuides.Delete(context.Background(), "https://example.org/guides/none")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeleteReportTotal(t *testing.T) {
	report := catalog.DeleteReport{"a": 2, "b": 3}
	assert.Equal(t, int64(5), report.Total())
	assert.Zero(t, catalog.DeleteReport{}.Total())
}
