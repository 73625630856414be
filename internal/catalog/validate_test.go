package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"protoroute/internal/catalog"
	"protoroute/internal/catalog/catalogtest"
	"protoroute/internal/models"
)

func validationError(t *testing.T, err error) *catalog.ValidationError {
	t.Helper()
	var ve *catalog.ValidationError
	require.Error(t, err)
	require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
	return ve
}

func TestMapTypeChoices(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()
	g := catalogtest.Guide(t, s, "https://example.org/guides/ridge")

	path := &models.GeoPath{
		RouteGuideID:   &g.IDAsURL,
		MapType:        "TopoMap",
		URL:            "https://example.org/ridge.gpx",
		EncodingFormat: "application/gpx+xml",
	}
	ve := validationError(t, s.GeoPaths.Create(ctx, path))
	assert.True(t, ve.Has("map_type", catalog.KindChoice))

	for _, mt := range models.MapTypes() {
		path := &models.GeoPath{
			RouteGuideID:   &g.IDAsURL,
			MapType:        mt,
			URL:            "https://example.org/ridge.gpx",
			EncodingFormat: "application/gpx+xml",
		}
		assert.NoError(t, s.GeoPaths.Create(ctx, path), mt)
	}
}

func TestTransportModeChoices(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	note := &models.TransportNote{TransportMode: "Ferry", Description: "boat from the pier"}
	ve := validationError(t, s.TransportNotes.Create(ctx, note))
	assert.True(t, ve.Has("transport_mode", catalog.KindChoice))

	for _, mode := range models.TransportModes() {
		note := &models.TransportNote{TransportMode: mode, Description: "how to get there"}
		assert.NoError(t, s.TransportNotes.Create(ctx, note), mode)
	}
}

func TestMaxLength(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	ve := validationError(t, s.Categories.Create(ctx, &models.Category{Content: strings.Repeat("a", 31)}))
	assert.True(t, ve.Has("content", catalog.KindMaxLength))
	assert.Equal(t, "30", ve.Fields[0].Param)

	assert.NoError(t, s.Categories.Create(ctx, &models.Category{Content: strings.Repeat("a", 30)}))
}

func TestRequiredFields(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	ve := validationError(t, s.RouteGuides.Create(ctx, &models.RouteGuide{}))
	for _, field := range []string{"id_as_url", "name", "url", "distance_id"} {
		assert.True(t, ve.Has(field, catalog.KindRequired), field)
	}

	prov := &models.Provenance{URL: "https://example.org", Description: "d"}
	ve = validationError(t, s.Provenances.Create(ctx, prov))
	assert.True(t, ve.Has("publisher_id", catalog.KindRequired))
	assert.True(t, ve.Has("version", catalog.KindRequired))
}

func TestURLFields(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	tests := []struct {
		identifier string
		ok         bool
	}{
		{"https://example.org/activities/walking", true},
		{"http://example.org", true},
		{"ftp://files.example.org/walking", true},
		{"walking", false},
		{"mailto:someone@example.org", false},
		{"https://", false},
		{"https://example.org/a b", false},
		{"http://foo", false},
		{"http://exa_mple..org", false},
		{"http://example.org:99999", false},
		{"http://example.org:8080/walks", true},
		{"http://localhost:8000/walks", true},
		{"http://192.0.2.10/walks", true},
	}
	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			err := s.Activities.Create(ctx, &models.Activity{PrefLabel: "Walking", Identifier: tt.identifier})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, validationError(t, err).Has("identifier", catalog.KindURL))
		})
	}
}

func TestOptionalEmailAndWebsite(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	assert.NoError(t, s.People.Create(ctx, &models.PersonAndOrganization{Name: "Anon"}))

	ve := validationError(t, s.People.Create(ctx, &models.PersonAndOrganization{
		Name:    "Bad",
		Email:   "not-an-email",
		Website: "example.org",
	}))
	assert.True(t, ve.Has("email", catalog.KindEmail))
	assert.True(t, ve.Has("website", catalog.KindURL))
}

func TestDurationFormat(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	for _, d := range []string{"PT3H30M", "P1D", "PT45M", "P1DT2H"} {
		assert.NoError(t, s.IndicativeDurations.Create(ctx, &models.IndicativeDuration{Duration: d}), d)
	}
	for _, d := range []string{"3 hours", "P", "PT", "P1DT"} {
		err := s.IndicativeDurations.Create(ctx, &models.IndicativeDuration{Duration: d})
		assert.True(t, validationError(t, err).Has("duration", catalog.KindFormat), d)
	}
}

func TestCoordinateRange(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	ve := validationError(t, s.GeoCoordinates.Create(ctx, &models.GeoCoordinates{Latitude: 91, Longitude: -181}))
	assert.True(t, ve.Has("latitude", catalog.KindRange))
	assert.True(t, ve.Has("longitude", catalog.KindRange))

	assert.NoError(t, s.GeoCoordinates.Create(ctx, &models.GeoCoordinates{Latitude: 54.45, Longitude: -3.21}))
}

func TestDefaultsAppliedBeforeValidation(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	d := &models.Distance{Value: 12.5}
	require.NoError(t, s.Distances.Create(ctx, d))
	got, err := s.Distances.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDistanceUnit, got.Unit)

	g := catalogtest.Guide(t, s, "https://example.org/guides/fell")
	gradient := &models.RouteGradient{
		RouteGuideID:         &g.IDAsURL,
		TotalElevationGainID: catalogtest.Distance(t, s, 0.4).ID,
		TotalElevationLossID: catalogtest.Distance(t, s, 0.4).ID,
		GradientTerm:         "moderate",
		GradientDefURL:       "https://example.org/gradients",
		Description:          "steady climb",
	}
	require.NoError(t, s.RouteGradients.Create(ctx, gradient))
	assert.Equal(t, models.DefaultGradient, gradient.MaxGradient)
	assert.Equal(t, models.DefaultGradient, gradient.AvgGradient)
}

func TestGuideLoopsByDefault(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	g := catalogtest.Guide(t, s, "https://example.org/guides/lake")

	got, err := s.RouteGuides.Get(context.Background(), g.IDAsURL)
	require.NoError(t, err)
	assert.True(t, got.IsLoop)
}

func TestGuideLiteralIsNotLoop(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()
	d := catalogtest.Distance(t, s, 4)

	g := &models.RouteGuide{
		IDAsURL:    "https://example.org/guides/spur",
		Name:       "Spur",
		URL:        "https://example.org/guides/spur",
		DistanceID: &d.ID,
	}
	require.NoError(t, s.RouteGuides.Create(ctx, g))

	got, err := s.RouteGuides.Get(ctx, g.IDAsURL)
	require.NoError(t, err)
	assert.False(t, got.IsLoop)
}

func TestParentRule(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()
	g := catalogtest.Guide(t, s, "https://example.org/guides/coast")
	seg := catalogtest.Segment(t, s, g.IDAsURL, "https://example.org/guides/coast/1", 1)

	const parents = "route_guide_id|route_guide_segment_id"

	neither := &models.RoutePoint{Name: "Orphan", SameAs: "https://example.org/orphan"}
	ve := validationError(t, s.RoutePoints.Create(ctx, neither))
	assert.True(t, ve.Has(parents, catalog.KindParent))

	both := &models.RoutePoint{
		RouteGuideID:        &g.IDAsURL,
		RouteGuideSegmentID: &seg.IDAsURL,
		Name:                "Both",
		SameAs:              "https://example.org/both",
	}
	ve = validationError(t, s.RoutePoints.Create(ctx, both))
	assert.True(t, ve.Has(parents, catalog.KindParent))

	// The rule holds on update too.
	p := catalogtest.Point(t, s, &g.IDAsURL, nil, "Harbour")
	p.RouteGuideSegmentID = &seg.IDAsURL
	ve = validationError(t, s.RoutePoints.Update(ctx, p))
	assert.True(t, ve.Has(parents, catalog.KindParent))

	access := &models.AccessibilityDescription{RouteGuideSegmentID: &seg.IDAsURL, Description: "step-free"}
	assert.NoError(t, s.AccessibilityDescriptions.Create(ctx, access))
}

func TestDatesRoundTrip(t *testing.T) {
	s, _ := catalogtest.NewStore(t)
	ctx := context.Background()

	published := datatypes.Date(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC))
	g := models.NewRouteGuide("https://example.org/guides/dated", "Dated", "https://example.org/guides/dated")
	g.DistanceID = &catalogtest.Distance(t, s, 3).ID
	g.DatePublished = &published
	require.NoError(t, s.RouteGuides.Create(ctx, g))

	got, err := s.RouteGuides.Get(ctx, g.IDAsURL)
	require.NoError(t, err)
	require.NotNil(t, got.DatePublished)
	assert.Nil(t, got.DateModified)
	assert.Equal(t, "2023-04-01", time.Time(*got.DatePublished).Format("2006-01-02"))
}
