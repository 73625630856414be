// Package catalogtest builds throwaway catalog stores for tests.
package catalogtest

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"protoroute/internal/catalog"
	"protoroute/internal/config"
	"protoroute/internal/models"
)

// NewStore opens a migrated store over a fresh SQLite file. The raw gorm
// handle is returned so tests can write around the repositories.
func NewStore(t testing.TB) (*catalog.Store, *gorm.DB) {
	t.Helper()

	db, err := config.Open(config.Database{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	}, gormlogger.Discard)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := catalog.New(db, log)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	return s, db
}

// Distance stores a distance of value km.
func Distance(t testing.TB, s *catalog.Store, value float64) *models.Distance {
	t.Helper()
	d := &models.Distance{Value: value}
	require.NoError(t, s.Distances.Create(context.Background(), d))
	return d
}

// Guide stores a minimal valid guide keyed by id.
func Guide(t testing.TB, s *catalog.Store, id string) *models.RouteGuide {
	t.Helper()
	g := models.NewRouteGuide(id, "Guide "+id, id)
	g.DistanceID = &Distance(t, s, 10).ID
	require.NoError(t, s.RouteGuides.Create(context.Background(), g))
	return g
}

// Segment stores segment n of guide.
func Segment(t testing.TB, s *catalog.Store, guide, id string, n int) *models.RouteGuideSegment {
	t.Helper()
	seg := models.NewRouteGuideSegment(guide, id, "Segment "+id, id, n)
	seg.DistanceID = &Distance(t, s, 2.5).ID
	require.NoError(t, s.Segments.Create(context.Background(), seg))
	return seg
}

// Point stores a waypoint on a guide (segment nil) or on a segment (guide nil).
func Point(t testing.TB, s *catalog.Store, guide, segment *string, name string) *models.RoutePoint {
	t.Helper()
	p := &models.RoutePoint{
		RouteGuideID:        guide,
		RouteGuideSegmentID: segment,
		Name:                name,
		SameAs:              "https://example.org/places/" + name,
	}
	require.NoError(t, s.RoutePoints.Create(context.Background(), p))
	return p
}

// Person stores a person with the given name.
func Person(t testing.TB, s *catalog.Store, name string) *models.PersonAndOrganization {
	t.Helper()
	p := &models.PersonAndOrganization{Name: name}
	require.NoError(t, s.People.Create(context.Background(), p))
	return p
}
