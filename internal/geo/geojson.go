// Package geo renders a guide's waypoints as GeoJSON.
package geo

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"protoroute/internal/catalog"
	"protoroute/internal/models"
)

// GuideReader loads a guide by its URL key.
type GuideReader interface {
	Get(ctx context.Context, id string) (*models.RouteGuide, error)
}

// Finder lists records by a reference column.
type Finder[T any] interface {
	FindBy(ctx context.Context, column string, value any) ([]T, error)
}

// Exporter builds GeoJSON feature collections for guides.
type Exporter struct {
	Guides      GuideReader
	Segments    Finder[models.RouteGuideSegment]
	Points      Finder[models.RoutePoint]
	Coordinates Finder[models.GeoCoordinates]
}

// NewExporter reads from the repositories of s.
func NewExporter(s *catalog.Store) *Exporter {
	return &Exporter{
		Guides:      s.RouteGuides,
		Segments:    s.Segments,
		Points:      s.RoutePoints,
		Coordinates: s.GeoCoordinates,
	}
}

// Guide returns one Point feature per located waypoint of the guide, the
// guide's own points first and then each segment's in segment order,
// followed by a LineString through them. Loops are closed back to the first
// point. Waypoints without coordinates are skipped.
func (e *Exporter) Guide(ctx context.Context, id string) (*gjson.FeatureCollection, error) {
	guide, err := e.Guides.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	points, err := e.Points.FindBy(ctx, "route_guide_id", id)
	if err != nil {
		return nil, err
	}
	segments, err := e.Segments.FindBy(ctx, "top_level_route_guide_id", id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(segments, func(i, j int) bool { return segments[i].Segment < segments[j].Segment })
	for _, seg := range segments {
		segPoints, err := e.Points.FindBy(ctx, "route_guide_segment_id", seg.IDAsURL)
		if err != nil {
			return nil, err
		}
		points = append(points, segPoints...)
	}

	fc := &gjson.FeatureCollection{}
	var path []float64
	for _, p := range points {
		coords, err := e.Coordinates.FindBy(ctx, "route_point_id", p.ID)
		if err != nil {
			return nil, err
		}
		if len(coords) == 0 {
			continue
		}
		c := coords[0]
		props := map[string]interface{}{
			"name":                      p.Name,
			"same_as":                   p.SameAs,
			"is_access_point":           p.IsAccessPoint,
			"is_preferred_access_point": p.IsPreferredAccessPoint,
		}
		if p.Headline != "" {
			props["headline"] = p.Headline
		}
		if p.RouteGuideSegmentID != nil {
			props["segment"] = *p.RouteGuideSegmentID
		}
		fc.Features = append(fc.Features, &gjson.Feature{
			ID:         strconv.FormatUint(uint64(p.ID), 10),
			Geometry:   geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude}),
			Properties: props,
		})
		path = append(path, c.Longitude, c.Latitude)
	}

	if len(path) >= 4 {
		if guide.IsLoop && len(path) >= 6 && (path[0] != path[len(path)-2] || path[1] != path[len(path)-1]) {
			path = append(path, path[0], path[1])
		}
		fc.Features = append(fc.Features, &gjson.Feature{
			ID:       guide.IDAsURL,
			Geometry: geom.NewLineStringFlat(geom.XY, path),
			Properties: map[string]interface{}{
				"name":    guide.Name,
				"url":     guide.URL,
				"is_loop": guide.IsLoop,
			},
		})
	}
	return fc, nil
}

// Marshal encodes a feature collection as GeoJSON.
func Marshal(fc *gjson.FeatureCollection) ([]byte, error) {
	return json.Marshal(fc)
}
