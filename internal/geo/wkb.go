package geo

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// ErrNoTrack is returned when a collection has no LineString to encode.
var ErrNoTrack = errors.New("geo: collection has no track")

// Track returns the LineString of a collection built by Exporter.Guide.
func Track(fc *gjson.FeatureCollection) (*geom.LineString, error) {
	for _, f := range fc.Features {
		if ls, ok := f.Geometry.(*geom.LineString); ok {
			return ls, nil
		}
	}
	return nil, ErrNoTrack
}

// ToWKB encodes a geometry as little-endian WKB, the form PostGIS stores.
func ToWKB(g geom.T) ([]byte, error) {
	return wkb.Marshal(g, binary.LittleEndian)
}

// DecodeTrack reads a track encoded by ToWKB.
func DecodeTrack(b []byte) (*geom.LineString, error) {
	g, err := wkb.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("decode track: got %T, want a line string", g)
	}
	return ls, nil
}

// MarshalGeometry encodes a single geometry as GeoJSON.
func MarshalGeometry(g geom.T) ([]byte, error) {
	return gjson.Marshal(g)
}
