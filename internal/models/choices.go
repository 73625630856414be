package models

// MapType classifies a GeoPath or MapImage.
type MapType string

const (
	RouteMap     MapType = "RouteMap"
	ElevationMap MapType = "ElevationMap"
	CustomMap    MapType = "CustomMap"
)

// TransportMode is how a route point can be reached.
type TransportMode string

const (
	Bus     TransportMode = "Bus"
	Rail    TransportMode = "Rail"
	Road    TransportMode = "Road"
	Foot    TransportMode = "Foot"
	Bicycle TransportMode = "Bicycle"
)

// MapTypes lists every accepted map_type value.
func MapTypes() []MapType {
	return []MapType{RouteMap, ElevationMap, CustomMap}
}

// TransportModes lists every accepted transport_mode value.
func TransportModes() []TransportMode {
	return []TransportMode{Bus, Rail, Road, Foot, Bicycle}
}
