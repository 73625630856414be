// Package bundle imports a route guide described in a YAML file.
package bundle

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

// DateLayout is the format of every date in a bundle.
const DateLayout = "2006-01-02"

// Bundle is one guide plus the people and activities it refers to by key.
type Bundle struct {
	People     []Person   `yaml:"people"`
	Activities []Activity `yaml:"activities"`
	Guide      Guide      `yaml:"guide"`
}

type Person struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Website string `yaml:"website"`
}

type Activity struct {
	Key        string `yaml:"key"`
	PrefLabel  string `yaml:"pref_label"`
	Identifier string `yaml:"identifier"`
}

type Distance struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

type Difficulty struct {
	Term        string `yaml:"term"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type Provenance struct {
	Publisher   string `yaml:"publisher"`
	URL         string `yaml:"url"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

type Verification struct {
	VerifiedBy []string `yaml:"verified_by"`
	Date       string   `yaml:"date"`
}

type Coordinate struct {
	Latitude  float64 `yaml:"lat"`
	Longitude float64 `yaml:"lon"`
}

type Transport struct {
	Mode        string `yaml:"mode"`
	Description string `yaml:"description"`
}

type Point struct {
	Name                 string       `yaml:"name"`
	Headline             string       `yaml:"headline"`
	Description          string       `yaml:"description"`
	SameAs               string       `yaml:"same_as"`
	AccessPoint          bool         `yaml:"access_point"`
	PreferredAccessPoint bool         `yaml:"preferred_access_point"`
	Coordinates          []Coordinate `yaml:"coordinates"`
	Amenities            []string     `yaml:"amenities"`
	Transport            []Transport  `yaml:"transport"`
	Elevation            *Distance    `yaml:"elevation"`
}

type Article struct {
	Headline  string `yaml:"headline"`
	Body      string `yaml:"body"`
	Backstory string `yaml:"backstory"`
}

type Segment struct {
	ID            string      `yaml:"id"`
	Number        int         `yaml:"number"`
	Name          string      `yaml:"name"`
	URL           string      `yaml:"url"`
	Headline      string      `yaml:"headline"`
	Description   string      `yaml:"description"`
	DatePublished string      `yaml:"date_published"`
	DateModified  string      `yaml:"date_modified"`
	IsLoop        *bool       `yaml:"is_loop"`
	Distance      Distance    `yaml:"distance"`
	Difficulty    *Difficulty `yaml:"difficulty"`
	Activities    []string    `yaml:"activities"`
	Categories    []string    `yaml:"categories"`
	Articles      []Article   `yaml:"articles"`
	Points        []Point     `yaml:"points"`
}

type Guide struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	URL           string        `yaml:"url"`
	Headline      string        `yaml:"headline"`
	Description   string        `yaml:"description"`
	DatePublished string        `yaml:"date_published"`
	DateModified  string        `yaml:"date_modified"`
	IsLoop        *bool         `yaml:"is_loop"`
	Distance      Distance      `yaml:"distance"`
	Difficulty    *Difficulty   `yaml:"difficulty"`
	Provenance    *Provenance   `yaml:"provenance"`
	Verification  *Verification `yaml:"verification"`
	Authors       []string      `yaml:"authors"`
	Activities    []string      `yaml:"activities"`
	Points        []Point       `yaml:"points"`
	Segments      []Segment     `yaml:"segments"`
}

// Load decodes a bundle. Unknown keys are rejected.
func Load(r io.Reader) (*Bundle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return &b, nil
}

func parseDate(field, s string) (*datatypes.Date, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	d := datatypes.Date(t)
	return &d, nil
}
