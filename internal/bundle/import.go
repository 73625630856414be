package bundle

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"protoroute/internal/catalog"
	"protoroute/internal/models"
)

// Result summarises an import.
type Result struct {
	GuideID  string
	Segments int
	Points   int
}

// Import writes b into the catalog in one transaction; on any error nothing
// is kept.
func Import(ctx context.Context, s *catalog.Store, b *Bundle) (*Result, error) {
	res := &Result{GuideID: b.Guide.ID}
	err := s.Transaction(ctx, func(tx *catalog.Store) error {
		imp := &importer{
			store:      tx,
			people:     map[string]uint{},
			activities: map[string]uint{},
			categories: map[string]uint{},
			res:        res,
		}
		return imp.run(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"guide":    res.GuideID,
		"segments": res.Segments,
		"points":   res.Points,
	}).Info("bundle imported")
	return res, nil
}

type importer struct {
	store      *catalog.Store
	people     map[string]uint
	activities map[string]uint
	categories map[string]uint
	res        *Result
}

func (imp *importer) run(ctx context.Context, b *Bundle) error {
	for _, p := range b.People {
		rec := &models.PersonAndOrganization{Name: p.Name, Email: p.Email, Website: p.Website}
		if err := imp.store.People.Create(ctx, rec); err != nil {
			return fmt.Errorf("person %q: %w", p.Key, err)
		}
		imp.people[p.Key] = rec.ID
	}
	for _, a := range b.Activities {
		rec := &models.Activity{PrefLabel: a.PrefLabel, Identifier: a.Identifier}
		if err := imp.store.Activities.Create(ctx, rec); err != nil {
			return fmt.Errorf("activity %q: %w", a.Key, err)
		}
		imp.activities[a.Key] = rec.ID
	}
	return imp.guide(ctx, &b.Guide)
}

func (imp *importer) guide(ctx context.Context, g *Guide) error {
	guide := models.NewRouteGuide(g.ID, g.Name, g.URL)
	guide.Headline = g.Headline
	guide.Description = g.Description
	if g.IsLoop != nil {
		guide.IsLoop = *g.IsLoop
	}
	var err error
	if guide.DatePublished, err = parseDate("date_published", g.DatePublished); err != nil {
		return err
	}
	if guide.DateModified, err = parseDate("date_modified", g.DateModified); err != nil {
		return err
	}
	if guide.DistanceID, err = imp.distance(ctx, g.Distance, nil); err != nil {
		return err
	}
	if guide.RouteDifficultyID, err = imp.difficulty(ctx, g.Difficulty); err != nil {
		return err
	}
	if guide.VerificationRecordID, err = imp.verification(ctx, g.Verification); err != nil {
		return err
	}
	if g.Provenance != nil {
		publisher, err := imp.person(g.Provenance.Publisher)
		if err != nil {
			return err
		}
		version, err := parseDate("provenance.version", g.Provenance.Version)
		if err != nil {
			return err
		}
		prov := &models.Provenance{PublisherID: publisher, URL: g.Provenance.URL, Description: g.Provenance.Description}
		if version != nil {
			prov.Version = *version
		}
		if err := imp.store.Provenances.Create(ctx, prov); err != nil {
			return fmt.Errorf("provenance: %w", err)
		}
		guide.IsBasedOnID = &prov.ID
	}
	for _, key := range g.Authors {
		id, err := imp.person(key)
		if err != nil {
			return err
		}
		guide.AuthorIDs = append(guide.AuthorIDs, id)
	}
	if guide.ActivityIDs, err = imp.activityIDs(g.Activities); err != nil {
		return err
	}
	if err := imp.store.RouteGuides.Create(ctx, guide); err != nil {
		return fmt.Errorf("guide %q: %w", g.ID, err)
	}

	for i := range g.Points {
		if err := imp.point(ctx, &g.Points[i], &guide.IDAsURL, nil); err != nil {
			return err
		}
	}
	for i := range g.Segments {
		if err := imp.segment(ctx, guide.IDAsURL, &g.Segments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) segment(ctx context.Context, guideID string, sg *Segment) error {
	seg := models.NewRouteGuideSegment(guideID, sg.ID, sg.Name, sg.URL, sg.Number)
	seg.Headline = sg.Headline
	seg.Description = sg.Description
	if sg.IsLoop != nil {
		seg.IsLoop = *sg.IsLoop
	}
	var err error
	if seg.DatePublished, err = parseDate("date_published", sg.DatePublished); err != nil {
		return err
	}
	if seg.DateModified, err = parseDate("date_modified", sg.DateModified); err != nil {
		return err
	}
	if seg.DistanceID, err = imp.distance(ctx, sg.Distance, nil); err != nil {
		return err
	}
	if seg.RouteDifficultyID, err = imp.difficulty(ctx, sg.Difficulty); err != nil {
		return err
	}
	if seg.ActivityIDs, err = imp.activityIDs(sg.Activities); err != nil {
		return err
	}
	for _, content := range sg.Categories {
		id, ok := imp.categories[content]
		if !ok {
			cat := &models.Category{Content: content}
			if err := imp.store.Categories.Create(ctx, cat); err != nil {
				return fmt.Errorf("category %q: %w", content, err)
			}
			id = cat.ID
			imp.categories[content] = id
		}
		seg.CategoryIDs = append(seg.CategoryIDs, id)
	}
	for _, a := range sg.Articles {
		art := &models.Article{Headline: a.Headline, Body: a.Body, Backstory: a.Backstory}
		if err := imp.store.Articles.Create(ctx, art); err != nil {
			return fmt.Errorf("article %q: %w", a.Headline, err)
		}
		seg.AdditionalInfoIDs = append(seg.AdditionalInfoIDs, art.ID)
	}
	if err := imp.store.Segments.Create(ctx, seg); err != nil {
		return fmt.Errorf("segment %q: %w", sg.ID, err)
	}
	imp.res.Segments++

	for i := range sg.Points {
		if err := imp.point(ctx, &sg.Points[i], nil, &seg.IDAsURL); err != nil {
			return err
		}
	}
	return nil
}

func (imp *importer) point(ctx context.Context, p *Point, guideID, segmentID *string) error {
	rp := &models.RoutePoint{
		RouteGuideID:           guideID,
		RouteGuideSegmentID:    segmentID,
		Name:                   p.Name,
		Headline:               p.Headline,
		Description:            p.Description,
		SameAs:                 p.SameAs,
		IsAccessPoint:          p.AccessPoint,
		IsPreferredAccessPoint: p.PreferredAccessPoint,
	}
	if err := imp.store.RoutePoints.Create(ctx, rp); err != nil {
		return fmt.Errorf("point %q: %w", p.Name, err)
	}
	imp.res.Points++

	for _, c := range p.Coordinates {
		gc := &models.GeoCoordinates{RoutePointID: &rp.ID, Latitude: c.Latitude, Longitude: c.Longitude}
		if err := imp.store.GeoCoordinates.Create(ctx, gc); err != nil {
			return fmt.Errorf("point %q coordinates: %w", p.Name, err)
		}
	}
	for _, name := range p.Amenities {
		if err := imp.store.AmenityFeatures.Create(ctx, &models.AmenityFeature{RoutePointID: rp.ID, Name: name}); err != nil {
			return fmt.Errorf("point %q amenity: %w", p.Name, err)
		}
	}
	for _, t := range p.Transport {
		note := &models.TransportNote{RoutePointID: &rp.ID, TransportMode: models.TransportMode(t.Mode), Description: t.Description}
		if err := imp.store.TransportNotes.Create(ctx, note); err != nil {
			return fmt.Errorf("point %q transport: %w", p.Name, err)
		}
	}
	if p.Elevation != nil {
		if _, err := imp.distance(ctx, *p.Elevation, &rp.ID); err != nil {
			return fmt.Errorf("point %q elevation: %w", p.Name, err)
		}
	}
	return nil
}

func (imp *importer) distance(ctx context.Context, d Distance, point *uint) (*uint, error) {
	rec := &models.Distance{RoutePointID: point, Value: d.Value, Unit: d.Unit}
	if err := imp.store.Distances.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	return &rec.ID, nil
}

func (imp *importer) difficulty(ctx context.Context, d *Difficulty) (*uint, error) {
	if d == nil {
		return nil, nil
	}
	rec := &models.RouteDifficulty{DifficultyTerm: d.Term, Description: d.Description, DifficultyDefURL: d.URL}
	if err := imp.store.RouteDifficulties.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("difficulty: %w", err)
	}
	return &rec.ID, nil
}

func (imp *importer) verification(ctx context.Context, v *Verification) (*uint, error) {
	if v == nil {
		return nil, nil
	}
	date, err := parseDate("verification.date", v.Date)
	if err != nil {
		return nil, err
	}
	rec := &models.VerificationRecord{}
	if date != nil {
		rec.DateVerified = *date
	}
	for _, key := range v.VerifiedBy {
		id, err := imp.person(key)
		if err != nil {
			return nil, err
		}
		rec.VerifiedByIDs = append(rec.VerifiedByIDs, id)
	}
	if err := imp.store.VerificationRecords.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("verification: %w", err)
	}
	return &rec.ID, nil
}

func (imp *importer) person(key string) (uint, error) {
	id, ok := imp.people[key]
	if !ok {
		return 0, fmt.Errorf("unknown person %q", key)
	}
	return id, nil
}

func (imp *importer) activityIDs(keys []string) ([]uint, error) {
	var ids []uint
	for _, key := range keys {
		id, ok := imp.activities[key]
		if !ok {
			return nil, fmt.Errorf("unknown activity %q", key)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
