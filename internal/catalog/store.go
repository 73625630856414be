// Package catalog is the access layer of the route catalog: one repository
// per entity over an injected gorm database, with validation, reference
// checks and cascading deletes driven by the model declarations.
package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"protoroute/internal/models"
)

// Store holds the repositories of every catalog entity.
type Store struct {
	db       *gorm.DB
	log      logrus.FieldLogger
	registry *registry
	validate *validator.Validate

	People                    *Repository[models.PersonAndOrganization, uint]
	Provenances               *Repository[models.Provenance, uint]
	VerificationRecords       *Repository[models.VerificationRecord, uint]
	RouteDifficulties         *Repository[models.RouteDifficulty, uint]
	Activities                *Repository[models.Activity, uint]
	Categories                *Repository[models.Category, uint]
	Articles                  *Repository[models.Article, uint]
	RouteDesignations         *Repository[models.RouteDesignation, uint]
	IndicativeDurations       *Repository[models.IndicativeDuration, uint]
	Distances                 *Repository[models.Distance, uint]
	RouteGuides               *Repository[models.RouteGuide, string]
	Segments                  *Repository[models.RouteGuideSegment, string]
	RoutePoints               *Repository[models.RoutePoint, uint]
	MapReferences             *Repository[models.MapReference, uint]
	AmenityFeatures           *Repository[models.AmenityFeature, uint]
	GeoCoordinates            *Repository[models.GeoCoordinates, uint]
	TransportNotes            *Repository[models.TransportNote, uint]
	GeoPaths                  *Repository[models.GeoPath, uint]
	MapImages                 *Repository[models.MapImage, uint]
	AccessibilityDescriptions *Repository[models.AccessibilityDescription, uint]
	RouteGradients            *Repository[models.RouteGradient, uint]
	RouteLegalAdvisories      *Repository[models.RouteLegalAdvisory, uint]
	SegmentGroups             *Repository[models.RouteSegmentGroup, uint]
	UserContent               *Repository[models.UserGeneratedContent, uint]
}

// New builds a store over db. A nil log uses the standard logrus logger.
func New(db *gorm.DB, log logrus.FieldLogger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	reg, err := newRegistry(db.NamingStrategy, models.All()...)
	if err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	s := &Store{db: db, log: log, registry: reg, validate: newValidator()}
	s.bind()
	return s, nil
}

func (s *Store) bind() {
	s.People = newRepository[models.PersonAndOrganization, uint](s)
	s.Provenances = newRepository[models.Provenance, uint](s)
	s.VerificationRecords = newRepository[models.VerificationRecord, uint](s)
	s.RouteDifficulties = newRepository[models.RouteDifficulty, uint](s)
	s.Activities = newRepository[models.Activity, uint](s)
	s.Categories = newRepository[models.Category, uint](s)
	s.Articles = newRepository[models.Article, uint](s)
	s.RouteDesignations = newRepository[models.RouteDesignation, uint](s)
	s.IndicativeDurations = newRepository[models.IndicativeDuration, uint](s)
	s.Distances = newRepository[models.Distance, uint](s)
	s.RouteGuides = newRepository[models.RouteGuide, string](s)
	s.Segments = newRepository[models.RouteGuideSegment, string](s)
	s.RoutePoints = newRepository[models.RoutePoint, uint](s)
	s.MapReferences = newRepository[models.MapReference, uint](s)
	s.AmenityFeatures = newRepository[models.AmenityFeature, uint](s)
	s.GeoCoordinates = newRepository[models.GeoCoordinates, uint](s)
	s.TransportNotes = newRepository[models.TransportNote, uint](s)
	s.GeoPaths = newRepository[models.GeoPath, uint](s)
	s.MapImages = newRepository[models.MapImage, uint](s)
	s.AccessibilityDescriptions = newRepository[models.AccessibilityDescription, uint](s)
	s.RouteGradients = newRepository[models.RouteGradient, uint](s)
	s.RouteLegalAdvisories = newRepository[models.RouteLegalAdvisory, uint](s)
	s.SegmentGroups = newRepository[models.RouteSegmentGroup, uint](s)
	s.UserContent = newRepository[models.UserGeneratedContent, uint](s)
}

// Migrate creates or updates one table per entity and join table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	s.log.WithField("tables", len(s.registry.tables)).Info("catalog schema migrated")
	return nil
}

// Transaction runs fn with a store bound to a single transaction. Writes made
// through the store's repositories commit or roll back together.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := &Store{db: tx, log: s.log, registry: s.registry, validate: s.validate}
		scoped.bind()
		return fn(scoped)
	})
}

// Tables lists the catalog tables in declaration order.
func (s *Store) Tables() []string {
	names := make([]string, 0, len(s.registry.tables))
	for _, t := range s.registry.tables {
		names = append(names, t.name)
	}
	return names
}
