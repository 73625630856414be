package catalog

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

// ViolationKind says which rule a stored row breaks.
type ViolationKind string

const (
	// ViolationParent: a row names neither or both of guide and segment.
	ViolationParent ViolationKind = "parent"
	// ViolationDangling: a reference column points at a missing row.
	ViolationDangling ViolationKind = "dangling_reference"
)

// Violation is one stored row breaking a catalog rule. Key is the row's
// primary key; for join tables, which have none, it is the dangling value.
type Violation struct {
	Table  string
	Column string
	Kind   ViolationKind
	Key    any
}

func (v Violation) String() string {
	return fmt.Sprintf("%s[%v].%s: %s", v.Table, v.Key, v.Column, v.Kind)
}

// Check scans the stored data for rows that break the parent rule or hold
// dangling references. Such rows appear when data is written around the
// repositories, or when writers race: references are checked by the
// repositories rather than by database foreign keys, so a delete committed
// between another writer's reference check and its insert leaves that row
// dangling.
func (s *Store) Check(ctx context.Context) ([]Violation, error) {
	db := s.db.WithContext(ctx)
	var out []Violation

	for _, t := range s.registry.tables {
		if parents := t.parents(); len(parents) > 0 {
			terms := make([]string, 0, len(parents))
			cols := make([]string, 0, len(parents))
			for _, fk := range parents {
				terms = append(terms, fmt.Sprintf("CASE WHEN %s IS NULL THEN 0 ELSE 1 END", fk.column))
				cols = append(cols, fk.column)
			}
			cond := clause.Expr{SQL: "(" + strings.Join(terms, " + ") + ") <> 1"}
			keys, err := pluck(db, t, t.primaryKey.DBName, t.primaryKey.FieldType, cond)
			if err != nil {
				return nil, err
			}
			for _, k := range keys {
				out = append(out, Violation{Table: t.name, Column: strings.Join(cols, "|"), Kind: ViolationParent, Key: k})
			}
		}

		for _, fk := range t.foreignKeys {
			ref := s.registry.byName[fk.references]
			cond := clause.Expr{
				SQL: "? IS NOT NULL AND ? NOT IN (?)",
				Vars: []any{
					clause.Column{Name: fk.column},
					clause.Column{Name: fk.column},
					db.Table(ref.name).Select(ref.primaryKey.DBName),
				},
			}
			column, typ := fk.column, fk.field.FieldType
			if t.primaryKey != nil {
				column, typ = t.primaryKey.DBName, t.primaryKey.FieldType
			}
			keys, err := pluck(db, t, column, typ, cond)
			if err != nil {
				return nil, err
			}
			for _, k := range keys {
				out = append(out, Violation{Table: t.name, Column: fk.column, Kind: ViolationDangling, Key: k})
			}
		}
	}

	if len(out) > 0 {
		s.log.WithField("violations", len(out)).Warn("catalog integrity check failed")
	}
	return out, nil
}
