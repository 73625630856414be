package catalog

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type foreignKey struct {
	field      *schema.Field
	column     string
	name       string
	references string
	parent     bool
}

// link is a many-to-many relation held in a join table.
type link struct {
	index        []int
	name         string
	junction     string
	ownerColumn  string
	targetColumn string
	target       string
}

type table struct {
	name        string
	modelType   reflect.Type
	primaryKey  *schema.Field // nil for join tables
	foreignKeys []foreignKey
	links       []link
}

func (t *table) parents() []foreignKey {
	var out []foreignKey
	for _, fk := range t.foreignKeys {
		if fk.parent {
			out = append(out, fk)
		}
	}
	return out
}

func (t *table) queryable(column string) bool {
	if t.primaryKey != nil && t.primaryKey.DBName == column {
		return true
	}
	for _, fk := range t.foreignKeys {
		if fk.column == column {
			return true
		}
	}
	return false
}

// registry is the reference graph of the catalog, read from model tags.
type registry struct {
	tables []*table
	byName map[string]*table
	byType map[reflect.Type]*table
}

func newRegistry(namer schema.Namer, entities ...any) (*registry, error) {
	reg := &registry{
		byName: make(map[string]*table, len(entities)),
		byType: make(map[reflect.Type]*table, len(entities)),
	}
	cache := &sync.Map{}

	for _, model := range entities {
		sch, err := schema.Parse(model, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("parse %T: %w", model, err)
		}
		t := &table{name: sch.Table, modelType: sch.ModelType}
		if len(sch.PrimaryFields) == 1 {
			t.primaryKey = sch.PrimaryFields[0]
		}

		for _, f := range sch.Fields {
			tag, ok := f.Tag.Lookup("ref")
			if !ok {
				continue
			}
			target, opt, _ := strings.Cut(tag, ",")
			t.foreignKeys = append(t.foreignKeys, foreignKey{
				field:      f,
				column:     f.DBName,
				name:       jsonName(f.StructField),
				references: target,
				parent:     opt == "parent",
			})
		}

		for i := 0; i < sch.ModelType.NumField(); i++ {
			sf := sch.ModelType.Field(i)
			tag, ok := sf.Tag.Lookup("m2m")
			if !ok {
				continue
			}
			parts := strings.Split(tag, ",")
			if len(parts) != 3 {
				return nil, fmt.Errorf("%s.%s: malformed m2m tag %q", sch.Table, sf.Name, tag)
			}
			t.links = append(t.links, link{
				index:        sf.Index,
				name:         jsonName(sf),
				junction:     parts[0],
				ownerColumn:  parts[1],
				targetColumn: parts[2],
			})
		}

		if _, dup := reg.byName[t.name]; dup {
			return nil, fmt.Errorf("table %s declared twice", t.name)
		}
		reg.tables = append(reg.tables, t)
		reg.byName[t.name] = t
		reg.byType[t.modelType] = t
	}

	for _, t := range reg.tables {
		for _, fk := range t.foreignKeys {
			ref, ok := reg.byName[fk.references]
			if !ok {
				return nil, fmt.Errorf("%s.%s references unknown table %s", t.name, fk.column, fk.references)
			}
			if ref.primaryKey == nil {
				return nil, fmt.Errorf("%s.%s references %s, which has no single primary key", t.name, fk.column, ref.name)
			}
		}
		for i := range t.links {
			if err := reg.resolveLink(t, &t.links[i]); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

func (reg *registry) resolveLink(owner *table, l *link) error {
	j, ok := reg.byName[l.junction]
	if !ok {
		return fmt.Errorf("%s.%s: unknown join table %s", owner.name, l.name, l.junction)
	}
	if owner.primaryKey == nil {
		return fmt.Errorf("%s.%s: owner has no single primary key", owner.name, l.name)
	}
	var ownerOK bool
	for _, fk := range j.foreignKeys {
		switch fk.column {
		case l.ownerColumn:
			ownerOK = fk.references == owner.name
		case l.targetColumn:
			l.target = fk.references
		}
	}
	if !ownerOK || l.target == "" {
		return fmt.Errorf("%s.%s: join table %s does not link %s to %s", owner.name, l.name, j.name, l.ownerColumn, l.targetColumn)
	}
	return nil
}

func (reg *registry) tableOf(typ reflect.Type) (*table, bool) {
	t, ok := reg.byType[typ]
	return t, ok
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}

// keyOf returns the primary key of the record held in rv.
func keyOf(ctx context.Context, t *table, rv reflect.Value) (any, bool) {
	v, zero := t.primaryKey.ValueOf(ctx, rv)
	return v, zero
}

// deref turns pointer field values into the value they point at.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func exists(db *gorm.DB, t *table, key any) (bool, error) {
	var n int64
	err := db.Table(t.name).
		Where(clause.Eq{Column: clause.Column{Name: t.primaryKey.DBName}, Value: key}).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

// pluck reads column from the rows of t matching cond. typ is the Go type of
// the column; the values come back boxed so keys of any table can share a set.
func pluck(db *gorm.DB, t *table, column string, typ reflect.Type, cond clause.Expression) ([]any, error) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	dest := reflect.New(reflect.SliceOf(typ))
	q := db.Table(t.name)
	if cond != nil {
		q = q.Where(cond)
	}
	if err := q.Pluck(column, dest.Interface()).Error; err != nil {
		return nil, translate(err)
	}
	vals := dest.Elem()
	out := make([]any, vals.Len())
	for i := range out {
		out[i] = vals.Index(i).Interface()
	}
	return out, nil
}
