package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"protoroute/internal/models"
)

// Repository gives create/read/update/delete access to one entity type T
// keyed by K.
type Repository[T any, K comparable] struct {
	store *Store
	table *table
}

func newRepository[T any, K comparable](s *Store) *Repository[T, K] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	t, ok := s.registry.tableOf(typ)
	if !ok || t.primaryKey == nil {
		panic(fmt.Sprintf("catalog: %s is not a keyed entity", typ))
	}
	return &Repository[T, K]{store: s, table: t}
}

// Table is the name of the table backing the repository.
func (r *Repository[T, K]) Table() string { return r.table.name }

// Create validates rec and inserts it together with its join rows. A
// generated key is written back into rec.
func (r *Repository[T, K]) Create(ctx context.Context, rec *T) error {
	if err := r.prepare(ctx, rec); err != nil {
		return err
	}

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkReferences(ctx, tx, rec); err != nil {
			return err
		}
		if key, zero := keyOf(ctx, r.table, reflect.ValueOf(rec).Elem()); !zero {
			found, err := exists(tx, r.table, key)
			if err != nil {
				return err
			}
			if found {
				return fmt.Errorf("%w: %s %v", ErrDuplicateKey, r.table.name, key)
			}
		}
		if err := tx.Create(rec).Error; err != nil {
			return translate(err)
		}
		return r.writeLinks(ctx, tx, rec)
	})
	if err != nil {
		return err
	}

	r.logger(ctx, rec).Debug("record created")
	return nil
}

// Get returns the record with key id, with its many-to-many keys filled in.
func (r *Repository[T, K]) Get(ctx context.Context, id K) (*T, error) {
	db := r.store.db.WithContext(ctx)
	rec := new(T)
	err := db.Where(r.keyCond(id)).First(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s %v", ErrNotFound, r.table.name, id)
		}
		return nil, translate(err)
	}
	if err := r.readLinks(ctx, db, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update replaces the stored record with rec after validating it exactly as
// Create does. Join rows are replaced by the keys held in rec.
func (r *Repository[T, K]) Update(ctx context.Context, rec *T) error {
	if err := r.prepare(ctx, rec); err != nil {
		return err
	}
	key, zero := keyOf(ctx, r.table, reflect.ValueOf(rec).Elem())
	if zero {
		return fmt.Errorf("%w: %s without key", ErrNotFound, r.table.name)
	}

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, r.table, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s %v", ErrNotFound, r.table.name, key)
		}
		if err := r.checkReferences(ctx, tx, rec); err != nil {
			return err
		}
		if err := tx.Omit("CreatedAt").Save(rec).Error; err != nil {
			return translate(err)
		}
		return r.writeLinks(ctx, tx, rec)
	})
	if err != nil {
		return err
	}

	r.logger(ctx, rec).Debug("record updated")
	return nil
}

// Delete removes the record with key id and everything that depends on it.
func (r *Repository[T, K]) Delete(ctx context.Context, id K) (DeleteReport, error) {
	report := DeleteReport{}
	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, r.table, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s %v", ErrNotFound, r.table.name, id)
		}
		return r.store.registry.cascade(tx, r.table, []any{id}, report)
	})
	if err != nil {
		return nil, err
	}

	r.store.log.WithFields(logrus.Fields{
		"table": r.table.name,
		"key":   id,
		"rows":  report.Total(),
	}).Info("record deleted")
	return report, nil
}

// List returns every record ordered by primary key.
func (r *Repository[T, K]) List(ctx context.Context) ([]T, error) {
	return r.find(ctx, nil)
}

// FindBy returns the records whose column equals value. Only the primary key
// and reference columns can be queried.
func (r *Repository[T, K]) FindBy(ctx context.Context, column string, value any) ([]T, error) {
	if !r.table.queryable(column) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, r.table.name, column)
	}
	return r.find(ctx, clause.Eq{Column: clause.Column{Name: column}, Value: value})
}

func (r *Repository[T, K]) find(ctx context.Context, cond clause.Expression) ([]T, error) {
	db := r.store.db.WithContext(ctx)
	q := db.Order(clause.OrderByColumn{Column: clause.Column{Name: r.table.primaryKey.DBName}})
	if cond != nil {
		q = q.Where(cond)
	}
	var recs []T
	if err := q.Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	for i := range recs {
		if err := r.readLinks(ctx, db, &recs[i]); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (r *Repository[T, K]) keyCond(id K) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: r.table.primaryKey.DBName}, Value: id}
}

// prepare applies defaults and runs every check that needs no database.
func (r *Repository[T, K]) prepare(ctx context.Context, rec *T) error {
	if d, ok := any(rec).(models.Defaulter); ok {
		d.ApplyDefaults()
	}

	ve := &ValidationError{Table: r.table.name}
	if err := r.store.validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			ve.add(fe.Field(), kindOf(fe), fe.Param())
		}
	}

	rv := reflect.ValueOf(rec).Elem()
	if parents := r.table.parents(); len(parents) > 0 {
		names := make([]string, 0, len(parents))
		set := 0
		for _, fk := range parents {
			names = append(names, fk.name)
			if _, zero := fk.field.ValueOf(ctx, rv); !zero {
				set++
			}
		}
		if set != 1 {
			ve.add(strings.Join(names, "|"), KindParent, strconv.Itoa(set))
		}
	}

	// A group cannot be its own alternative.
	if key, zero := keyOf(ctx, r.table, rv); !zero {
		for _, l := range r.table.links {
			if l.target != r.table.name {
				continue
			}
			targets := rv.FieldByIndex(l.index)
			for i := 0; i < targets.Len(); i++ {
				if targets.Index(i).Interface() == key {
					ve.add(l.name, KindInvalid, "self")
					break
				}
			}
		}
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

func (r *Repository[T, K]) checkReferences(ctx context.Context, tx *gorm.DB, rec *T) error {
	rv := reflect.ValueOf(rec).Elem()
	for _, fk := range r.table.foreignKeys {
		v, zero := fk.field.ValueOf(ctx, rv)
		if zero {
			continue
		}
		key := deref(v)
		found, err := exists(tx, r.store.registry.byName[fk.references], key)
		if err != nil {
			return err
		}
		if !found {
			return &ReferenceError{Table: r.table.name, Field: fk.name, References: fk.references, Key: key}
		}
	}
	for _, l := range r.table.links {
		targets := rv.FieldByIndex(l.index)
		for i := 0; i < targets.Len(); i++ {
			key := targets.Index(i).Interface()
			found, err := exists(tx, r.store.registry.byName[l.target], key)
			if err != nil {
				return err
			}
			if !found {
				return &ReferenceError{Table: r.table.name, Field: l.name, References: l.target, Key: key}
			}
		}
	}
	return nil
}

// writeLinks replaces the join rows of rec with the keys it holds.
func (r *Repository[T, K]) writeLinks(ctx context.Context, tx *gorm.DB, rec *T) error {
	if len(r.table.links) == 0 {
		return nil
	}
	rv := reflect.ValueOf(rec).Elem()
	key, _ := keyOf(ctx, r.table, rv)

	for _, l := range r.table.links {
		err := tx.Exec("DELETE FROM ? WHERE ?",
			clause.Table{Name: l.junction},
			clause.Eq{Column: clause.Column{Name: l.ownerColumn}, Value: key},
		).Error
		if err != nil {
			return translate(err)
		}

		targets := rv.FieldByIndex(l.index)
		seen := make(map[any]bool, targets.Len())
		for i := 0; i < targets.Len(); i++ {
			target := targets.Index(i).Interface()
			if seen[target] {
				continue
			}
			seen[target] = true
			err := tx.Exec("INSERT INTO ? (?, ?) VALUES (?, ?)",
				clause.Table{Name: l.junction},
				clause.Column{Name: l.ownerColumn},
				clause.Column{Name: l.targetColumn},
				key, target,
			).Error
			if err != nil {
				return translate(err)
			}
		}
	}
	return nil
}

func (r *Repository[T, K]) readLinks(ctx context.Context, db *gorm.DB, rec *T) error {
	if len(r.table.links) == 0 {
		return nil
	}
	rv := reflect.ValueOf(rec).Elem()
	key, _ := keyOf(ctx, r.table, rv)

	for _, l := range r.table.links {
		field := rv.FieldByIndex(l.index)
		dest := reflect.New(field.Type())
		err := db.Table(l.junction).
			Where(clause.Eq{Column: clause.Column{Name: l.ownerColumn}, Value: key}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: l.targetColumn}}).
			Pluck(l.targetColumn, dest.Interface()).Error
		if err != nil {
			return translate(err)
		}
		field.Set(dest.Elem())
	}
	return nil
}

func (r *Repository[T, K]) logger(ctx context.Context, rec *T) logrus.FieldLogger {
	key, _ := keyOf(ctx, r.table, reflect.ValueOf(rec).Elem())
	return r.store.log.WithFields(logrus.Fields{"table": r.table.name, "key": key})
}
