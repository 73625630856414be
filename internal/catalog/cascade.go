package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeleteReport counts the rows removed per table by a cascading delete.
type DeleteReport map[string]int64

// Total is the number of rows removed across all tables.
func (r DeleteReport) Total() int64 {
	var n int64
	for _, c := range r {
		n += c
	}
	return n
}

type pendingDelete struct {
	table *table
	keys  []any
}

// cascade deletes the rows of root with the given keys and, transitively,
// every row referencing a deleted row. Join rows are removed as soon as one
// of their ends is found; entity rows are collected first and removed
// dependents-first.
func (reg *registry) cascade(tx *gorm.DB, root *table, keys []any, report DeleteReport) error {
	seen := map[string]map[any]bool{root.name: {}}
	for _, k := range keys {
		seen[root.name][k] = true
	}
	order := []pendingDelete{{table: root, keys: keys}}

	for i := 0; i < len(order); i++ {
		cur := order[i]
		for _, t := range reg.tables {
			for _, fk := range t.foreignKeys {
				if fk.references != cur.table.name {
					continue
				}
				cond := clause.IN{Column: clause.Column{Name: fk.column}, Values: cur.keys}

				if t.primaryKey == nil {
					res := tx.Exec("DELETE FROM ? WHERE ?", clause.Table{Name: t.name}, cond)
					if res.Error != nil {
						return translate(res.Error)
					}
					report[t.name] += res.RowsAffected
					continue
				}

				found, err := pluck(tx, t, t.primaryKey.DBName, t.primaryKey.FieldType, cond)
				if err != nil {
					return err
				}
				if seen[t.name] == nil {
					seen[t.name] = map[any]bool{}
				}
				var fresh []any
				for _, k := range found {
					if !seen[t.name][k] {
						seen[t.name][k] = true
						fresh = append(fresh, k)
					}
				}
				if len(fresh) > 0 {
					order = append(order, pendingDelete{table: t, keys: fresh})
				}
			}
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		p := order[i]
		res := tx.Exec("DELETE FROM ? WHERE ?",
			clause.Table{Name: p.table.name},
			clause.IN{Column: clause.Column{Name: p.table.primaryKey.DBName}, Values: p.keys},
		)
		if res.Error != nil {
			return translate(res.Error)
		}
		report[p.table.name] += res.RowsAffected
	}
	return nil
}
