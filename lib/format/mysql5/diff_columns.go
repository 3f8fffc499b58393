package mysql5

import (
	"github.com/dbsteward/mysqldiff/lib/format/mysql5/sql"
	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/util"
)

type columnPair struct {
	oldColumn *ir.Column
	newColumn *ir.Column
}

// diffColumns visits old columns in old table order, then columns only
// present in the new table in new table order. There is no rename detection,
// a renamed column is dropped and added.
func diffColumns(oldTable, newTable *ir.Table) []sql.TableAlterPart {
	union := util.NewOrderedMapOfSize[string, *columnPair](len(oldTable.Columns) + len(newTable.Columns))
	for _, oldColumn := range oldTable.Columns {
		union.Insert(oldColumn.Name, &columnPair{oldColumn: oldColumn})
	}
	for _, newColumn := range newTable.Columns {
		if !union.InsertIfAbsent(newColumn.Name, &columnPair{newColumn: newColumn}) {
			union.Get(newColumn.Name).newColumn = newColumn
		}
	}

	parts := []sql.TableAlterPart{}
	union.ForEach(func(_ int, name string, pair *columnPair) {
		switch {
		case pair.oldColumn == nil:
			parts = append(parts, &sql.TableAlterPartColumnAdd{
				Column:     name,
				Definition: pair.newColumn.Definition,
			})
		case pair.newColumn == nil:
			parts = append(parts, &sql.TableAlterPartColumnDrop{
				Column: name,
			})
		case !pair.oldColumn.Equals(pair.newColumn):
			parts = append(parts, &sql.TableAlterPartColumnModify{
				Column:     name,
				Definition: pair.newColumn.Definition,
			})
		}
	})
	return parts
}
