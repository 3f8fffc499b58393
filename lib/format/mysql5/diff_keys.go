package mysql5

import (
	"strings"

	"github.com/dbsteward/mysqldiff/lib/format/mysql5/sql"
	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/util"
)

var indexNameStripper = strings.NewReplacer("`", "", "(", "", ")", "")

// SynthesizeIndexName derives an index name from a key's column list:
// "`a`,`b`" becomes "a_b". The column list is not validated.
func SynthesizeIndexName(columns string) string {
	parts := util.SplitTrimTrailing(columns, ",")
	for i, part := range parts {
		parts[i] = indexNameStripper.Replace(part)
	}
	return strings.Join(parts, "_")
}

func keyColumns(key *ir.Key) string {
	return key.Columns
}

// diffKeys compares keys of one kind by their column lists. Keys are added
// under a synthesized name and dropped under their declared name; a key that
// was only renamed produces nothing.
func diffKeys(oldTable, newTable *ir.Table, kind ir.KeyKind) []sql.TableAlterPart {
	oldKeys := oldTable.KeysOfKind(kind)
	newKeys := newTable.KeysOfKind(kind)
	oldSet := util.NewSetFrom[*ir.Key, string](keyColumns, oldKeys)
	newSet := util.NewSetFrom[*ir.Key, string](keyColumns, newKeys)

	parts := []sql.TableAlterPart{}
	for _, newKey := range newKeys {
		if oldSet.Has(newKey) {
			continue
		}
		parts = append(parts, &sql.TableAlterPartIndexAdd{
			Index:   SynthesizeIndexName(newKey.Columns),
			Unique:  kind == ir.KeyKindUnique,
			Columns: &sql.DoNotQuote{Text: newKey.Columns},
		})
	}
	for _, oldKey := range oldKeys {
		if newSet.Has(oldKey) {
			continue
		}
		parts = append(parts, &sql.TableAlterPartIndexDrop{
			Index: oldKey.Name,
		})
	}
	return parts
}
