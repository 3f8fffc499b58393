package ir

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_Lookup(t *testing.T) {
	doc := &Definition{}
	doc.AddTable(&Table{Name: "a"})
	doc.AddTable(&Table{Name: "b"})

	assert.Equal(t, []string{"a", "b"}, doc.TableNames())
	assert.Equal(t, "b", doc.TryGetTableNamed("b").Name)
	assert.Nil(t, doc.TryGetTableNamed("B"))

	var nilDoc *Definition
	assert.Equal(t, []string{}, nilDoc.TableNames())
	assert.Nil(t, nilDoc.TryGetTableNamed("a"))
	assert.Empty(t, nilDoc.Validate())
}

func TestDefinition_Validate(t *testing.T) {
	doc := &Definition{
		Tables: []*Table{
			{Name: "a", Columns: []*Column{{Name: "x"}, {Name: "y"}, {Name: "x"}}},
			{Name: "b", Keys: []*Key{{Name: "k", Columns: "`x`"}, {Name: "k", Columns: "`y`"}}},
			{Name: "a"},
		},
	}
	errs := doc.Validate()
	require.Len(t, errs, 2)

	assert.Equal(t, &DuplicateIdentifierError{Kind: IdentifierKindColumn, Table: "a", Name: "x"}, errs[0])
	assert.Equal(t, &DuplicateIdentifierError{Kind: IdentifierKindTable, Name: "a"}, errs[1])
	assert.Equal(t, `found two columns with name "x" in table "a"`, errs[0].Error())
	assert.Equal(t, `found two tables with name "a"`, errs[1].Error())

	assert.True(t, IsDuplicateIdentifier(errors.Wrap(errs[1], "old schema")))
	assert.False(t, IsDuplicateIdentifier(errors.New("other")))
}

func TestTable_Validate_EmptyNames(t *testing.T) {
	// empty names are not identity problems, only duplicates are
	assert.Empty(t, (&Table{Columns: []*Column{{}, {Name: "a"}}}).Validate())
	assert.Empty(t, (&Definition{Tables: []*Table{{}, {Name: "a"}}}).Validate())
}

func TestTable_Keys(t *testing.T) {
	table := &Table{Name: "t"}
	table.AddKey(&Key{Name: "k", Columns: "`a`", Kind: KeyKindOrdinary})
	table.AddKey(&Key{Name: "u", Columns: "`a`", Kind: KeyKindUnique})
	assert.Equal(t, []*Key{{Name: "k", Columns: "`a`", Kind: KeyKindOrdinary}}, table.KeysOfKind(KeyKindOrdinary))
	assert.Equal(t, []*Key{{Name: "u", Columns: "`a`", Kind: KeyKindUnique}}, table.KeysOfKind(KeyKindUnique))
	assert.Equal(t, "table t (0 columns, 1 keys, 1 unique keys)", table.String())
}

func TestColumn_Equals(t *testing.T) {
	a := &Column{Name: "a", Definition: "int"}
	assert.True(t, a.Equals(&Column{Name: "a", Definition: "int"}))
	assert.False(t, a.Equals(&Column{Name: "a", Definition: "INT"}))
	assert.True(t, a.IdentityMatches(&Column{Name: "a", Definition: "INT"}))
	assert.False(t, a.Equals(nil))
}
