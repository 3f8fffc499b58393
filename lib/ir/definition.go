package ir

// Definition is one snapshot of a schema: the set of tables as they exist at
// a single point in time.
type Definition struct {
	Tables []*Table
}

func (def *Definition) TryGetTableNamed(name string) *Table {
	if def == nil {
		return nil
	}
	for _, table := range def.Tables {
		// table names are matched exactly, mysql case sensitivity depends on the filesystem
		if table.Name == name {
			return table
		}
	}
	return nil
}

func (def *Definition) AddTable(table *Table) {
	def.Tables = append(def.Tables, table)
}

func (def *Definition) TableNames() []string {
	if def == nil {
		return []string{}
	}
	out := make([]string, len(def.Tables))
	for i, table := range def.Tables {
		out[i] = table.Name
	}
	return out
}

// Validate detects issues with the snapshot that the caller needs to address
// before it can be differenced. Every duplicated identifier is reported, not
// just the first one.
func (def *Definition) Validate() []error {
	out := []error{}
	if def == nil {
		return out
	}

	for i, table := range def.Tables {
		out = append(out, table.Validate()...)
		for _, other := range def.Tables[i+1:] {
			if table.IdentityMatches(other) {
				out = append(out, &DuplicateIdentifierError{
					Kind: IdentifierKindTable,
					Name: table.Name,
				})
			}
		}
	}

	return out
}
