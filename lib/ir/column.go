package ir

type Column struct {
	Name string
	// Definition is everything after the column name in the column's DDL,
	// e.g. "int(11) NOT NULL DEFAULT '0'"
	Definition string
}

func (col *Column) IdentityMatches(other *Column) bool {
	if col == nil || other == nil {
		return false
	}
	return col.Name == other.Name
}

// Equals compares definitions textually, no normalization is done
func (col *Column) Equals(other *Column) bool {
	if col == nil || other == nil {
		return false
	}
	return col.Name == other.Name && col.Definition == other.Definition
}
