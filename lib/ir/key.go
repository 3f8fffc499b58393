package ir

type KeyKind string

const (
	KeyKindOrdinary KeyKind = "KEY"
	KeyKindUnique   KeyKind = "UNIQUE KEY"
)

// Key is a secondary index of a table. Keys are identified by the column
// list they cover, not by their declared name.
type Key struct {
	Name string
	// Columns is the column list exactly as written between the key's
	// parentheses, e.g. "`a`,`b`"
	Columns string
	Kind    KeyKind
}
