package parse

import "fmt"

// Error describes a CREATE TABLE statement that could not be parsed.
// Statement is the 1-based index of the statement in its input.
type Error struct {
	Statement int
	Table     string
	Msg       string
}

func (err *Error) Error() string {
	if err.Table != "" {
		return fmt.Sprintf("statement %d (table %s): %s", err.Statement, err.Table, err.Msg)
	}
	return fmt.Sprintf("statement %d: %s", err.Statement, err.Msg)
}
