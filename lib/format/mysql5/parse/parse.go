package parse

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/util"
)

var createTableRegex = regexp.MustCompile(`(?is)^CREATE\s+(?:TEMPORARY\s+)?TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?`)

// leading keywords of body items that are not column definitions
var bodyKeywordRegex = regexp.MustCompile(`(?is)^(PRIMARY\s+KEY|UNIQUE(?:\s+(?:KEY|INDEX))?|KEY|INDEX|FULLTEXT|SPATIAL|FOREIGN\s+KEY|CHECK|CONSTRAINT)\b`)

var usingRegex = regexp.MustCompile(`(?is)^USING\s+\w+\s*`)

func FromFiles(files []string) (*ir.Definition, error) {
	doc := &ir.Definition{}
	for _, file := range files {
		err := MergeFromFile(doc, file)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func MergeFromFile(doc *ir.Definition, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "could not read sql file %s", file)
	}
	defer f.Close()
	return errors.Wrapf(ParseInto(doc, f), "could not parse sql file %s", file)
}

// ParseInto adds every table created in the sql read from r to doc.
// Statements other than CREATE TABLE are ignored.
func ParseInto(doc *ir.Definition, r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading sql")
	}
	for i, stmt := range splitTopLevel(string(src), ';') {
		stmt = strings.TrimSpace(trimLeadingComments(stmt))
		if !createTableRegex.MatchString(stmt) {
			continue
		}
		table, err := ParseCreateTable(stmt)
		if err != nil {
			if perr, ok := err.(*Error); ok {
				perr.Statement = i + 1
			}
			return err
		}
		doc.AddTable(table)
	}
	return nil
}

func ParseString(src string) (*ir.Definition, error) {
	doc := &ir.Definition{}
	err := ParseInto(doc, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseCreateTable parses a single CREATE TABLE statement, as printed by
// SHOW CREATE TABLE. Column definitions and key column lists are kept
// exactly as written. Primary keys, foreign keys, fulltext and spatial
// keys and checks are not part of the model and are skipped.
func ParseCreateTable(stmt string) (*ir.Table, error) {
	stmt = strings.TrimSuffix(strings.TrimSpace(trimLeadingComments(stmt)), ";")
	stmt = strings.TrimSpace(stmt)
	loc := createTableRegex.FindStringIndex(stmt)
	if loc == nil {
		return nil, &Error{Statement: 1, Msg: "not a CREATE TABLE statement"}
	}

	name, rest := readIdentifier(stmt[loc[1]:])
	// schema qualified, the table name is the last part
	for strings.HasPrefix(rest, ".") {
		name, rest = readIdentifier(rest[1:])
	}
	if name == "" {
		return nil, &Error{Statement: 1, Msg: "missing table name"}
	}

	open, close := findParens(rest)
	if open < 0 || strings.TrimSpace(rest[:open]) != "" {
		return nil, &Error{Statement: 1, Table: name, Msg: "missing column definitions"}
	}

	table := &ir.Table{
		Name:          name,
		RawDefinition: stmt,
	}
	for _, item := range splitTopLevel(rest[open+1:close], ',') {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if err := parseBodyItem(table, item); err != nil {
			return nil, &Error{Statement: 1, Table: name, Msg: err.Error()}
		}
	}
	return table, nil
}

func parseBodyItem(table *ir.Table, item string) error {
	match := bodyKeywordRegex.FindStringSubmatch(item)
	if match == nil {
		return parseColumn(table, item)
	}

	keyword := strings.ToUpper(strings.Join(strings.Fields(match[1]), " "))
	rest := item[len(match[0]):]
	switch {
	case keyword == "KEY" || keyword == "INDEX":
		return parseKey(table, rest, ir.KeyKindOrdinary, "")
	case strings.HasPrefix(keyword, "UNIQUE"):
		return parseKey(table, rest, ir.KeyKindUnique, "")
	case keyword == "CONSTRAINT":
		return parseConstraint(table, rest)
	}
	// primary, foreign, fulltext and spatial keys and checks are not diffed
	return nil
}

func parseColumn(table *ir.Table, item string) error {
	name, rest := readIdentifier(item)
	if name == "" {
		return errors.Errorf("could not read column name from %q", item)
	}
	table.AddColumn(&ir.Column{
		Name:       name,
		Definition: strings.TrimSpace(rest),
	})
	return nil
}

// CONSTRAINT [symbol] UNIQUE [KEY|INDEX] [name] (...) is the only
// constraint form that declares a key
func parseConstraint(table *ir.Table, rest string) error {
	symbol := ""
	if match := bodyKeywordRegex.FindStringSubmatch(strings.TrimSpace(rest)); match == nil {
		symbol, rest = readIdentifier(rest)
	}
	rest = strings.TrimSpace(rest)
	match := bodyKeywordRegex.FindStringSubmatch(rest)
	if match == nil || !strings.HasPrefix(strings.ToUpper(match[1]), "UNIQUE") {
		return nil
	}
	return parseKey(table, rest[len(match[0]):], ir.KeyKindUnique, symbol)
}

// parseKey reads "[name] [USING type] (columns) [options]"
func parseKey(table *ir.Table, rest string, kind ir.KeyKind, fallbackName string) error {
	rest = strings.TrimSpace(rest)
	name := ""
	if rest != "" && rest[0] != '(' && !usingRegex.MatchString(rest) {
		name, rest = readIdentifier(rest)
		rest = strings.TrimSpace(rest)
	}
	rest = usingRegex.ReplaceAllString(rest, "")

	open, close := findParens(rest)
	if open != 0 {
		return errors.Errorf("could not read column list of %s %s", kind, name)
	}
	columns := rest[open+1 : close]
	table.AddKey(&ir.Key{
		Name:    util.CoalesceStr(name, fallbackName, defaultKeyName(columns)),
		Columns: columns,
		Kind:    kind,
	})
	return nil
}

// mysql names an unnamed key after its first column
func defaultKeyName(columns string) string {
	first := splitTopLevel(columns, ',')[0]
	name, _ := readIdentifier(first)
	return name
}
