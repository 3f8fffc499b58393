package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsteward/mysqldiff/lib/ir"
)

func TestParseCreateTable_ShowCreateTable(t *testing.T) {
	stmt := "CREATE TABLE `order` (\n" +
		"  `id` int(10) unsigned NOT NULL AUTO_INCREMENT,\n" +
		"  `user_id` int(10) unsigned NOT NULL,\n" +
		"  `note` varchar(255) NOT NULL DEFAULT 'a, (b); c' COMMENT 'it''s free text',\n" +
		"  `status` enum('new','paid') NOT NULL,\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  UNIQUE KEY `uq_user_status` (`user_id`,`status`),\n" +
		"  KEY `idx_note` (`note`(10)),\n" +
		"  KEY `idx_user` (`user_id`) USING BTREE,\n" +
		"  FULLTEXT KEY `ft_note` (`note`),\n" +
		"  CONSTRAINT `fk_user` FOREIGN KEY (`user_id`) REFERENCES `user` (`id`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COMMENT='orders; all of them'"

	table, err := ParseCreateTable(stmt + ";")
	require.NoError(t, err)
	assert.Equal(t, "order", table.Name)
	assert.Equal(t, stmt, table.RawDefinition)
	assert.Equal(t, []*ir.Column{
		{Name: "id", Definition: "int(10) unsigned NOT NULL AUTO_INCREMENT"},
		{Name: "user_id", Definition: "int(10) unsigned NOT NULL"},
		{Name: "note", Definition: "varchar(255) NOT NULL DEFAULT 'a, (b); c' COMMENT 'it''s free text'"},
		{Name: "status", Definition: "enum('new','paid') NOT NULL"},
	}, table.Columns)
	assert.Equal(t, []*ir.Key{
		{Name: "idx_note", Columns: "`note`(10)", Kind: ir.KeyKindOrdinary},
		{Name: "idx_user", Columns: "`user_id`", Kind: ir.KeyKindOrdinary},
	}, table.Keys)
	assert.Equal(t, []*ir.Key{
		{Name: "uq_user_status", Columns: "`user_id`,`status`", Kind: ir.KeyKindUnique},
	}, table.UniqueKeys)
}

func TestParseCreateTable_Variants(t *testing.T) {
	table, err := ParseCreateTable("create table if not exists shop.`item` (sku varchar(32), price decimal(10,2), unique index (sku), index price_idx using hash (price))")
	require.NoError(t, err)
	assert.Equal(t, "item", table.Name)
	assert.Equal(t, []*ir.Column{
		{Name: "sku", Definition: "varchar(32)"},
		{Name: "price", Definition: "decimal(10,2)"},
	}, table.Columns)
	assert.Equal(t, []*ir.Key{{Name: "price_idx", Columns: "price", Kind: ir.KeyKindOrdinary}}, table.Keys)
	assert.Equal(t, []*ir.Key{{Name: "sku", Columns: "sku", Kind: ir.KeyKindUnique}}, table.UniqueKeys)
}

func TestParseCreateTable_ConstraintUnique(t *testing.T) {
	table, err := ParseCreateTable("CREATE TABLE `t` (`a` int, `b` int, CONSTRAINT `uq_ab` UNIQUE (`a`,`b`), CONSTRAINT UNIQUE KEY `uq_b` (`b`))")
	require.NoError(t, err)
	assert.Equal(t, []*ir.Key{
		{Name: "uq_ab", Columns: "`a`,`b`", Kind: ir.KeyKindUnique},
		{Name: "uq_b", Columns: "`b`", Kind: ir.KeyKindUnique},
	}, table.UniqueKeys)
	assert.Empty(t, table.Keys)
}

func TestParseCreateTable_ColumnsNamedLikeKeywords(t *testing.T) {
	table, err := ParseCreateTable("CREATE TABLE t (key_id int, unique_code char(4), `key` int, index_no int)")
	require.NoError(t, err)
	names := []string{}
	for _, c := range table.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"key_id", "unique_code", "key", "index_no"}, names)
	assert.Empty(t, table.Keys)
}

func TestParseCreateTable_EmptyColumnDefinition(t *testing.T) {
	table, err := ParseCreateTable("CREATE TABLE t (`a`)")
	require.NoError(t, err)
	assert.Equal(t, []*ir.Column{{Name: "a", Definition: ""}}, table.Columns)
}

func TestParseCreateTable_Errors(t *testing.T) {
	cases := []struct {
		stmt string
		msg  string
	}{
		{"SELECT 1", "not a CREATE TABLE statement"},
		{"CREATE TABLE (`a` int)", "missing table name"},
		{"CREATE TABLE `t`", "missing column definitions"},
		{"CREATE TABLE `t` LIKE `u`", "missing column definitions"},
		{"CREATE TABLE `t` (`a` int", "missing column definitions"},
		{"CREATE TABLE `t` (`a` int, KEY `k`)", "could not read column list"},
	}
	for _, c := range cases {
		_, err := ParseCreateTable(c.stmt)
		if assert.Error(t, err, c.stmt) {
			assert.Contains(t, err.Error(), c.msg, c.stmt)
		}
	}
}

func TestParseString_Dump(t *testing.T) {
	src := `-- MySQL dump 10.13
/*!40101 SET @OLD_CHARACTER_SET_CLIENT=@@CHARACTER_SET_CLIENT */;
DROP TABLE IF EXISTS ` + "`a`" + `;
/* a; block comment */
CREATE TABLE ` + "`a`" + ` (
  ` + "`id`" + ` int NOT NULL # trailing; comment
);
# another; comment
INSERT INTO a VALUES (1);
CREATE TEMPORARY TABLE b (id int);
CREATE VIEW v AS SELECT 1;
`
	doc, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, doc.TableNames())
	assert.Equal(t, "int NOT NULL # trailing; comment", doc.Tables[0].Columns[0].Definition)
}

func TestParseString_ErrorStatementIndex(t *testing.T) {
	_, err := ParseString("SET NAMES utf8;\nCREATE TABLE a (id int);\nCREATE TABLE b;\n")
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok, "expected *Error, got %T", err)
	assert.Equal(t, 3, perr.Statement)
	assert.Equal(t, "b", perr.Table)
	assert.Equal(t, "statement 3 (table b): missing column definitions", perr.Error())
}

func TestSplitTopLevel(t *testing.T) {
	assert.Equal(t,
		[]string{"`a` int", " `b` decimal(10,2)", " `c` char(1) DEFAULT ','", " KEY (`a`,`b`)"},
		splitTopLevel("`a` int, `b` decimal(10,2), `c` char(1) DEFAULT ',', KEY (`a`,`b`)", ','),
	)
	assert.Equal(t, []string{"'it\\'s, ok'", "\"x\"\"y,\"", "`q``,`"}, splitTopLevel("'it\\'s, ok',\"x\"\"y,\",`q``,`", ','))
}

func TestReadIdentifier(t *testing.T) {
	cases := []struct {
		src, name, rest string
	}{
		{"`a b` int", "a b", " int"},
		{"`a``b`", "a`b", ""},
		{"  plain_1$ int", "plain_1$", " int"},
		{"(x)", "", "(x)"},
		{"", "", ""},
	}
	for _, c := range cases {
		name, rest := readIdentifier(c.src)
		assert.Equal(t, c.name, name, c.src)
		assert.Equal(t, c.rest, rest, c.src)
	}
}
