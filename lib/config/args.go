package config

var Version = "1.0.0"

// Args are the command line arguments, parsed by go-arg
type Args struct {
	// Global Switches and Flags
	Verbose []bool `arg:"-v" help:"see more detail (verbose). -vvv is not advised for normal use."`
	Quiet   []bool `arg:"-q" help:"see less detail (quiet)."`
	Debug   bool   `arg:"--debug" help:"display extended information about errors. Automatically implies -vv."`

	// Snapshot sources, each side takes either sql files or a live database
	OldSql    []string `arg:"--oldsql" help:"sql files containing the CREATE TABLE statements of the old schema"`
	NewSql    []string `arg:"--newsql" help:"sql files containing the CREATE TABLE statements of the new schema"`
	OldDbName string   `arg:"--olddbname" help:"live database holding the old schema"`
	NewDbName string   `arg:"--newdbname" help:"live database holding the new schema"`

	// Database connectivity
	DbSchemaDump bool    `arg:"--dbschemadump" help:"dump the CREATE TABLE statements of --dbname"`
	DbHost       string  `arg:"--dbhost" default:"localhost" help:"database host"`
	DbPort       uint    `arg:"--dbport" default:"3306" help:"database port"`
	DbName       string  `arg:"--dbname" help:"database to dump with --dbschemadump"`
	DbUser       string  `arg:"--dbuser" help:"database user"`
	DbPassword   *string `arg:"--dbpassword" help:"database password, prompted for if not given"`

	// Output options
	OutputFile string `arg:"--outputfile" help:"file to write sql to, stdout if not given"`
	Parallel   int    `arg:"--parallel" default:"1" help:"number of tables to diff at once"`
}

func (Args) Description() string {
	return "mysqldiff generates the DDL that upgrades an old mysql schema to a new one"
}

func (Args) Version() string {
	return "mysqldiff " + Version
}
