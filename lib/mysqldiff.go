package lib

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dbsteward/mysqldiff/lib/config"
	"github.com/dbsteward/mysqldiff/lib/format"
	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/output"
	"github.com/dbsteward/mysqldiff/lib/util"
)

type MySQLDiff struct {
	logger     zerolog.Logger
	level      zerolog.Level
	slogLogger *slog.Logger
	lookup     *format.Lookup

	// PromptPassword reads the database password when --dbpassword is not given
	PromptPassword func(prompt string, args ...interface{}) (string, error)
}

func NewMySQLDiff(lookup *format.Lookup) *MySQLDiff {
	diff := &MySQLDiff{
		logger:         zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger(),
		level:          zerolog.InfoLevel,
		lookup:         lookup,
		PromptPassword: util.PromptPassword,
	}
	diff.slogLogger = slog.New(newLogHandler(diff))
	return diff
}

// Logger is the slog view of the zerolog logger, handed to the format packages
func (self *MySQLDiff) Logger() *slog.Logger {
	return self.slogLogger
}

// SetLogOutput redirects log output, keeping the current level
func (self *MySQLDiff) SetLogOutput(w io.Writer) {
	self.logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(self.level).With().Timestamp().Logger()
}

func (self *MySQLDiff) ArgParse() {
	args := &config.Args{}
	arg.MustParse(args)

	if err := self.Run(context.Background(), args); err != nil {
		self.Fatal("%s", err.Error())
	}
}

// Run executes the mode selected by args
func (self *MySQLDiff) Run(ctx context.Context, args *config.Args) error {
	self.setVerbosity(args)

	mode, err := self.validateArgs(args)
	if err != nil {
		return err
	}
	if mode == ModeUnknown {
		return errors.New("no operation specified, use --oldsql/--olddbname with --newsql/--newdbname or --dbschemadump")
	}
	self.Info("Running in %s mode", mode)

	c := config.Default(self.slogLogger)
	c.OutputFile = args.OutputFile
	if args.Parallel > 0 {
		c.Concurrency = args.Parallel
	}
	ops := self.lookup.OperationsConstructor(c)

	switch mode {
	case ModeDiff:
		return self.doDiff(ctx, ops, args, c)
	case ModeExtract:
		return self.doExtract(ctx, ops, args, c)
	}
	return errors.Errorf("unsupported mode %s", mode)
}

func (self *MySQLDiff) validateArgs(args *config.Args) (Mode, error) {
	oldGiven := len(args.OldSql) > 0 || args.OldDbName != ""
	newGiven := len(args.NewSql) > 0 || args.NewDbName != ""

	mode := ModeUnknown
	switch {
	case oldGiven || newGiven:
		mode = ModeDiff
	case args.DbSchemaDump:
		mode = ModeExtract
	}

	if mode == ModeDiff {
		if args.DbSchemaDump {
			return mode, errors.New("Parameter error: dbschemadump is not to be mixed with diff sources")
		}
		if len(args.OldSql) > 0 && args.OldDbName != "" {
			return mode, errors.New("Parameter error: oldsql and olddbname options are not to be mixed")
		}
		if len(args.NewSql) > 0 && args.NewDbName != "" {
			return mode, errors.New("Parameter error: newsql and newdbname options are not to be mixed")
		}
		if !oldGiven {
			return mode, errors.New("Parameter error: oldsql or olddbname needs to be specified for differencing to occur")
		}
		if !newGiven {
			return mode, errors.New("Parameter error: newsql or newdbname needs to be specified for differencing to occur")
		}
	}
	if mode == ModeExtract && args.DbName == "" {
		return mode, errors.New("dbname not specified")
	}
	if mode == ModeExtract || args.OldDbName != "" || args.NewDbName != "" {
		if args.DbHost == "" {
			return mode, errors.New("dbhost not specified")
		}
		if args.DbUser == "" {
			return mode, errors.New("dbuser not specified")
		}
	}
	if args.OutputFile != "" && util.IsDir(args.OutputFile) {
		return mode, errors.New("outputfile is a directory, must be a writable file")
	}
	return mode, nil
}

func (self *MySQLDiff) dbPassword(args *config.Args) (string, error) {
	if args.DbPassword != nil {
		return *args.DbPassword, nil
	}
	pass, err := self.PromptPassword("[mysqldiff] Enter password for %s@%s: ", args.DbUser, args.DbHost)
	if err != nil {
		return "", errors.Wrap(err, "could not read password input")
	}
	args.DbPassword = &pass
	return pass, nil
}

func (self *MySQLDiff) loadSnapshot(ctx context.Context, ops format.Operations, args *config.Args, files []string, dbName string) (*ir.Definition, error) {
	if len(files) > 0 {
		return ops.LoadSqlFiles(files)
	}
	pass, err := self.dbPassword(args)
	if err != nil {
		return nil, err
	}
	return ops.ExtractSchema(ctx, args.DbHost, args.DbPort, dbName, args.DbUser, pass)
}

func (self *MySQLDiff) doDiff(ctx context.Context, ops format.Operations, args *config.Args, c config.Config) error {
	oldDoc, err := self.loadSnapshot(ctx, ops, args, args.OldSql, args.OldDbName)
	if err != nil {
		return errors.Wrap(err, "loading old schema")
	}
	newDoc, err := self.loadSnapshot(ctx, ops, args, args.NewSql, args.NewDbName)
	if err != nil {
		return errors.Wrap(err, "loading new schema")
	}

	self.Info("Calculating differences between %d old and %d new tables", len(oldDoc.Tables), len(newDoc.Tables))
	ofs, err := ops.DiffDefinitions(oldDoc, newDoc)
	if err != nil {
		if ir.IsDuplicateIdentifier(err) {
			self.Warning("Table and column names must be unique within a schema")
		}
		return err
	}
	if err := output.WriteFile(c.OutputFile, ofs); err != nil {
		return err
	}
	self.Notice("Diff written to %s", outputName(c.OutputFile))
	return nil
}

func (self *MySQLDiff) doExtract(ctx context.Context, ops format.Operations, args *config.Args, c config.Config) error {
	pass, err := self.dbPassword(args)
	if err != nil {
		return err
	}
	doc, err := ops.ExtractSchema(ctx, args.DbHost, args.DbPort, args.DbName, args.DbUser, pass)
	if err != nil {
		return err
	}
	ofs, err := ops.DumpSchema(doc)
	if err != nil {
		return err
	}
	if err := output.WriteFile(c.OutputFile, ofs); err != nil {
		return err
	}
	self.Notice("Schema of %s written to %s", args.DbName, outputName(c.OutputFile))
	return nil
}

func outputName(file string) string {
	if file == "" {
		return "stdout"
	}
	return file
}

func (self *MySQLDiff) Fatal(s string, args ...interface{}) {
	self.logger.Fatal().Msgf(s, args...)
}

func (self *MySQLDiff) Warning(s string, args ...interface{}) {
	self.logger.Warn().Msgf(s, args...)
}
func (self *MySQLDiff) Notice(s string, args ...interface{}) {
	self.Info(s, args...)
}
func (self *MySQLDiff) Info(s string, args ...interface{}) {
	self.logger.Info().Msgf(s, args...)
}

func (self *MySQLDiff) setVerbosity(args *config.Args) {
	// lower level is higher verbosity, zerolog.Level is an int8
	level := zerolog.InfoLevel

	if args.Debug {
		level = zerolog.TraceLevel
	}

	for _, v := range args.Verbose {
		if v {
			level -= 1
		} else {
			level += 1
		}
	}
	for _, q := range args.Quiet {
		if q {
			level += 1
		} else {
			level -= 1
		}
	}

	if level > zerolog.PanicLevel {
		level = zerolog.PanicLevel
	}
	if level < zerolog.TraceLevel {
		level = zerolog.TraceLevel
	}

	self.level = level
	self.logger = self.logger.Level(level)
}
