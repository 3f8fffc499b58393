package output

func NewSegmenter(q Quoter) *Segmenter {
	return &Segmenter{quoter: q}
}

// Segmenter holds statements internally in header and body lists
// and returns them properly ordered from AllStatements()
type Segmenter struct {
	quoter Quoter
	Header []ToSql
	Body   []ToSql
	final  []ToSql
}

func withoutNils(stmts []ToSql) []ToSql {
	out := make([]ToSql, 0, len(stmts))
	for _, stmt := range stmts {
		if stmt != nil {
			out = append(out, stmt)
		}
	}
	return out
}

// Close compiles the different parts into a single list of statements
func (s *Segmenter) Close() error {
	s.final = append(s.final, s.Header...)
	s.final = append(s.final, s.Body...)
	s.Header = nil
	s.Body = nil
	return nil
}

// SetHeader removes any previous header statements and
// starts the header fresh
func (s *Segmenter) SetHeader(stmts ...ToSql) error {
	s.Header = withoutNils(stmts)
	return nil
}

// WriteSql appends each generator to the body in turn
func (s *Segmenter) WriteSql(generators ...ToSql) error {
	s.Body = append(s.Body, withoutNils(generators)...)
	return nil
}

// AllStatements closes the segmenter if that wasn't previously done,
// then returns the ordered list of statements
func (s *Segmenter) AllStatements() []ToSql {
	if s.Header != nil || s.Body != nil {
		_ = s.Close()
	}
	return s.final
}

// String renders all statements, see Render
func (s *Segmenter) String() string {
	return Render(s.quoter, s.AllStatements()...)
}
