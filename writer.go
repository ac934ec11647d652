package squill

import (
	"bytes"
)

// sqlWriter accumulates SQL text and its parameter sequence. Every parameter
// goes through value(), which appends to values and writes the matching
// placeholder, so placeholder count and len(values) cannot diverge.
type sqlWriter struct {
	dialect       string
	buf           *bytes.Buffer
	values        Values
	suppressSpace bool
}

func newSQLWriter(dialect string) *sqlWriter {
	buf := bufpool.Get().(*bytes.Buffer)
	buf.Reset()
	return &sqlWriter{dialect: dialect, buf: buf}
}

// keyword writes a keyword, separating it from preceding text with a space.
func (w *sqlWriter) keyword(kw string) {
	if w.buf.Len() > 0 && !w.suppressSpace {
		w.buf.WriteString(" ")
	}
	w.suppressSpace = false
	w.buf.WriteString(kw)
}

func (w *sqlWriter) write(s string) {
	w.suppressSpace = false
	w.buf.WriteString(s)
}

// openGroup writes an opening parenthesis and suppresses the space a nested
// statement's first keyword would otherwise emit.
func (w *sqlWriter) openGroup() {
	w.buf.WriteString("(")
	w.suppressSpace = true
}

func (w *sqlWriter) space() {
	w.buf.WriteString(" ")
}

// ident writes a (possibly quoted) identifier.
func (w *sqlWriter) ident(name string) {
	w.buf.WriteString(QuoteIdentifier(w.dialect, name))
}

// value appends v to the parameter sequence and writes its placeholder.
func (w *sqlWriter) value(v Value) {
	w.values = append(w.values, v)
	w.buf.WriteString(Placeholder(w.dialect, len(w.values)))
}

// idents writes a comma-separated identifier list.
func (w *sqlWriter) idents(names []Iden) {
	for i, name := range names {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.ident(string(name))
	}
}

// finish returns the accumulated SQL and parameters and recycles the buffer.
func (w *sqlWriter) finish() (string, Values) {
	sql := w.buf.String()
	bufpool.Put(w.buf)
	w.buf = nil
	return sql, w.values
}
