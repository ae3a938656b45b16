package fieldset

import (
	"fmt"
	"strings"
)

// Dump renders the schema as an indented tree, one line per field with its
// flat leaf offset, recursing into sub-schemas. The output is
// deterministic and is meant for debugging and golden tests.
func (scm *Schema) Dump() string {
	var buf strings.Builder
	dumpSchema(&buf, scm, "")
	return buf.String()
}

func dumpSchema(buf *strings.Builder, scm *Schema, indent string) {
	fmt.Fprintf(buf, "schema %s (variance %d)\n", scm.name, scm.variance)
	indent += "  "
	for _, f := range scm.fields {
		fmt.Fprintf(buf, "%s%d %s", indent, f.offset, f.name)
		if f.sub != nil {
			buf.WriteString(": ")
			dumpSchema(buf, f.sub, indent)
		} else {
			fmt.Fprintf(buf, " %s\n", f.typ.name)
		}
	}
}

// Dump renders the pending changes without consuming the recorder.
func (m OptRecorder) Dump() string {
	m.checkRoot("Dump")
	st := m.st
	var pending []Change
	for i := range st.words {
		if st.bits.Test(i) {
			pending = append(pending, Change{st.schema, i, st.words[i]})
		}
	}
	return dumpChanges(pending)
}

// Dump renders the recorded changes without consuming the recorder.
func (m BitRecorder) Dump() string {
	m.checkRoot("Dump")
	return dumpChanges(m.st.changes[:m.st.n])
}

// Dump renders the recorded changes without consuming the recorder.
func (m IndexedRecorder) Dump() string {
	m.checkRoot("Dump")
	return dumpChanges(m.st.changes[:m.st.n])
}

func dumpChanges(changes []Change) string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, c := range changes {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
