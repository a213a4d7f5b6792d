package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/mcncl/jsonpp/internal/models"
)

// DefaultIndent is the number of spaces per nesting level in pretty mode.
const DefaultIndent = 3

// Options control how values are rendered.
type Options struct {
	// Indent is the number of spaces per nesting level in pretty mode.
	Indent int
	// EnsureASCII escapes every non-ASCII character as \uXXXX.
	EnsureASCII bool
}

// Formatter renders decoded JSON values back to text. Object members are
// written in the order they appear, never sorted, and numbers are written
// as their exact source text.
type Formatter struct {
	indent      string
	ensureASCII bool
}

// New creates a Formatter with the default options.
func New() *Formatter {
	return NewWithOptions(Options{Indent: DefaultIndent})
}

// NewWithOptions creates a Formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	return &Formatter{
		indent:      strings.Repeat(" ", opts.Indent),
		ensureASCII: opts.EnsureASCII,
	}
}

// Compact writes v to w with no whitespace beyond the separators.
func (f *Formatter) Compact(w io.Writer, v models.Value) error {
	return f.encode(w, v, "", "", "")
}

// Pretty writes v to w indented by nesting depth, with a single space
// after each key's colon.
func (f *Formatter) Pretty(w io.Writer, v models.Value) error {
	return f.encode(w, v, f.indent, "\n", " ")
}

// encode renders into a buffer first so nothing reaches w on error.
func (f *Formatter) encode(w io.Writer, v models.Value, prefix, postfix, colonSep string) error {
	buf := &bytes.Buffer{}
	if err := f.write(buf, v, 0, prefix, postfix, colonSep); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// write is the single walker behind both modes; prefix is the per-level
// indent, postfix follows values and opening braces, colonSep follows keys.
func (f *Formatter) write(buf *bytes.Buffer, v models.Value, level int, prefix, postfix, colonSep string) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(string(val))
	case string:
		f.writeString(buf, val)
	case models.Array:
		if len(val) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[" + postfix)
		for i, item := range val {
			buf.WriteString(strings.Repeat(prefix, level+1))
			if err := f.write(buf, item, level+1, prefix, postfix, colonSep); err != nil {
				return err
			}
			if i < len(val)-1 {
				buf.WriteString(",")
			}
			buf.WriteString(postfix)
		}
		buf.WriteString(strings.Repeat(prefix, level) + "]")
	case models.Object:
		if len(val) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{" + postfix)
		for i, member := range val {
			buf.WriteString(strings.Repeat(prefix, level+1))
			f.writeString(buf, member.Key)
			buf.WriteString(":" + colonSep)
			if err := f.write(buf, member.Value, level+1, prefix, postfix, colonSep); err != nil {
				return err
			}
			if i < len(val)-1 {
				buf.WriteString(",")
			}
			buf.WriteString(postfix)
		}
		buf.WriteString(strings.Repeat(prefix, level) + "}")
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
	return nil
}

// writeString renders s as a JSON string literal.
func (f *Formatter) writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			switch {
			case r < 0x20:
				fmt.Fprintf(buf, `\u%04x`, r)
			case f.ensureASCII && r > 0x7f:
				if r > 0xffff {
					r1, r2 := utf16.EncodeRune(r)
					fmt.Fprintf(buf, `\u%04x\u%04x`, r1, r2)
				} else {
					fmt.Fprintf(buf, `\u%04x`, r)
				}
			default:
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
