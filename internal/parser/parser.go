package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsonpp/internal/errors"
	"github.com/mcncl/jsonpp/internal/models"
)

// Parse decodes a single JSON value from reader into the ordered model.
// The whole stream is read first so that syntax errors can be reported
// with line and column positions, not just a byte offset.
func Parse(reader io.Reader) (models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes a single JSON value from data.
func ParseBytes(data []byte) (models.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParsingError(
			diagnostic("Expecting value", data, 0),
			errors.ErrEmptyInput,
		)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // numbers stay json.Number, no float rounding

	value, err := decodeValue(dec)
	if err != nil {
		return nil, translate(err, data)
	}

	// Anything but whitespace after the first value is an error.
	off := int(dec.InputOffset())
	if i := indexNonSpace(data[off:]); i >= 0 {
		return nil, errors.NewParsingError(
			diagnostic("Extra data", data, off+i),
			errors.ErrTrailingData,
		)
	}

	return value, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	return ParseBytes([]byte(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", nil)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	return Parse(file)
}

// decodeValue reads the next complete value from the token stream.
func decodeValue(dec *json.Decoder) (models.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (models.Value, error) {
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
	// nil, bool, string or json.Number pass through unchanged.
	return tok, nil
}

func decodeObject(dec *json.Decoder) (models.Value, error) {
	obj := models.Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &propertyNameError{err}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		// Last occurrence of a duplicate key wins.
		obj = obj.Set(key, value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (models.Value, error) {
	arr := models.Array{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// propertyNameError marks a decoder error raised while reading an
// object key.
type propertyNameError struct{ err error }

func (e *propertyNameError) Error() string { return e.err.Error() }
func (e *propertyNameError) Unwrap() error { return e.err }

// translate turns a decoder error into a parsing error whose message
// carries the position as "line L column C (char N)".
func translate(err error, data []byte) error {
	var keyErr *propertyNameError
	atKey := stderrors.As(err, &keyErr)

	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		msg := syntaxError.Error()
		pos := int(syntaxError.Offset)
		what := phrase(msg)
		switch {
		case atKey && bareInvalidCharacter(msg):
			// A non-string key directly after '{' is reported as a bare
			// invalid-character error with the offset at the byte.
			what = "Expecting property name enclosed in double quotes"
		case !tokenStateError(msg) && pos > 0:
			// Token-state errors report the offset of the offending byte;
			// scanner errors report the bytes read, one past it.
			pos--
		}
		return errors.NewParsingError(
			diagnostic(what, data, pos),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.ErrUnexpectedEOF) || stderrors.Is(err, io.EOF) {
		what := "Expecting value"
		if atKey {
			what = "Expecting property name enclosed in double quotes"
		}
		return errors.NewParsingError(
			diagnostic(what, data, len(data)),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError(
		fmt.Sprintf("failed to decode JSON: %v", err),
		errors.ErrInvalidJSON,
	)
}

// bareInvalidCharacter reports whether msg is an invalid-character error
// with no context, i.e. with neither a token-state suffix nor a scanner
// location like "in literal".
func bareInvalidCharacter(msg string) bool {
	return strings.HasPrefix(msg, "invalid character") &&
		!strings.Contains(msg, " looking for ") &&
		!strings.Contains(msg, " after ") &&
		!strings.Contains(msg, " in ")
}

// tokenStateError reports whether msg comes from the decoder's token
// state machine rather than the value scanner.
func tokenStateError(msg string) bool {
	return strings.Contains(msg, "looking for beginning of object key string") ||
		strings.Contains(msg, "after object key") ||
		strings.Contains(msg, "after array element") ||
		strings.Contains(msg, "after top-level value")
}

// phrase rewrites the stdlib's syntax-error wording into the diagnostics
// this tool documents. Unrecognized messages pass through unchanged.
func phrase(msg string) string {
	switch {
	case strings.Contains(msg, "looking for beginning of object key string"):
		return "Expecting property name enclosed in double quotes"
	case strings.Contains(msg, "looking for beginning of value"):
		return "Expecting value"
	case strings.Contains(msg, "after object key:value pair"):
		return "Expecting ',' delimiter"
	case strings.Contains(msg, "after object key"):
		return "Expecting ':' delimiter"
	case strings.Contains(msg, "after array element"):
		return "Expecting ',' delimiter"
	case strings.Contains(msg, "after top-level value"):
		return "Extra data"
	default:
		return msg
	}
}

// diagnostic renders "<what>: line L column C (char N)" for the byte at pos.
// char is the 0-based byte index; column counts bytes from the last newline.
func diagnostic(what string, data []byte, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(data) {
		pos = len(data)
	}
	line := 1 + bytes.Count(data[:pos], []byte{'\n'})
	col := pos
	if last := bytes.LastIndexByte(data[:pos], '\n'); last >= 0 {
		col = pos - last
	}
	return fmt.Sprintf("%s: line %d column %d (char %d)", what, line, col, pos)
}

// indexNonSpace returns the index of the first byte that is not JSON
// whitespace, or -1 if there is none.
func indexNonSpace(data []byte) int {
	for i, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
		default:
			return i
		}
	}
	return -1
}
