package entities

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

const indentUnit = "  "

// Decode parses a JSON object, keeping key order and the authored text of
// numbers. Anything other than a single valid object is a DataLoss error.
func Decode(data []byte) (*Record, error) {
	if !utf8.Valid(data) {
		return nil, errors.DataLossf("record is not valid UTF-8")
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.DataLossf("record is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.DataLossf("record must be a JSON object, got %s", root.Type)
	}

	return decodeObject(root), nil
}

func decodeObject(result gjson.Result) *Record {
	rec := NewRecord()
	result.ForEach(func(key, value gjson.Result) bool {
		rec.Set(key.String(), decodeValue(value))
		return true
	})
	return rec
}

func decodeValue(result gjson.Result) any {
	if result.IsObject() {
		return decodeObject(result)
	}
	if result.IsArray() {
		items := []any{}
		result.ForEach(func(_, value gjson.Result) bool {
			items = append(items, decodeValue(value))
			return true
		})
		return items
	}

	switch result.Type {
	case gjson.String:
		return result.String()
	case gjson.Number:
		return json.Number(strings.TrimSpace(result.Raw))
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}

// Encode writes the record as JSON indented by two spaces with a trailing
// newline. Non-ASCII text is written as-is.
func Encode(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, rec, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, value any, depth int) error {
	switch val := value.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(val.String())
	case float64:
		buf.WriteString(FormatNumber(val))
	case int:
		buf.WriteString(FormatNumber(float64(val)))
	case string:
		return writeString(buf, val)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return writeArray(buf, items, depth)
	case []any:
		return writeArray(buf, val, depth)
	case *Record:
		return writeObject(buf, val, depth)
	default:
		return errors.Internalf("cannot encode value of type %T", value)
	}
	return nil
}

func writeArray(buf *bytes.Buffer, items []any, depth int) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")
	for i, item := range items {
		buf.WriteString(strings.Repeat(indentUnit, depth+1))
		if err := writeValue(buf, item, depth+1); err != nil {
			return err
		}
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteByte(']')
	return nil
}

func writeObject(buf *bytes.Buffer, rec *Record, depth int) error {
	if rec.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteString("{\n")
	i := 0
	var err error
	rec.Each(func(key string, value any) {
		if err != nil {
			return
		}
		buf.WriteString(strings.Repeat(indentUnit, depth+1))
		if err = writeString(buf, key); err != nil {
			return
		}
		buf.WriteString(": ")
		if err = writeValue(buf, value, depth+1); err != nil {
			return
		}
		if i < rec.Len()-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
		i++
	})
	if err != nil {
		return err
	}
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteByte('}')
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "failed to encode string")
	}
	writeLineSeparators(buf, bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// writeLineSeparators copies an encoded string, turning the \u2028 and
// \u2029 escapes the encoder adds back into raw characters
func writeLineSeparators(buf *bytes.Buffer, encoded []byte) {
	for i := 0; i < len(encoded); i++ {
		if encoded[i] != '\\' || i+1 >= len(encoded) {
			buf.WriteByte(encoded[i])
			continue
		}
		if rest := encoded[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			if rest[5] == '8' {
				buf.WriteRune('\u2028')
			} else {
				buf.WriteRune('\u2029')
			}
			i += 5
			continue
		}
		buf.WriteByte(encoded[i])
		buf.WriteByte(encoded[i+1])
		i++
	}
}
