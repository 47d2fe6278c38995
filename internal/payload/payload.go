// Package payload decodes an order description into ordered key/value records.
// It knows nothing about prices or quantities; it only checks that the input is
// well-formed JSON with the expected top-level shape.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	FieldItems      = "items"
	FieldCustomerID = "customerId"
)

// DecodeError reports input that could not be decoded.
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string { return e.Msg }

func (e *DecodeError) Unwrap() error { return e.Err }

// Field is one key/value pair of a record, with the value kept as raw JSON.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Record is one entry of the items list. Fields is nil when the entry is not
// a JSON object.
type Record struct {
	Raw    json.RawMessage
	Fields []Field
}

// Document is the decoded top-level payload.
type Document struct {
	CustomerID    string
	HasCustomerID bool

	Items    []Record
	HasItems bool
}

func (r Record) IsObject() bool { return r.Fields != nil }

// Lookup returns the value stored under key. When a key repeats, the last
// occurrence wins, matching encoding/json.
func (r Record) Lookup(key string) (json.RawMessage, bool) {
	for i := len(r.Fields) - 1; i >= 0; i-- {
		if r.Fields[i].Key == key {
			return r.Fields[i].Value, true
		}
	}
	return nil, false
}

// Decode parses data into a Document. Unknown top-level fields are ignored.
// A field whose value is null is treated as absent.
func Decode(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var top map[string]json.RawMessage
	if err := dec.Decode(&top); err != nil {
		return Document{}, &DecodeError{Msg: fmt.Sprintf("invalid JSON: %v", err), Err: err}
	}
	if top == nil {
		return Document{}, &DecodeError{Msg: "invalid JSON: payload must be an object"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Document{}, &DecodeError{Msg: "invalid JSON: unexpected data after top-level object"}
	}

	var doc Document

	if raw, ok := present(top, FieldCustomerID); ok {
		if err := json.Unmarshal(raw, &doc.CustomerID); err != nil {
			return Document{}, &DecodeError{Msg: "invalid payload: customerId must be a string", Err: err}
		}
		doc.HasCustomerID = true
	}

	if raw, ok := present(top, FieldItems); ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return Document{}, &DecodeError{Msg: "invalid payload: items must be an array", Err: err}
		}

		doc.Items = make([]Record, 0, len(elems))
		for i, elem := range elems {
			rec, err := decodeRecord(elem)
			if err != nil {
				return Document{}, &DecodeError{Msg: fmt.Sprintf("invalid JSON: item %d: %v", i, err), Err: err}
			}
			doc.Items = append(doc.Items, rec)
		}
		doc.HasItems = true
	}

	return doc, nil
}

// Number reports whether raw holds a JSON number and returns it verbatim.
func Number(raw json.RawMessage) (json.Number, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	n, ok := v.(json.Number)
	return n, ok
}

// IsNull reports whether raw is the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func present(top map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := top[key]
	if !ok || IsNull(raw) {
		return nil, false
	}
	return raw, true
}

// decodeRecord walks an object token by token so field order is preserved.
func decodeRecord(raw json.RawMessage) (Record, error) {
	rec := Record{Raw: raw}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return rec, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return rec, err
	}

	rec.Fields = []Field{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rec, err
		}
		key, ok := tok.(string)
		if !ok {
			return rec, fmt.Errorf("unexpected token %v", tok)
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return rec, err
		}
		rec.Fields = append(rec.Fields, Field{Key: key, Value: val})
	}

	return rec, nil
}
