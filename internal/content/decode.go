package content

import (
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("record is not a JSON object")

// decodeRecord decodes one collection record into v. Records wrapped as
// {id, attributes: {...}} are flattened first so both API generations
// decode into the same struct.
func decodeRecord(raw json.RawMessage, v any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errNotObject
	}

	if attrs, ok := fields["attributes"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(attrs, &inner); err == nil && inner != nil {
			delete(fields, "attributes")
			for k, val := range inner {
				if _, exists := fields[k]; !exists {
					fields[k] = val
				}
			}
		}
	}

	flat, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(flat, v)
}
