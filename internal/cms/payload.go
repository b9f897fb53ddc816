package cms

import (
	"bytes"
	"encoding/json"
)

// Payload is the {data, meta?} envelope returned by every collection read.
// A nil *Payload means the content service was unavailable; a Payload whose
// data is empty means it answered with nothing.
type Payload struct {
	Data json.RawMessage `json:"data"`
	Meta *Meta           `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// IsEmpty reports whether data is null, missing or an empty array.
func (p *Payload) IsEmpty() bool {
	if p == nil {
		return true
	}
	d := bytes.TrimSpace(p.Data)
	if len(d) == 0 || bytes.Equal(d, []byte("null")) {
		return true
	}
	if d[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(d, &items); err != nil {
			return true
		}
		return len(items) == 0
	}
	return false
}

// Records returns data as a slice of raw records. A single object is
// returned as a one-element slice.
func (p *Payload) Records() []json.RawMessage {
	if p.IsEmpty() {
		return nil
	}
	d := bytes.TrimSpace(p.Data)
	if d[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(d, &items); err != nil {
			return nil
		}
		return items
	}
	return []json.RawMessage{d}
}

// decodeEnvelope parses body and requires a top-level "data" key.
func decodeEnvelope(body []byte) *Payload {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	data, ok := raw["data"]
	if !ok {
		return nil
	}

	p := &Payload{Data: data}
	if m, ok := raw["meta"]; ok {
		var meta Meta
		if json.Unmarshal(m, &meta) == nil {
			p.Meta = &meta
		}
	}
	return p
}
