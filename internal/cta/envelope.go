package cta

import (
	"bytes"
	"encoding/json"
)

// Record is one upstream train or ETA entry, kept as the raw decoded field
// mapping so every upstream field passes through to clients untouched.
type Record map[string]any

// statusOK is the Train Tracker success code. The upstream reuses non-zero
// codes both for genuine errors and for "nothing to report", so callers must
// not read anything finer into a non-success status.
const statusOK = "0"

// statusCode tolerates the upstream emitting errCd as either a JSON number
// or a string.
type statusCode string

func (s *statusCode) UnmarshalJSON(data []byte) error {
	*s = statusCode(bytes.Trim(bytes.TrimSpace(data), `"`))
	return nil
}

// recordList decodes an upstream field whose cardinality is ambiguous: the
// Train Tracker emits a bare object when there is exactly one result and an
// array otherwise. Absent and null both decode to an empty list.
type recordList []Record

func (l *recordList) UnmarshalJSON(data []byte) error {
	*l = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return err
		}
		*l = records
		return nil
	}

	var single Record
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*l = recordList{single}
	return nil
}

// routeEntry is one route block inside a positions envelope. Its train field
// carries the same one-or-many ambiguity one level deeper.
type routeEntry struct {
	Name   string     `json:"@name"`
	Trains recordList `json:"train"`
}

// routeEntryList applies the one-or-many coercion at the route level.
type routeEntryList []routeEntry

func (l *routeEntryList) UnmarshalJSON(data []byte) error {
	*l = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var entries []routeEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return err
		}
		*l = entries
		return nil
	}

	var single routeEntry
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*l = routeEntryList{single}
	return nil
}

// envelope is the outer Train Tracker response shape, shared by the
// positions and follow endpoints.
type envelope struct {
	Ctatt struct {
		ErrCd    statusCode     `json:"errCd"`
		ErrNm    string         `json:"errNm"`
		Routes   routeEntryList `json:"route"`
		Etas     recordList     `json:"eta"`
		Position Record         `json:"position"`
	} `json:"ctatt"`
}

func (e *envelope) ok() bool {
	return string(e.Ctatt.ErrCd) == statusOK
}
