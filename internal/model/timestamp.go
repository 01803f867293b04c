// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the fixed layout used for every timestamp in the board file.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp is a point in time that serializes as a local date-time string
// in the fixed TimeLayout form. Wrapping time.Time keeps comparison and
// formatting available in memory while the wire form stays a plain string.
type Timestamp struct {
	time.Time
}

// Now returns the current local time, truncated to second precision so that
// a value survives a serialize/deserialize round trip unchanged.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// NewTimestamp wraps an existing time value, truncated to second precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.Truncate(time.Second)}
}

// String renders the timestamp in the fixed board layout.
func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

// MarshalJSON encodes the timestamp as a quoted TimeLayout string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted TimeLayout string in local time.
// An empty or null value yields the zero Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
