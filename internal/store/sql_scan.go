// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

var errNullTimestamp = errors.New("unexpected NULL timestamp")

// timestampScanner scans timestamp columns from either driver. pgx hands out
// time.Time; go-sqlite3 does too for declared DATETIME columns but falls back
// to text for RETURNING results.
type timestampScanner struct {
	dst         *time.Time
	nullableDst **time.Time
}

func timestamp(dst *time.Time) timestampScanner {
	return timestampScanner{dst: dst}
}

func nullTimestamp(dst **time.Time) timestampScanner {
	return timestampScanner{nullableDst: dst}
}

func (s timestampScanner) Scan(src any) error {
	if src == nil {
		if s.nullableDst == nil {
			return errNullTimestamp
		}
		*s.nullableDst = nil
		return nil
	}

	t, err := parseTimestamp(src)
	if err != nil {
		return err
	}

	if s.nullableDst != nil {
		*s.nullableDst = &t
		return nil
	}
	*s.dst = t
	return nil
}

func parseTimestamp(src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTimestampString(v)
	case []byte:
		return parseTimestampString(string(v))
	case int64:
		return time.Unix(v, 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func parseTimestampString(s string) (time.Time, error) {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", s)
}
