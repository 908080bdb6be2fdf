// util/json.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// DuplicateKey is a key that appears more than once in a single JSON
// object. Path locates the object, e.g. "scenarios[2].maneuver"; it is
// empty for the top-level object.
type DuplicateKey struct {
	Path string
	Key  string
}

// DuplicateKeys returns the repeated object keys in b in the order they
// are encountered. Scanning stops at malformed JSON; decoding reports
// that separately.
func DuplicateKeys(b []byte) []DuplicateKey {
	var dups []DuplicateKey
	_ = walkJSON(json.NewDecoder(bytes.NewReader(b)), "", &dups)
	return dups
}

// walkJSON consumes a single value from dec.
func walkJSON(dec *json.Decoder, path string, dups *[]DuplicateKey) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case json.Delim('{'):
		seen := make(map[string]bool)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			if seen[key] {
				*dups = append(*dups, DuplicateKey{Path: path, Key: key})
			}
			seen[key] = true

			kp := key
			if path != "" {
				kp = path + "." + key
			}
			if err := walkJSON(dec, kp, dups); err != nil {
				return err
			}
		}
	case json.Delim('['):
		for i := 0; dec.More(); i++ {
			if err := walkJSON(dec, path+"["+strconv.Itoa(i)+"]", dups); err != nil {
				return err
			}
		}
	default:
		return nil
	}

	// Closing delimiter
	_, err = dec.Token()
	return err
}

// DecodeJSON unmarshals b into out and reports any problems to e: syntax
// and type errors along with where they are in b, and keys repeated
// within an object, which encoding/json would otherwise resolve silently
// by keeping the last one. It returns true if there were no problems.
func DecodeJSON[T any](b []byte, out *T, e *ErrorLogger) bool {
	defer e.CheckDepth(e.CurrentDepth())

	ok := true
	for _, d := range DuplicateKeys(b) {
		if d.Path != "" {
			e.Push(d.Path)
		}
		e.ErrorString("duplicate key %q", d.Key)
		if d.Path != "" {
			e.Pop()
		}
		ok = false
	}

	if err := json.Unmarshal(b, out); err != nil {
		e.Error(locateJSONError(b, err))
		ok = false
	}
	return ok
}

func locateJSONError(b []byte, err error) error {
	var serr *json.SyntaxError
	var terr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &serr):
		return fmt.Errorf("%s: %w", jsonOffset(b, serr.Offset), err)
	case errors.As(err, &terr):
		return fmt.Errorf("%s: %s value for %q must be %s", jsonOffset(b, terr.Offset), terr.Value,
			terr.Field, terr.Type)
	default:
		return err
	}
}

// jsonOffset converts a byte offset into b to a line and character, both
// starting at 1.
func jsonOffset(b []byte, offset int64) string {
	pre := b[:min(max(int(offset), 0), len(b))]
	line := bytes.Count(pre, []byte{'\n'}) + 1
	char := len(pre) - bytes.LastIndexByte(pre, '\n')
	return fmt.Sprintf("line %d, character %d", line, char)
}
