// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pinlist parses the comma-separated, 1-based pin-number lists
// used by caemu's struct-tag pin binding and by the tester harness's pin
// arguments, e.g. "1,4,10,13".
package pinlist

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse splits s on commas and parses each field as a pin number. Fields
// are trimmed of surrounding whitespace. An empty string yields a nil
// slice.
//
func Parse(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	ids := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "pinlist: invalid pin number %q", f)
		}
		ids[i] = n
	}
	return ids, nil
}

// MustParse is like Parse but panics on error. It is meant for use in
// package-level struct tag processing, where a malformed tag is a
// programmer error caught the first time the component is built.
//
func MustParse(s string) []int {
	ids, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ids
}
