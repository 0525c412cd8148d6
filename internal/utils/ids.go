// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseID parses a base-10 int64 identifier taken from a URL path. Input that
// is not an integer (letters, decimals, whitespace, overflow) is an error
// wrapping strconv.ErrSyntax or strconv.ErrRange. Range checks such as
// rejecting zero are left to the store, where such ids simply match no row.
//
// Example:
//
//	id, err := utils.ParseID("42")   // 42, nil
//	id, err = utils.ParseID("-1")    // -1, nil
//	id, err = utils.ParseID("abc")   // 0, invalid id "abc": invalid syntax
func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return n, nil
}
