package validation

import (
	"fmt"
	"unicode/utf8"

	dErrors "kisan/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// Slice element count limits
const (
	// MaxSchemeIDs bounds a combinations request to the catalog size.
	MaxSchemeIDs = 9
)

// String length limits, counted in characters so Odia text is not penalized.
const (
	MaxDistrictLength    = 100
	MaxCropLength        = 50
	MaxSchemeIDLength    = 40
	MaxProcessorIDLength = 40
)

// Numeric limits
const (
	// MaxQuantityQuintals caps a single projection request.
	MaxQuantityQuintals = 100000
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckEachStringLength validates every element of values.
func CheckEachStringLength(fieldName string, values []string, max int) error {
	for _, v := range values {
		if err := CheckStringLength(fieldName, v, max); err != nil {
			return err
		}
	}
	return nil
}
