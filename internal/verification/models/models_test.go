package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "9876543210",
		"+91 98765 43210": "9876543210",
		"91-9876543210":   "9876543210",
		"09876543210":     "9876543210",
		"(987) 654-3210":  "9876543210",
		"":                "",
		"12345":           "12345",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeMobile(in), "input %q", in)
	}
}

func TestDeriveDID(t *testing.T) {
	did := DeriveDID("9437012345")
	assert.Equal(t, "0x95b4ccc2b7b0c9f316aa2b733c6b4d8c29640576b3423bbf8b00d982812f864c", did)
	assert.Equal(t, did, DeriveDID("+91 94370 12345"), "formatting must not change the DID")
	assert.Len(t, did, 66)
}
