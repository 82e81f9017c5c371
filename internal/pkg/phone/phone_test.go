//go:build unit

package phone_test

import (
	"testing"

	"cavilia/internal/pkg/phone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "formatted with country code", input: "+55 11 99999-9999", expected: "11999999999"},
		{name: "already normalized", input: "11999999999", expected: "11999999999"},
		{name: "punctuation only stripped", input: "(11) 99999-9999", expected: "11999999999"},
		{name: "short number keeps leading 55", input: "5599", expected: "5599"},
		{name: "empty", input: "", expected: ""},
		{name: "letters only", input: "abc", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, phone.Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"+55 11 99999-9999", "11 98888-7777", "5511977776666"}
	for _, input := range inputs {
		once := phone.Normalize(input)
		assert.Equal(t, once, phone.Normalize(once), "normalizing twice must not change the result for %q", input)
	}
}
