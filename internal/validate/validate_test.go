package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-planner/internal/validate"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ana@example.com", true},
		{"  Ana.Souza@Example.COM ", true},
		{"ana+trip@mail.example.org", true},
		{"", false},
		{"   ", false},
		{"ana", false},
		{"ana@", false},
		{"@example.com", false},
		{"ana example@example.com", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.Email(tc.in))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", validate.NormalizeEmail("  ANA@Example.com\n"))
}

func TestDestination(t *testing.T) {
	assert.False(t, validate.Destination(""))
	assert.False(t, validate.Destination("   Rio  "))
	assert.True(t, validate.Destination("Roma"))
	// Counted in characters, not bytes.
	assert.False(t, validate.Destination("São"))
	assert.True(t, validate.Destination("Ilhéus"))
}
