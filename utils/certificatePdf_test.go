package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCertificatePDF(t *testing.T) {
	issued := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	data, err := RenderCertificatePDF("Ada Lovelace", "Go Basics", issued)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCertificateFileName(t *testing.T) {
	name := CertificateFileName(7, 3, "Go Basics: From Zero to Hero!")

	// Deterministic for the same (student, course).
	assert.Equal(t, name, CertificateFileName(7, 3, "Go Basics: From Zero to Hero!"))
	// Different students never collide, even with identical titles.
	assert.NotEqual(t, name, CertificateFileName(8, 3, "Go Basics: From Zero to Hero!"))

	// No raw title characters leak into the file name.
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9-]+-[0-9a-f]{10}\.pdf$`), name)
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Go Basics", "go-basics"},
		{"  C++ / systems!  ", "c-systems"},
		{"***", "certificate"},
		{"UPPER case", "upper-case"},
		{"a very long title that keeps going and going and going", "a-very-long-title-that-keeps-going-and-g"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}
