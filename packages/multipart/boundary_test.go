package multipart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBoundary(t *testing.T) {
	allowed := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz'()+_,-./:=?"

	testcases := []struct {
		desc     string
		boundary string
		wantErr  bool
	}{
		{desc: "single char", boundary: "B"},
		{desc: "every allowed char", boundary: allowed[:70]},
		{desc: "punctuation", boundary: "'()+_,-./:=?"},
		{desc: "70 chars", boundary: strings.Repeat("a", 70)},
		{desc: "71 chars", boundary: strings.Repeat("a", 71), wantErr: true},
		{desc: "empty", boundary: "", wantErr: true},
		{desc: "space", boundary: "has space", wantErr: true},
		{desc: "quote", boundary: `a"b`, wantErr: true},
		{desc: "semicolon", boundary: "a;b", wantErr: true},
		{desc: "non ascii", boundary: "bön", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			err := ValidateBoundary(tc.boundary)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBoundary)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRandomBoundary(t *testing.T) {
	b := RandomBoundary()

	assert.True(t, strings.HasPrefix(b, DefaultBoundaryPrefix))
	assert.Len(t, b, len(DefaultBoundaryPrefix)+16)
	assert.NoError(t, ValidateBoundary(b))
	assert.Regexp(t, `^hitpart\.boundary\.[0-9a-f]{16}$`, b)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[RandomBoundary()] = true
	}
	assert.Greater(t, len(seen), 95)
}

func TestNewBoundary_CustomPrefix(t *testing.T) {
	b := NewBoundary("upload-")
	assert.Regexp(t, `^upload-[0-9a-f]{16}$`, b)
}
