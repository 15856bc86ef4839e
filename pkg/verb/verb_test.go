package verb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		want    Verb
		wantErr bool
	}{
		{name: "uppercase get", method: "GET", want: GET},
		{name: "lowercase get", method: "get", want: GET},
		{name: "mixed case post", method: "PoSt", want: POST},
		{name: "put", method: "PUT", want: PUT},
		{name: "delete", method: "delete", want: DELETE},
		{name: "surrounding whitespace", method: " GET ", want: GET},
		{name: "patch is unsupported", method: "PATCH", wantErr: true},
		{name: "head is unsupported", method: "HEAD", wantErr: true},
		{name: "empty method", method: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.method)
			if tt.wantErr {
				require.Error(t, err)
				var unsupported *UnsupportedError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, tt.method, unsupported.Method)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("all contains every verb", func(t *testing.T) {
		s := AllSet()
		assert.Equal(t, 4, s.Len())
		for _, v := range All() {
			assert.True(t, s.Contains(v))
		}
	})

	t.Run("singleton", func(t *testing.T) {
		s := Of(POST)
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(POST))
		assert.False(t, s.Contains(GET))
	})

	t.Run("zero value is empty", func(t *testing.T) {
		var s Set
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains(GET))
	})

	t.Run("slice is canonical order", func(t *testing.T) {
		s := Of(DELETE, GET, POST)
		assert.Equal(t, []Verb{GET, POST, DELETE}, s.Slice())
		assert.Equal(t, "GET,POST,DELETE", s.String())
	})
}
