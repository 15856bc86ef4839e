package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubwire/stubwire/pkg/declarative"
)

func declEntries(path string, status int) []declarative.Entry {
	return []declarative.Entry{{Path: path, Status: status}}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeFile(t, "fixture.yaml", `
name: users suite
fallbackStatus: 404
endpoints:
  - path: /api/users
    verb: GET
    status: 200
    text: "Hello, World!"
  - path: /api/users
    verb: POST
    status: 201
    jsonPairs: "created=true"
    headers:
      - "X-Request-Id=abc"
units:
  - name: delete op
    endpoints:
      - path: /api/users/1
        verb: DELETE
        status: 204
`)

	f, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "users suite", f.Name)
	assert.Equal(t, 404, f.FallbackStatus)
	require.Len(t, f.Endpoints, 2)
	assert.Equal(t, "/api/users", f.Endpoints[0].Path)
	assert.Equal(t, "Hello, World!", f.Endpoints[0].Text)
	assert.Equal(t, []string{"X-Request-Id=abc"}, f.Endpoints[1].Headers)
	require.Len(t, f.Units, 1)
	assert.Equal(t, "delete op", f.Units[0].Name)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "fixture.json", `{
  "name": "suite",
  "provider": {"name": "fixtures", "method": "UsersRouter"},
  "endpoints": [{"path": "/ping", "status": 200, "text": "pong"}]
}`)

	f, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Provider)
	assert.Equal(t, "fixtures", f.Provider.Name)
	assert.Equal(t, "UsersRouter", f.Provider.Method)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "empty.yaml", "   \n"))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "bad.yaml", "endpoints: ["))
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "bad.json", "{"))
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("invalid entry rejected at load time", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "conflict.yaml", `
endpoints:
  - path: /x
    status: 200
    text: a
    raw: b
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}

func TestFixtureUnits(t *testing.T) {
	f := &Fixture{
		Name:      "suite",
		Endpoints: declEntries("/shared", 200),
		Units: []Fixture{
			{Name: "op-a", Endpoints: declEntries("/a", 201)},
			{Name: "op-b", Endpoints: declEntries("/b", 202)},
		},
	}

	t.Run("root unit", func(t *testing.T) {
		u := f.Unit()
		assert.Equal(t, "suite", u.Name)
		assert.Nil(t, u.Parent)
		assert.Len(t, u.ScopedEntries(), 1)
	})

	t.Run("nested unit carries parent chain", func(t *testing.T) {
		u, err := f.UnitNamed("op-a")
		require.NoError(t, err)
		assert.Equal(t, "op-a", u.Name)
		require.NotNil(t, u.Parent)
		assert.Equal(t, "suite", u.Parent.Name)

		entries := u.ScopedEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, "/a", entries[0].Path, "own entries first")
		assert.Equal(t, "/shared", entries[1].Path)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := f.UnitNamed("op-z")
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})
}
