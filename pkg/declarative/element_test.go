package declarative

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubwire/stubwire/pkg/capability"
	"github.com/stubwire/stubwire/pkg/verb"
)

func TestNewElementValidation(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantField string
	}{
		{
			name:      "missing status",
			entry:     Entry{Text: "hi"},
			wantField: "status",
		},
		{
			name:      "status below 100",
			entry:     Entry{Status: 99, Text: "hi"},
			wantField: "status",
		},
		{
			name:      "text and json set",
			entry:     Entry{Status: 200, Text: "hi", JSONPairs: "a=1"},
			wantField: "content",
		},
		{
			name:      "text and raw set",
			entry:     Entry{Status: 200, Text: "hi", Raw: "raw"},
			wantField: "content",
		},
		{
			name:      "all three set",
			entry:     Entry{Status: 200, Text: "hi", JSONPairs: "a=1", Raw: "raw"},
			wantField: "content",
		},
		{
			name:      "verb outside enumeration",
			entry:     Entry{Status: 200, Verb: "PATCH"},
			wantField: "verb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := NewElement(tt.entry)
			require.Error(t, err)
			assert.Nil(t, el)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewElementDefaults(t *testing.T) {
	el, err := NewElement(Entry{Status: 204})
	require.NoError(t, err)

	assert.Equal(t, "/", el.BasePath())
	assert.Equal(t, 1, el.Verbs().Len())
	assert.True(t, el.Verbs().Contains(verb.GET))
}

func TestElementSingleVerb(t *testing.T) {
	el, err := NewElement(Entry{Path: "/api", Verb: "post", Status: 201, Text: "ok"})
	require.NoError(t, err)

	assert.True(t, el.Verbs().Contains(verb.POST))
	assert.Equal(t, 1, el.Verbs().Len())

	require.NotNil(t, el.Post(nil))
	assert.Nil(t, el.Get(nil), "other verbs defer")
	assert.Nil(t, el.Put(nil))
	assert.Nil(t, el.Delete(nil))
}

func TestElementTextResponse(t *testing.T) {
	el, err := NewElement(Entry{Path: "/api/users", Status: 200, Text: "Hello, World!"})
	require.NoError(t, err)

	resp := el.Get(&capability.Request{Path: "/api/users", Method: "GET"})
	require.NotNil(t, resp)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Hello, World!", string(resp.Body))
	assert.Equal(t, "text/plain", resp.Header("Content-Type"))
}

func TestElementJSONPairsResponse(t *testing.T) {
	el, err := NewElement(Entry{Status: 200, JSONPairs: "name=jo,age=30"})
	require.NoError(t, err)

	resp := el.Get(nil)
	require.NotNil(t, resp)
	assert.Equal(t, `{"name":"jo","age":30}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header("Content-Type"))
}

func TestElementRawResponse(t *testing.T) {
	el, err := NewElement(Entry{Status: 200, Raw: "<xml/>"})
	require.NoError(t, err)

	resp := el.Get(nil)
	require.NotNil(t, resp)
	assert.Equal(t, "<xml/>", string(resp.Body))
	assert.False(t, resp.HasHeader("Content-Type"), "raw content infers nothing")
}

func TestElementHeaderParsing(t *testing.T) {
	el, err := NewElement(Entry{
		Status:  200,
		Headers: []string{"X-One=1", "garbage", "X-Two=a=b"},
	})
	require.NoError(t, err)

	resp := el.Get(nil)
	require.NotNil(t, resp)
	require.Len(t, resp.Headers, 2, "entries without '=' are dropped")
	assert.Equal(t, capability.Header{Name: "X-One", Value: "1"}, resp.Headers[0])
	assert.Equal(t, capability.Header{Name: "X-Two", Value: "a=b"}, resp.Headers[1], "split on first '='")
}

func TestElementContentTypeResolution(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "inferred text",
			entry: Entry{Status: 200, Text: "hi"},
			want:  "text/plain",
		},
		{
			name:  "explicit contentType beats inferred",
			entry: Entry{Status: 200, Text: "hi", ContentType: "text/html"},
			want:  "text/html",
		},
		{
			name:  "explicit header beats inferred",
			entry: Entry{Status: 200, Text: "hi", Headers: []string{"Content-Type=text/markdown"}},
			want:  "text/markdown",
		},
		{
			name:  "explicit contentType beats explicit header",
			entry: Entry{Status: 200, Text: "hi", Headers: []string{"Content-Type=text/markdown"}, ContentType: "text/html"},
			want:  "text/html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := NewElement(tt.entry)
			require.NoError(t, err)
			resp := el.Get(nil)
			require.NotNil(t, resp)
			assert.Equal(t, tt.want, resp.Header("Content-Type"))
			// exactly one Content-Type header survives resolution
			count := 0
			for _, h := range resp.Headers {
				if h.Name == "Content-Type" {
					count++
				}
			}
			assert.Equal(t, 1, count)
		})
	}
}

func TestElementResponseIsolation(t *testing.T) {
	el, err := NewElement(Entry{Status: 200, Text: "hi"})
	require.NoError(t, err)

	first := el.Get(nil)
	first.StatusCode = 500
	first.Headers[0].Value = "mutated"

	second := el.Get(nil)
	assert.Equal(t, 200, second.StatusCode)
	assert.Equal(t, "text/plain", second.Header("Content-Type"))
}
