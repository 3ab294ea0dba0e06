package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request describes one call made with Do.
type Request struct {
	Method string
	URL    string
	Body   interface{} // marshalled to JSON unless nil; a string is sent as-is
	Token  string      // sent as "Authorization: Bearer <token>"
}

// Do fires req at handler and returns the recorded response.
func Do(t *testing.T, handler http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		var err error
		body, err = json.Marshal(b)
		require.NoError(t, err)
	}

	r := httptest.NewRequest(req.Method, req.URL, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if req.Token != "" {
		r.Header.Set("Authorization", "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec
}

// DecodeJSON unmarshals the recorded body into dest.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), "body: %s", rec.Body.String())
}

// JSONMap decodes the recorded body as an object.
func JSONMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	DecodeJSON(t, rec, &out)
	return out
}
