package testkit_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bedjos/storefront/pkg/mail"
	"github.com/bedjos/storefront/pkg/testkit"
)

var testHandler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/health":
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	case "/echo":
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		body["request_id"] = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(body) //nolint:errcheck
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`)) //nolint:errcheck
	}
})

func TestRunDir(t *testing.T) {
	testkit.RunDir(t, testHandler, "testdata")
}

func TestLoadScenarioValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x","requestUrl":"/"}`), 0o644))

	_, err := testkit.LoadScenario(path)
	assert.ErrorContains(t, err, "expectedCode is required")
}

func TestLoadScenarioDefaultsMethod(t *testing.T) {
	s, err := testkit.LoadScenario("testdata/health_check.json")
	require.NoError(t, err)
	assert.Equal(t, "GET", s.RequestMethod)
	assert.Equal(t, 200, s.ExpectedCode)
}

func TestDoAndJSONMap(t *testing.T) {
	rec := testkit.Do(t, testHandler, testkit.Request{
		Method: http.MethodPost,
		URL:    "/echo",
		Body:   map[string]interface{}{"quantity": 2},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(2), testkit.JSONMap(t, rec)["quantity"])
}

func TestNewDB(t *testing.T) {
	type thing struct {
		ID   uint
		Name string
	}
	db := testkit.NewDB(t, &thing{})
	require.NoError(t, db.Create(&thing{Name: "a"}).Error)

	var n int64
	require.NoError(t, db.Model(&thing{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestMockMailer(t *testing.T) {
	m := testkit.NewMockMailer()
	require.NoError(t, m.Send(mail.To("a@example.com").Subject("hi")))
	<-m.Sent()
	require.Len(t, m.Messages(), 1)
	assert.Equal(t, "hi", m.Messages()[0].SubjectLine())

	failing := testkit.NewMockMailer()
	failing.On("Send", mock.Anything).Return(assert.AnError)
	assert.ErrorIs(t, failing.Send(mail.To("a@example.com")), assert.AnError)
	failing.AssertNumberOfCalls(t, "Send", 1)
}
