package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nik-parser/internal/config"
	"nik-parser/internal/realtime"
	"nik-parser/internal/reference"
)

var fixedNow = time.Date(2023, time.June, 1, 8, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, load bool) *fiber.App {
	t.Helper()

	logger := quietLogger()
	loader := reference.NewLoader(reference.NewJSONSource("../reference/testdata"), logger)
	if load {
		_, err := loader.Reload(context.Background())
		require.NoError(t, err)
	}

	return NewApp(Deps{
		Loader: loader,
		Hub:    realtime.NewHub(logger),
		Clock:  func() time.Time { return fixedNow },
		Logger: logger,
	})
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestRoot(t *testing.T) {
	code, body := do(t, newTestApp(t, false), "GET", "/", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "NIK parser API jalan", body["message"])
}

func TestPreforkFromEnv(t *testing.T) {
	assert.False(t, newTestApp(t, false).Config().Prefork)

	t.Setenv("APP_PREFORK", "true")
	assert.True(t, newTestApp(t, false).Config().Prefork)
}

func TestParseNIKNotReady(t *testing.T) {
	app := newTestApp(t, false)

	code, body := do(t, app, "GET", "/api/nik/3576447103910003", "", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
	assert.NotEmpty(t, body["error"])

	code, _ = do(t, app, "GET", "/api/reference/provinces", "", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)

	code, body = do(t, app, "GET", "/api/reference/status", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, false, body["data"].(map[string]any)["ready"])
}

func TestParseNIKValid(t *testing.T) {
	code, body := do(t, newTestApp(t, true), "GET", "/api/nik/3576447103910003", "", nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "3576447103910003", data["nik"])
	assert.Equal(t, true, data["isValid"])
	assert.Equal(t, "1991-03-31", data["birthDate"])
	assert.Equal(t, "female", data["gender"])
	assert.Equal(t, "0003", data["uniqueCode"])
	assert.Equal(t, map[string]any{"id": "35", "name": "Jawa Timur"}, data["province"])
	assert.Equal(t, map[string]any{"id": "3576", "name": "Kota Mojokerto"}, data["regency"])
	assert.Equal(t, map[string]any{"id": "357644", "name": "Kranggan", "zipCode": "61321"}, data["district"])
}

func TestParseNIKInvalidOmitsFields(t *testing.T) {
	code, body := do(t, newTestApp(t, true), "GET", "/api/nik/3576447103910000", "", nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, map[string]any{"nik": "3576447103910000", "isValid": false}, data)
}

func TestParseBatch(t *testing.T) {
	app := newTestApp(t, true)

	code, body := do(t, app, "POST", "/api/nik/parse", `{"niks":["3576447103910003","0000000000000000","abc"]}`, nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].([]any)
	require.Len(t, data, 3)
	assert.Equal(t, true, data[0].(map[string]any)["isValid"])
	assert.Equal(t, false, data[1].(map[string]any)["isValid"])
	assert.Equal(t, "abc", data[2].(map[string]any)["nik"])
}

func TestParseBatchValidation(t *testing.T) {
	app := newTestApp(t, true)

	code, _ := do(t, app, "POST", "/api/nik/parse", `{"niks":[]}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = do(t, app, "POST", "/api/nik/parse", `not json`, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	niks := make([]string, 101)
	for i := range niks {
		niks[i] = "3576447103910003"
	}
	payload, err := json.Marshal(map[string][]string{"niks": niks})
	require.NoError(t, err)
	code, _ = do(t, app, "POST", "/api/nik/parse", string(payload), nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestReferenceListing(t *testing.T) {
	app := newTestApp(t, true)

	code, body := do(t, app, "GET", "/api/reference/provinces", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(4), body["total"])

	code, body = do(t, app, "GET", "/api/reference/provinces/35/regencies", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(2), body["total"])

	code, body = do(t, app, "GET", "/api/reference/provinces/35/regencies?search=surabaya", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])

	code, body = do(t, app, "GET", "/api/reference/regencies/3576/districts", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(3), body["total"])

	code, _ = do(t, app, "GET", "/api/reference/provinces/99/regencies", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = do(t, app, "GET", "/api/reference/regencies/9999/districts", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestReferenceStatusAfterLoad(t *testing.T) {
	code, body := do(t, newTestApp(t, true), "GET", "/api/reference/status", "", nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["ready"])
	assert.Equal(t, "json", data["source"])
	assert.Equal(t, map[string]any{"provinces": float64(4), "regencies": float64(5), "districts": float64(7)}, data["counts"])
}

func TestReloadRequiresAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BASIC_AUTH_USER", "")
	app := newTestApp(t, false)

	code, _ := do(t, app, "POST", "/admin/reference/reload", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	operator, err := config.GenerateToken(2, "Operator", "op@example.com", "operator")
	require.NoError(t, err)
	code, _ = do(t, app, "POST", "/admin/reference/reload", "", map[string]string{"Authorization": "Bearer " + operator})
	assert.Equal(t, fiber.StatusForbidden, code)

	admin, err := config.GenerateToken(1, "Admin", "admin@example.com", "admin")
	require.NoError(t, err)
	code, body := do(t, app, "POST", "/admin/reference/reload", "", map[string]string{"Authorization": "Bearer " + admin})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, body = do(t, app, "GET", "/api/nik/3576447103910003", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["data"].(map[string]any)["isValid"])
}

func TestReloadWithBasicAuth(t *testing.T) {
	t.Setenv("BASIC_AUTH_USER", "ops")
	t.Setenv("BASIC_AUTH_PASS", "secret")
	app := newTestApp(t, false)

	code, _ := do(t, app, "POST", "/admin/reference/reload", "", map[string]string{"Authorization": "Basic b3BzOndyb25n"}) // ops:wrong
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = do(t, app, "POST", "/admin/reference/reload", "", map[string]string{"Authorization": "Basic b3BzOnNlY3JldA=="}) // ops:secret
	assert.Equal(t, fiber.StatusOK, code)
}

func TestLoginWithoutDatabase(t *testing.T) {
	code, _ := do(t, newTestApp(t, false), "POST", "/admin/login", `{"email":"a@example.com","password":"x"}`, nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	code, _ := do(t, newTestApp(t, true), "GET", "/ws/reference", "", nil)
	assert.Equal(t, fiber.StatusUpgradeRequired, code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, true)
	do(t, app, "GET", "/api/nik/3576447103910003", "", nil)

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "nik_parse_total")
	assert.Contains(t, string(raw), "nik_reference_entries")
}
