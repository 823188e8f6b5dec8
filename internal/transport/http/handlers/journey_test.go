package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"nippo/internal/app/server"
	"nippo/internal/platform/config"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error any             `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		Addr:               ":0",
		DatabaseURL:        dbURL,
		JWTSecret:          "test-secret",
		Environment:        "test",
		TokenTTL:           time.Hour,
		SeedAdminEmail:     "admin@test.local",
		SeedAdminPassword:  "ChangeMe123!",
		RunMigrations:      true,
		MigrationsDir:      "../../../../migrations",
		RunSeed:            true,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
	}
}

func TestDailyReportJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	year := 2031
	clearMonth(t, app, year, 8)
	memberName := fmt.Sprintf("journey-%d", time.Now().UnixNano())

	postJSON(t, client, ts.URL+"/api/v1/roster", token, map[string]any{
		"name":       memberName,
		"hourlyRate": 1200,
	})

	// An unreported day comes back seeded from the roster, everyone off.
	fresh := getDay(t, client, ts.URL, token, year, 8, 15)
	if len(fresh["members"].([]any)) == 0 {
		t.Fatal("expected seeded members from roster")
	}

	saved := putDay(t, client, ts.URL, token, year, 8, 15, map[string]any{
		"weather": "sunny",
		"cash":    50000,
		"card":    12000,
		"eMoney":  3000,
		"guests":  40,
		"members": []map[string]any{{
			"name":       memberName,
			"status":     "working",
			"fromHour":   18,
			"fromMin":    0,
			"toHour":     23,
			"toMin":      0,
			"hourlyRate": 1200,
		}},
		"suppliers":     map[string]float64{"meat": 8000},
		"denominations": map[string]int{"1000": 30},
	})

	// 18:00-23:00 at 1200: four plain hours plus one at the 1.25 night rate.
	wantSalary := 4*1200 + 1200*1.25
	if got := saved["staffSalaries"].(float64); got != wantSalary {
		t.Fatalf("expected staffSalaries %v, got %v", wantSalary, got)
	}
	if got := saved["dayOfWeek"].(string); got == "" {
		t.Fatal("expected dayOfWeek to be filled in")
	}

	summary := getJSONMap(t, client, dayURL(ts.URL, year, 8, 15)+"/summary", token)
	day := summary["day"].(map[string]any)
	if got := day["totalSales"].(float64); got != 65000 {
		t.Fatalf("expected totalSales 65000, got %v", got)
	}
	if got := day["workingHeadcount"].(float64); got != 1 {
		t.Fatalf("expected one working member, got %v", got)
	}
	// Admins see the adjusted block alongside the raw figures.
	if _, ok := summary["adjusted"]; !ok {
		t.Fatal("expected adjusted summary for admin")
	}

	staff := getJSONMap(t, client, fmt.Sprintf("%s/api/v1/reports/%d/8/staff/%s", ts.URL, year, memberName), token)
	if got := staff["totalSalary"].(float64); got != wantSalary {
		t.Fatalf("expected staff monthly salary %v, got %v", wantSalary, got)
	}
	if got := staff["totalHours"].(float64); got != 5 {
		t.Fatalf("expected 5 worked hours, got %v", got)
	}
}

func TestCashAdjustmentAndAccountingJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	adminToken := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	year := 2032
	clearMonth(t, app, year, 3)
	memberName := fmt.Sprintf("adjust-%d", time.Now().UnixNano())
	postJSON(t, client, ts.URL+"/api/v1/roster", adminToken, map[string]any{
		"name":       memberName,
		"hourlyRate": 1000,
	})

	putDay(t, client, ts.URL, adminToken, year, 3, 1, map[string]any{
		"cash":   80000,
		"guests": 30,
		"members": []map[string]any{{
			"name": memberName, "status": "working",
			"fromHour": 17, "fromMin": 0, "toHour": 22, "toMin": 0,
			"hourlyRate": 1000,
		}},
		"suppliers":     map[string]float64{},
		"denominations": map[string]int{},
	})

	accountantEmail := fmt.Sprintf("acct-%d@test.local", time.Now().UnixNano())
	postJSON(t, client, ts.URL+"/api/v1/users", adminToken, map[string]any{
		"email":    accountantEmail,
		"name":     "Accountant",
		"role":     "accountant",
		"password": "Accountant123!",
	})
	accountantToken := login(t, client, ts.URL, accountantEmail, "Accountant123!")

	// Locked until an admin adjusts at least one day of the month.
	monthURL := fmt.Sprintf("%s/api/v1/accounting/%d/3", ts.URL, year)
	getJSONStatus(t, client, monthURL, accountantToken, http.StatusForbidden)

	// The overlay only moves in 10000 steps and never exceeds the cash.
	postJSONStatus(t, client, fmt.Sprintf("%s/api/v1/reports/%d/3/adjustments", ts.URL, year), adminToken,
		[]map[string]any{{"day": 1, "adjustedCash": 5000}}, http.StatusBadRequest)
	postJSONStatus(t, client, fmt.Sprintf("%s/api/v1/reports/%d/3/adjustments", ts.URL, year), adminToken,
		[]map[string]any{{"day": 1, "adjustedCash": 90000}}, http.StatusBadRequest)

	postJSON(t, client, fmt.Sprintf("%s/api/v1/reports/%d/3/adjustments", ts.URL, year), adminToken,
		[]map[string]any{{"day": 1, "adjustedCash": 20000}})

	month := getJSONMap(t, client, monthURL, accountantToken)
	days := month["days"].([]any)
	if len(days) != 1 {
		t.Fatalf("expected one accounting day, got %d", len(days))
	}
	first := days[0].(map[string]any)
	if got := first["cash"].(float64); got != 60000 {
		t.Fatalf("expected adjusted cash 60000, got %v", got)
	}

	// Saving the day again must not clear the adjustment.
	putDay(t, client, ts.URL, adminToken, year, 3, 1, map[string]any{
		"cash":   80000,
		"guests": 31,
		"members": []map[string]any{{
			"name": memberName, "status": "working",
			"fromHour": 17, "fromMin": 0, "toHour": 22, "toMin": 0,
			"hourlyRate": 1000,
		}},
		"suppliers":     map[string]float64{},
		"denominations": map[string]int{},
	})
	month = getJSONMap(t, client, monthURL, accountantToken)
	first = month["days"].([]any)[0].(map[string]any)
	if got := first["cash"].(float64); got != 60000 {
		t.Fatalf("expected adjustment to survive a resave, got cash %v", got)
	}

	// The accountant cannot touch reports or adjustments.
	postJSONStatus(t, client, fmt.Sprintf("%s/api/v1/reports/%d/3/adjustments", ts.URL, year), accountantToken,
		[]map[string]any{{"day": 1, "adjustedCash": 0}}, http.StatusForbidden)

	resp := getRaw(t, client, monthURL+"/export.xlsx", accountantToken)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected xlsx export 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected xlsx content type %q", ct)
	}
}

func TestSaveDayValidationGate(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	client := ts.Client()
	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	year := 2033
	clearMonth(t, app, year, 6)

	// Sales without a guest count, and nobody on duty: both gates fire.
	req, err := http.NewRequest(http.MethodPut, dayURL(ts.URL, year, 6, 10), bytes.NewBufferString(`{
		"cash": 10000, "guests": 0, "members": [],
		"suppliers": {}, "denominations": {}
	}`))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected validation failure 400, got %d", resp.StatusCode)
	}

	// Nothing may be persisted for a rejected day.
	getJSONStatus(t, client, dayURL(ts.URL, year, 6, 10)+"/summary", token, http.StatusNotFound)
}

// clearMonth wipes a month's rows so reruns against the same database start
// from a clean slate.
func clearMonth(t *testing.T, app *server.App, year, month int) {
	t.Helper()
	if _, err := app.Pool.Exec(context.Background(), "DELETE FROM day_reports WHERE year = $1 AND month = $2", year, month); err != nil {
		t.Fatalf("failed to clear month: %v", err)
	}
}

func dayURL(baseURL string, year, month, day int) string {
	return fmt.Sprintf("%s/api/v1/reports/%d/%d/%d", baseURL, year, month, day)
}

func getDay(t *testing.T, client *http.Client, baseURL, token string, year, month, day int) map[string]any {
	t.Helper()
	return getJSONMap(t, client, dayURL(baseURL, year, month, day), token)
}

func putDay(t *testing.T, client *http.Client, baseURL, token string, year, month, day int, body map[string]any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPut, dayURL(baseURL, year, month, day), bytes.NewBuffer(raw))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(rawResp))
	}
	var env envelope
	if err := json.Unmarshal(rawResp, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("failed to decode day payload: %v", err)
	}
	return payload
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	var payload map[string]any
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("expected token")
	}
	return token
}

func postJSON(t *testing.T, client *http.Client, url, token string, body any) envelope {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func postJSONStatus(t *testing.T, client *http.Client, url, token string, body any, wantStatus int) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", wantStatus, resp.StatusCode, string(body))
	}
}

func getJSONMap(t *testing.T, client *http.Client, url, token string) map[string]any {
	t.Helper()
	resp := getRaw(t, client, url, token)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	return payload
}

func getJSONStatus(t *testing.T, client *http.Client, url, token string, wantStatus int) {
	t.Helper()
	resp := getRaw(t, client, url, token)
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", wantStatus, resp.StatusCode, string(body))
	}
}

func getRaw(t *testing.T, client *http.Client, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
