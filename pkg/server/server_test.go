package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/store"
)

const chartJSON = `{
  "title": "Requests",
  "width": 400,
  "height": 300,
  "series": [{"kind": "line", "points": [[0, 1], [1, 3], [2, 2]]}]
}`

const chartTOML = `
title = "Requests"
width = 400
height = 300

[[series]]
kind = "area"
values = [1, 3, 2]
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := New(Config{Runner: pipeline.NewRunner(nil, nil, nil), Store: store.NewMemoryStore()})
	t.Cleanup(func() { s.Close() })
	return s
}

func do(t *testing.T, s *Server, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "", "")
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("generated request id %q is not a UUID", rec.Header().Get(RequestIDHeader))
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed client request id should be replaced")
	}
}

func TestRender(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		wantType    string
		wantPrefix  string
	}{
		{"svg json body", "/v1/render", "application/json", chartJSON, "image/svg+xml", "<svg"},
		{"svg toml body", "/v1/render?format=svg", "application/toml", chartTOML, "image/svg+xml", "<svg"},
		{"sniffed toml", "/v1/render", "", chartTOML, "image/svg+xml", "<svg"},
		{"png", "/v1/render?format=png&scale=1", "application/json", chartJSON, "image/png", "\x89PNG"},
		{"layout", "/v1/render?format=json&width=640", "application/json", chartJSON, "application/json", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, tt.contentType, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
			}
			if !bytes.HasPrefix(rec.Body.Bytes(), []byte(tt.wantPrefix)) {
				t.Errorf("body does not start with %q", tt.wantPrefix)
			}
			if rec.Header().Get(ChartHashHeader) == "" {
				t.Error("missing chart hash header")
			}
		})
	}
}

func TestRenderLayoutWidth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render?format=json&width=640", "application/json", chartJSON)
	l, err := pipeline.UnmarshalLayout(rec.Body.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 640 || l.Height != 300 {
		t.Errorf("layout size = %vx%v, want 640x300", l.Width, l.Height)
	}
}

func TestRenderErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantCode   errors.Code
	}{
		{"bad format", "/v1/render?format=gif", chartJSON, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad width", "/v1/render?width=wide", chartJSON, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"huge width", "/v1/render?width=100000", chartJSON, http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"huge scale", "/v1/render?format=png&scale=10000", chartJSON, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"nan scale", "/v1/render?format=png&scale=NaN", chartJSON, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"empty body", "/v1/render", "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"malformed", "/v1/render", "{not json", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"unknown field", "/v1/render", `{"titel": "x"}`, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"invalid chart", "/v1/render", `{"series": [{"kind": "pie"}]}`, http.StatusBadRequest, errors.ErrCodeInvalidChart},
		{"log axis at zero", "/v1/render", `{"axes": [{"kind": "log", "position": "left", "min": 0, "max": 100}]}`, http.StatusBadRequest, errors.ErrCodeInvalidChart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, "application/json", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			body := decodeError(t, rec)
			if body.Error.Code != string(tt.wantCode) {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
			if body.RequestID == "" {
				t.Error("error body should carry the request id")
			}
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	s := New(Config{MaxBodyBytes: 16})
	defer s.Close()
	rec := do(t, s, http.MethodPost, "/v1/render", "application/json", chartJSON)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestChartsCRUD(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/charts", "application/json", chartJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created store.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Title != "Requests" {
		t.Fatalf("created = %+v", created)
	}
	if loc := rec.Header().Get("Location"); loc != "/v1/charts/"+created.ID {
		t.Errorf("Location = %q", loc)
	}

	rec = do(t, s, http.MethodGet, "/v1/charts", "", "")
	var list struct {
		Charts []store.Record `json:"charts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Charts) != 1 || list.Charts[0].ID != created.ID {
		t.Errorf("list = %+v", list.Charts)
	}

	rec = do(t, s, http.MethodGet, "/v1/charts/"+created.ID, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got store.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Chart == nil || got.Chart.Title != "Requests" {
		t.Errorf("get chart = %+v", got.Chart)
	}

	rec = do(t, s, http.MethodGet, "/v1/charts/"+created.ID+"/render?format=svg", "", "")
	if rec.Code != http.StatusOK || !bytes.HasPrefix(rec.Body.Bytes(), []byte("<svg")) {
		t.Errorf("render status = %d", rec.Code)
	}
	if rec.Header().Get(CacheHeader) != "miss" {
		t.Errorf("X-Cache = %q, want miss with a null cache", rec.Header().Get(CacheHeader))
	}

	rec = do(t, s, http.MethodDelete, "/v1/charts/"+created.ID, "", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/v1/charts/"+created.ID, "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error.Code != string(errors.ErrCodeChartNotFound) {
		t.Errorf("code = %q", body.Error.Code)
	}
}

func TestChartErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"malformed id", http.MethodGet, "/v1/charts/xyz", http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/v1/charts/" + uuid.NewString(), http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/v1/charts/" + uuid.NewString(), http.StatusNotFound},
		{"render unknown", http.MethodGet, "/v1/charts/" + uuid.NewString() + "/render", http.StatusNotFound},
		{"bad limit", http.MethodGet, "/v1/charts?limit=-3", http.StatusBadRequest},
		{"no route", http.MethodGet, "/v2/nothing", http.StatusNotFound},
		{"wrong method", http.MethodPut, "/healthz", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.target, "", "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidChart, http.StatusBadRequest},
		{errors.ErrCodeUnsupportedPosition, http.StatusBadRequest},
		{errors.ErrCodeChartNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusNotImplemented},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
