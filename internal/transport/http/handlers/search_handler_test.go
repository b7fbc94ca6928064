package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	searchsvc "github.com/dn1t/dutlife-api/internal/services/search"
)

// stubExecutor answers the combined search and single-user lookups with
// canned data and fails anything else; the aggregation itself is covered by
// the search package's tests.
type stubExecutor struct {
	payloads map[string]string // matched by substring of the query text
	err      error
}

func (s *stubExecutor) Execute(ctx context.Context, query string, vars map[string]any, out any) error {
	if s.err != nil {
		return s.err
	}
	for marker, payload := range s.payloads {
		if strings.Contains(query, marker) {
			return json.Unmarshal([]byte(payload), out)
		}
	}
	return errors.New("unexpected query")
}

const emptySearchPayload = `{
	"userByUsername": null,
	"userByNickname": null,
	"projectList": {"total": 0, "list": [], "searchAfter": null},
	"discussList": {"total": 0, "list": [], "searchAfter": null}
}`

func newSearchHandlerForTest(exec searchsvc.Executor) *SearchHandler {
	svc := searchsvc.NewService(exec, "https://playentry.org", zap.NewNop())
	return NewSearchHandler(svc, 16, 50, zap.NewNop())
}

func TestSearchHandlerRequiresQuery(t *testing.T) {
	h := newSearchHandlerForTest(&stubExecutor{})

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSearchHandlerRejectsBadDisplay(t *testing.T) {
	h := newSearchHandlerForTest(&stubExecutor{})

	for _, display := range []string{"0", "-1", "51", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/search?query=alice&display="+display, nil)
		rr := httptest.NewRecorder()
		h.Handle(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("display=%s: unexpected status %d", display, rr.Code)
		}
	}
}

func TestSearchHandlerResponseShape(t *testing.T) {
	h := newSearchHandlerForTest(&stubExecutor{payloads: map[string]string{
		"userByNickname": emptySearchPayload,
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/search?query=alice", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	for _, key := range []string{"users", "projects", "discuss"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing key %q in %v", key, raw)
		}
	}
	if users := raw["users"].([]interface{}); len(users) != 0 {
		t.Fatalf("unexpected users: %v", users)
	}
}

func TestSearchHandlerUpstreamFailureIsGeneric500(t *testing.T) {
	h := newSearchHandlerForTest(&stubExecutor{err: errors.New("upstream broke")})

	req := httptest.NewRequest(http.MethodGet, "/api/search?query=alice", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusInternalServerError)
	}

	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if apiErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected error code: %s", apiErr.Code)
	}
	if strings.Contains(apiErr.Message, "upstream broke") {
		t.Fatalf("upstream detail leaked to client: %q", apiErr.Message)
	}
}

func TestUserHandlerNotFound(t *testing.T) {
	svc := searchsvc.NewService(&stubExecutor{payloads: map[string]string{
		"userByUsername": `{"userByUsername": null}`,
	}}, "https://playentry.org", zap.NewNop())
	h := NewUserHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/users/{username}", h.Handle)

	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusNotFound)
	}
}

func TestUserHandlerShapesProfile(t *testing.T) {
	svc := searchsvc.NewService(&stubExecutor{payloads: map[string]string{
		"contestPrizes": `{"contestPrizes": []}`,
		"userByUsername": `{"userByUsername": {
			"id": "u1", "username": "bob", "nickname": "Bob", "description": "",
			"profileImage": null, "coverImage": null,
			"status": {"follower": 1, "following": 0, "project": 0}
		}}`,
	}}, "https://playentry.org", zap.NewNop())
	h := NewUserHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/users/{username}", h.Handle)

	req := httptest.NewRequest(http.MethodGet, "/api/users/bob", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if raw["profileImage"] != "https://playentry.org/img/DefaultCardUserThmb.svg" {
		t.Fatalf("default avatar not applied: %v", raw["profileImage"])
	}
	if _, present := raw["coverImage"]; present {
		t.Fatalf("absent cover image should be omitted, got %v", raw["coverImage"])
	}
}
