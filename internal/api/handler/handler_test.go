package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/researchnexus/nexus/internal/api/middleware"
	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

// --- stubs ---

type stubSessionStore struct {
	snap      domain.Session
	loginFn   func(email, password string) domain.Session
	signupFn  func(in ports.SignupInput) domain.Session
	loggedOut bool
}

func (s *stubSessionStore) Snapshot() domain.Session { return s.snap }

func (s *stubSessionStore) Restore(context.Context) domain.Session { return s.snap }

func (s *stubSessionStore) Login(_ context.Context, email, password string) domain.Session {
	return s.loginFn(email, password)
}

func (s *stubSessionStore) Signup(_ context.Context, in ports.SignupInput) domain.Session {
	return s.signupFn(in)
}

func (s *stubSessionStore) Logout(context.Context) domain.Session {
	s.loggedOut = true
	return domain.Session{State: domain.SessionAnonymous}
}

type stubRegistry struct {
	stores  map[string]*stubSessionStore
	lastKey string
}

func (r *stubRegistry) Open(_ context.Context, profileID string) ports.SessionStore {
	r.lastKey = profileID
	return r.stores[profileID]
}

type stubTokens struct{}

func (stubTokens) Issue(identity *domain.Identity) (string, error) {
	return "token-for-" + identity.ID, nil
}

type stubCatalog struct {
	searchFn func(f domain.Filter) ([]domain.Research, error)
}

func (s *stubCatalog) Search(_ context.Context, f domain.Filter) ([]domain.Research, error) {
	return s.searchFn(f)
}

func (s *stubCatalog) Facets(context.Context) (*domain.Facets, error) {
	return &domain.Facets{Fields: []string{"Oncology"}, Tags: []string{"AI"}}, nil
}

func (s *stubCatalog) Get(_ context.Context, id string) (*domain.Research, error) {
	if id == "1" {
		return &domain.Research{ID: "1", Title: "First"}, nil
	}
	return nil, domain.ErrResearchNotFound
}

type stubDashboard struct{ got domain.Identity }

func (s *stubDashboard) Load(_ context.Context, identity domain.Identity) (*domain.Dashboard, error) {
	s.got = identity
	return &domain.Dashboard{Role: identity.Role, Admin: &domain.AdminStats{}}, nil
}

type stubChat struct {
	sent []string
	keys []string
	dup  bool
}

func (s *stubChat) Transcript(context.Context, string) []domain.ChatMessage {
	return []domain.ChatMessage{{ID: "1", Text: "hello", Sender: domain.SenderBot}}
}

func (s *stubChat) Send(_ context.Context, conv, text, key string) (*ports.SendResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}
	if s.dup {
		return &ports.SendResult{Duplicate: true}, nil
	}
	s.sent = append(s.sent, conv+":"+text)
	s.keys = append(s.keys, key)
	return &ports.SendResult{Message: &domain.ChatMessage{ID: "m1", Text: text, Sender: domain.SenderUser, Timestamp: time.Now()}}, nil
}

// --- helpers ---

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// serve runs h and, like the router, renders a returned error through
// echo's error handler.
func serve(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

// --- session ---

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newEcho()
	store := &stubSessionStore{
		loginFn: func(email, password string) domain.Session {
			if email != "boss@admin.org" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return domain.Session{State: domain.SessionAuthenticated, Identity: &domain.Identity{ID: "user-123", Role: domain.RoleAdmin}}
		},
	}
	reg := &stubRegistry{stores: map[string]*stubSessionStore{"p1": store}}
	h := NewSessionHandler(reg, stubTokens{}, zerologNop())

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/session/login", `{"email":"boss@admin.org","password":"pw"}`), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Login)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	decode(t, rec, &resp)
	if resp["token"] != "token-for-user-123" || resp["state"] != "authenticated" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if user, _ := resp["user"].(map[string]any); user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestSessionHandler_Login_Failure(t *testing.T) {
	e := newEcho()
	store := &stubSessionStore{
		loginFn: func(string, string) domain.Session {
			return domain.Session{State: domain.SessionAnonymous, Error: domain.MsgLoginFailed}
		},
	}
	h := NewSessionHandler(&stubRegistry{stores: map[string]*stubSessionStore{"p1": store}}, stubTokens{}, zerologNop())

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/session/login", `{"email":"a@b.org","password":"pw"}`), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Login)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]any
	decode(t, rec, &resp)
	if resp["error"] != domain.MsgLoginFailed {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["token"]; ok {
		t.Fatalf("failed login must not carry a token")
	}
}

func TestSessionHandler_Login_Validation(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubRegistry{}, stubTokens{}, zerologNop())

	for _, body := range []string{`{"email":"not-an-email","password":"pw"}`, `{"email":"a@b.org"}`, `not json`} {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/v1/session/login", body), rec)
		c.Set(middleware.ContextProfile, "p1")
		serve(e, c, h.Login)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestSessionHandler_Signup(t *testing.T) {
	e := newEcho()
	store := &stubSessionStore{
		signupFn: func(in ports.SignupInput) domain.Session {
			if in.Role != domain.RoleCompany || in.Name != "Acme" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return domain.Session{State: domain.SessionAuthenticated, Identity: &domain.Identity{ID: "user-1", Role: in.Role}}
		},
	}
	h := NewSessionHandler(&stubRegistry{stores: map[string]*stubSessionStore{"p1": store}}, stubTokens{}, zerologNop())

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/session/signup",
		`{"email":"hr@acme.com","password":"secret1","name":"Acme","role":"company"}`), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Signup)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, "/v1/session/signup",
		`{"email":"hr@acme.com","password":"secret1","name":"Acme","role":"guest"}`), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Signup)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", rec.Code)
	}
}

func TestSessionHandler_GetAndLogout(t *testing.T) {
	e := newEcho()
	store := &stubSessionStore{snap: domain.Session{State: domain.SessionAnonymous}}
	reg := &stubRegistry{stores: map[string]*stubSessionStore{"p1": store}}
	h := NewSessionHandler(reg, stubTokens{}, zerologNop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/session", nil), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Get)
	if rec.Code != http.StatusOK || reg.lastKey != "p1" {
		t.Fatalf("unexpected get: %d %q", rec.Code, reg.lastKey)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/session", nil), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Logout)
	if rec.Code != http.StatusOK || !store.loggedOut {
		t.Fatalf("expected logout, got %d", rec.Code)
	}
}

func TestSessionHandler_MissingProfile(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubRegistry{}, stubTokens{}, zerologNop())

	rec := httptest.NewRecorder()
	serve(e, e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/session", nil), rec), h.Get)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// --- research ---

func TestResearchHandler_List_BindsFilter(t *testing.T) {
	e := newEcho()
	var got domain.Filter
	h := NewResearchHandler(&stubCatalog{searchFn: func(f domain.Filter) ([]domain.Research, error) {
		got = f
		return []domain.Research{{ID: "1"}}, nil
	}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/research?search=%20hormones%20&field=Oncology&tags=AI,Genetics&tags=COVID-19&date=oldest&premium=false", nil)
	serve(e, e.NewContext(req, rec), h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Search != "hormones" || got.Field != "Oncology" || got.Date != domain.DateOldest {
		t.Fatalf("unexpected filter: %+v", got)
	}
	if strings.Join(got.Tags, "|") != "AI|Genetics|COVID-19" {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}
	if got.Premium == nil || *got.Premium {
		t.Fatalf("expected premium=false constraint")
	}

	var resp researchListResponse
	decode(t, rec, &resp)
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestResearchHandler_List_NoConstraints(t *testing.T) {
	e := newEcho()
	var got domain.Filter
	h := NewResearchHandler(&stubCatalog{searchFn: func(f domain.Filter) ([]domain.Research, error) {
		got = f
		return []domain.Research{}, nil
	}})

	rec := httptest.NewRecorder()
	serve(e, e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/research", nil), rec), h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Premium != nil || got.Tags != nil || got.Date != domain.DateUnordered {
		t.Fatalf("expected empty filter, got %+v", got)
	}
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Fatalf("empty result must render as []: %s", rec.Body.String())
	}
}

func TestResearchHandler_List_RejectsBadQuery(t *testing.T) {
	e := newEcho()
	h := NewResearchHandler(&stubCatalog{searchFn: func(domain.Filter) ([]domain.Research, error) {
		t.Fatalf("search must not run")
		return nil, nil
	}})

	for _, q := range []string{"date=yesterday", "premium=maybe"} {
		rec := httptest.NewRecorder()
		serve(e, e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/research?"+q, nil), rec), h.List)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestResearchHandler_GetAndFacets(t *testing.T) {
	e := newEcho()
	h := NewResearchHandler(&stubCatalog{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/research/1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	serve(e, c, h.Get)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	serve(e, e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/research/facets", nil), rec), h.Facets)
	var facets domain.Facets
	decode(t, rec, &facets)
	if len(facets.Fields) != 1 || facets.Tags[0] != "AI" {
		t.Fatalf("unexpected facets: %+v", facets)
	}
}

// --- dashboard ---

func TestDashboardHandler_UsesTokenIdentity(t *testing.T) {
	e := newEcho()
	svc := &stubDashboard{}
	h := NewDashboardHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), rec)
	c.Set(middleware.ContextIdentity, domain.Identity{ID: "user-123", Role: domain.RoleAdmin})
	serve(e, c, h.Get)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.got.ID != "user-123" {
		t.Fatalf("identity not passed through: %+v", svc.got)
	}
}

func TestDashboardHandler_MissingIdentity(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	serve(e, e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), rec), NewDashboardHandler(&stubDashboard{}).Get)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// --- chat ---

func TestChatHandler_Send(t *testing.T) {
	e := newEcho()
	svc := &stubChat{}
	h := NewChatHandler(svc)

	req := jsonRequest(http.MethodPost, "/v1/chat", `{"text":"how do I upload?"}`)
	req.Header.Set("Idempotency-Key", "k1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Send)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.sent) != 1 || svc.sent[0] != "p1:how do I upload?" || svc.keys[0] != "k1" {
		t.Fatalf("unexpected send: %v %v", svc.sent, svc.keys)
	}
}

func TestChatHandler_Send_Duplicate(t *testing.T) {
	e := newEcho()
	h := NewChatHandler(&stubChat{dup: true})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/chat", `{"text":"again"}`), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, h.Send)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp chatSendResponse
	decode(t, rec, &resp)
	if !resp.Duplicate || resp.Message != nil {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestChatHandler_Send_Blank(t *testing.T) {
	e := newEcho()
	h := NewChatHandler(&stubChat{})

	for _, body := range []string{`{"text":""}`, `{}`} {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/v1/chat", body), rec)
		c.Set(middleware.ContextProfile, "p1")
		serve(e, c, h.Send)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestChatHandler_Transcript(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/chat", nil), rec)
	c.Set(middleware.ContextProfile, "p1")
	serve(e, c, NewChatHandler(&stubChat{}).Transcript)

	var resp chatTranscriptResponse
	decode(t, rec, &resp)
	if len(resp.Messages) != 1 || resp.Messages[0].Sender != domain.SenderBot {
		t.Fatalf("unexpected transcript: %+v", resp)
	}
}

func TestValidator_ReportsEveryField(t *testing.T) {
	err := NewValidator().Validate(&signupRequest{Role: "guest"})
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	msg, _ := he.Message.(string)
	for _, want := range []string{"email is required", "password is required", "name is required", "role must be one of"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func zerologNop() zerolog.Logger { return zerolog.Nop() }
