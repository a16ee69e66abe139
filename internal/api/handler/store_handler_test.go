package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
)

type stubStoreService struct {
	listFn   func(ctx context.Context) ([]domain.Store, error)
	getFn    func(ctx context.Context, id string) (*domain.Store, error)
	createFn func(ctx context.Context, store domain.Store) (*domain.Store, error)
	updateFn func(ctx context.Context, id string, apply func(*domain.Store)) (*domain.Store, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubStoreService) List(ctx context.Context) ([]domain.Store, error) {
	return s.listFn(ctx)
}

func (s *stubStoreService) Get(ctx context.Context, id string) (*domain.Store, error) {
	return s.getFn(ctx, id)
}

func (s *stubStoreService) Create(ctx context.Context, store domain.Store) (*domain.Store, error) {
	return s.createFn(ctx, store)
}

func (s *stubStoreService) Update(ctx context.Context, id string, apply func(*domain.Store)) (*domain.Store, error) {
	return s.updateFn(ctx, id, apply)
}

func (s *stubStoreService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newStoreContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStoreHandler_Create_AssignsPrefixedID(t *testing.T) {
	stub := &stubStoreService{
		createFn: func(ctx context.Context, store domain.Store) (*domain.Store, error) {
			if store.Name != "Downtown Branch" || store.Address != "12 Main St" {
				t.Fatalf("unexpected store payload: %+v", store)
			}
			store.ID = "STR-1722255700123"
			return &store, nil
		},
	}
	handler := NewStoreHandler(stub)

	c, rec := newStoreContext(t, http.MethodPost, "/api/stores",
		`{"name":"Downtown Branch","address":"12 Main St","phone":"555-0101","gstin":"29ABCDE1234F1Z5"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	id, _ := resp["id"].(string)
	if !strings.HasPrefix(id, "STR-") {
		t.Fatalf("store id must carry the STR- prefix, got %q", id)
	}
}

func TestStoreHandler_Create_MissingName(t *testing.T) {
	stub := &stubStoreService{
		createFn: func(ctx context.Context, store domain.Store) (*domain.Store, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	handler := NewStoreHandler(stub)

	c, _ := newStoreContext(t, http.MethodPost, "/api/stores", `{"address":"12 Main St"}`)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestStoreHandler_Get_PassesLegacyID(t *testing.T) {
	stub := &stubStoreService{
		getFn: func(ctx context.Context, id string) (*domain.Store, error) {
			if id != "store_1" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.Store{ID: "STR-1722255700000", Name: "Main"}, nil
		},
	}
	handler := NewStoreHandler(stub)

	c, rec := newStoreContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("store_1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "STR-1722255700000") {
		t.Fatalf("response must carry the standard id: %s", rec.Body.String())
	}
}

func TestStoreHandler_Update_MergesOnlyPostedFields(t *testing.T) {
	stub := &stubStoreService{
		updateFn: func(ctx context.Context, id string, apply func(*domain.Store)) (*domain.Store, error) {
			store := domain.Store{ID: id, Name: "Main", Address: "old address", Phone: "555-0100"}
			apply(&store)
			return &store, nil
		},
	}
	handler := NewStoreHandler(stub)

	c, rec := newStoreContext(t, http.MethodPut, "/", `{"address":"new address"}`)
	c.SetParamNames("id")
	c.SetParamValues("STR-1722255700000")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["address"] != "new address" {
		t.Fatalf("address not updated: %+v", resp)
	}
	if resp["name"] != "Main" || resp["phone"] != "555-0100" {
		t.Fatalf("untouched fields must survive the merge: %+v", resp)
	}
}

func TestStoreHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubStoreService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewStoreHandler(stub)

	c, rec := newStoreContext(t, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("STR-1722255700000")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != "STR-1722255700000" {
		t.Fatalf("delete not applied: code=%d id=%q", rec.Code, deleted)
	}
}

func TestStoreHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubStoreService{
		getFn: func(ctx context.Context, id string) (*domain.Store, error) {
			return nil, domain.ErrStoreNotFound
		},
	}
	handler := NewStoreHandler(stub)

	c, _ := newStoreContext(t, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("STR-404")

	if err := handler.Get(c); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
