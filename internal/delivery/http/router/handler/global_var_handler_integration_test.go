package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGlobalVarUsecase records the actor it was called with and returns
// canned values.
type stubGlobalVarUsecase struct {
	lastActor uuid.UUID
	created   *usecase.CreateGlobalVarInput
}

func (s *stubGlobalVarUsecase) List(_ context.Context, actorID uuid.UUID) ([]*entity.GlobalVar, error) {
	s.lastActor = actorID

	return []*entity.GlobalVar{{ID: uuid.New(), Key: "site_name", Value: "Bazaar"}}, nil
}

func (s *stubGlobalVarUsecase) Get(_ context.Context, actorID, id uuid.UUID) (*entity.GlobalVar, error) {
	s.lastActor = actorID

	return &entity.GlobalVar{ID: id, Key: "site_name", Value: "Bazaar"}, nil
}

func (s *stubGlobalVarUsecase) Create(_ context.Context, actorID uuid.UUID, input *usecase.CreateGlobalVarInput) (*entity.GlobalVar, error) {
	s.lastActor = actorID
	s.created = input

	return &entity.GlobalVar{ID: uuid.New(), Key: input.Key, Value: input.Value}, nil
}

func (s *stubGlobalVarUsecase) Update(_ context.Context, actorID, id uuid.UUID, _ *usecase.UpdateGlobalVarInput) (*entity.GlobalVar, error) {
	s.lastActor = actorID

	return &entity.GlobalVar{ID: id}, nil
}

func (s *stubGlobalVarUsecase) Delete(_ context.Context, actorID, _ uuid.UUID) error {
	s.lastActor = actorID

	return nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

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

func TestGlobalVarHandler_Create(t *testing.T) {
	uc := &stubGlobalVarUsecase{}
	h := NewGlobalVarHandler(uc)
	actor := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/global-vars", `{"key":"support_email","value":"help@bazaar.io"}`)
	deliverycontext.SetClientID(c, actor)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, actor, uc.lastActor)
	require.NotNil(t, uc.created)
	assert.Equal(t, "support_email", uc.created.Key)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestGlobalVarHandler_CreateRejectsMissingKey(t *testing.T) {
	h := NewGlobalVarHandler(&stubGlobalVarUsecase{})

	c, _ := newTestContext(t, http.MethodPost, "/global-vars", `{"value":"orphan"}`)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGlobalVarHandler_GetRejectsMalformedID(t *testing.T) {
	h := NewGlobalVarHandler(&stubGlobalVarUsecase{})

	c, _ := newTestContext(t, http.MethodGet, "/global-vars/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGlobalVarHandler_ListAnonymousActor(t *testing.T) {
	// Without an authenticated client the handler forwards uuid.Nil and
	// leaves the access decision to the usecase layer.
	uc := &stubGlobalVarUsecase{lastActor: uuid.New()}
	h := NewGlobalVarHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/global-vars", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, uc.lastActor)
}
