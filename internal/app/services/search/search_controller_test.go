package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/fhir_dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSearchUsecase struct {
	gotEvent constvars.Event
	err      error
}

func (s *stubSearchUsecase) UpsertEvent(_ context.Context, event constvars.Event, _ *fhir_dto.RawBundle) error {
	s.gotEvent = event
	return s.err
}

var _ contracts.SearchUsecase = (*stubSearchUsecase)(nil)

func newSearchRouter(uc contracts.SearchUsecase) *chi.Mux {
	ctrl := NewSearchController(zap.NewNop(), uc)
	router := chi.NewRouter()
	router.Post("/birth", ctrl.BirthEvent)
	router.Post("/death", ctrl.DeathEvent)
	router.Post("/marriage", ctrl.MarriageEvent)
	return router
}

func TestEventEndpoints(t *testing.T) {
	t.Run("routes each path to its event type", func(t *testing.T) {
		for path, event := range map[string]constvars.Event{
			"/birth":    constvars.EventBirth,
			"/death":    constvars.EventDeath,
			"/marriage": constvars.EventMarriage,
		} {
			uc := &stubSearchUsecase{}
			router := newSearchRouter(uc)

			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"resourceType":"Bundle","entry":[]}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, path)
			assert.Equal(t, event, uc.gotEvent, path)
		}
	})

	t.Run("indexing failure reads as a server error", func(t *testing.T) {
		router := newSearchRouter(&stubSearchUsecase{err: errors.New("projection failed")})

		req := httptest.NewRequest(http.MethodPost, "/birth", strings.NewReader(`{"resourceType":"Bundle","entry":[]}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("malformed bundle reads as a bad request", func(t *testing.T) {
		router := newSearchRouter(&stubSearchUsecase{})

		req := httptest.NewRequest(http.MethodPost, "/birth", strings.NewReader(`{broken`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
