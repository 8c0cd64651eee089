package search

import (
	"context"
	"net/http"
	"time"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"
	"opencrvs-service/internal/pkg/fhir_dto"
	"opencrvs-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SearchController struct {
	Log           *zap.Logger
	SearchUsecase contracts.SearchUsecase
}

func NewSearchController(logger *zap.Logger, searchUsecase contracts.SearchUsecase) *SearchController {
	return &SearchController{
		Log:           logger,
		SearchUsecase: searchUsecase,
	}
}

// Event handlers are thin adapters: decode the bundle, hand it to the upsert,
// and wrap any indexing failure into a 500-class response.
func (ctrl *SearchController) BirthEvent(w http.ResponseWriter, r *http.Request) {
	ctrl.handleEvent(w, r, constvars.EventBirth)
}

func (ctrl *SearchController) DeathEvent(w http.ResponseWriter, r *http.Request) {
	ctrl.handleEvent(w, r, constvars.EventDeath)
}

func (ctrl *SearchController) MarriageEvent(w http.ResponseWriter, r *http.Request) {
	ctrl.handleEvent(w, r, constvars.EventMarriage)
}

func (ctrl *SearchController) handleEvent(w http.ResponseWriter, r *http.Request, event constvars.Event) {
	bundle := new(fhir_dto.RawBundle)
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ctrl.SearchUsecase.UpsertEvent(ctx, event, bundle); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrIndexEvent(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.IndexEventSuccessMessage, nil)
}
