package registration

import (
	"context"
	"net/http"
	"time"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/dto/requests"
	"opencrvs-service/internal/pkg/exceptions"
	"opencrvs-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
	}
}

func parseEvent(raw string) (constvars.Event, error) {
	switch constvars.Event(raw) {
	case constvars.EventBirth, constvars.EventDeath, constvars.EventMarriage:
		return constvars.Event(raw), nil
	default:
		return "", exceptions.ErrUnknownEvent(raw)
	}
}

func (ctrl *RegistrationController) BuildBundle(w http.ResponseWriter, r *http.Request) {
	event, err := parseEvent(chi.URLParam(r, constvars.URLParamEvent))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RegistrationInput)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	bundle, err := ctrl.RegistrationUsecase.BuildFHIRBundle(ctx, event, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuildBundleSuccessMessage, bundle)
}

func (ctrl *RegistrationController) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	request := new(requests.TaskStatusUpdate)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.RegistrationUsecase.UpdateFHIRTaskBundle(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTaskSuccessMessage, bundle)
}

func (ctrl *RegistrationController) AddTaskExtension(w http.ResponseWriter, r *http.Request) {
	request := new(requests.TaskExtensionUpdate)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.RegistrationUsecase.TaskBundleWithExtension(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTaskSuccessMessage, bundle)
}
