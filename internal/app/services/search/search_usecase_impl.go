package search

import (
	"context"
	"strings"
	"time"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/app/models"
	"opencrvs-service/internal/pkg/codes"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"
	"opencrvs-service/internal/pkg/fhir_dto"
	"opencrvs-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const dedupKeyPrefix = "search:indexed-version:"

type searchUsecase struct {
	SearchRepository contracts.SearchRepository
	RedisRepository  contracts.RedisRepository
	IndexNotifier    contracts.IndexNotifier
	DedupTTL         time.Duration
	Log              *zap.Logger
}

func NewSearchUsecase(
	logger *zap.Logger,
	searchRepository contracts.SearchRepository,
	redisRepository contracts.RedisRepository,
	indexNotifier contracts.IndexNotifier,
	dedupTTL time.Duration,
) contracts.SearchUsecase {
	return &searchUsecase{
		SearchRepository: searchRepository,
		RedisRepository:  redisRepository,
		IndexNotifier:    indexNotifier,
		DedupTTL:         dedupTTL,
		Log:              logger,
	}
}

// UpsertEvent projects a declaration bundle into the search index. Bundles
// already indexed at the same task version are skipped. The index is a
// downstream projection: a failure here never touches the FHIR store itself.
func (uc *searchUsecase) UpsertEvent(ctx context.Context, event constvars.Event, bundle *fhir_dto.RawBundle) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("searchUsecase.UpsertEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, string(event)),
	)

	parsed, err := parseBundle(bundle)
	if err != nil {
		return err
	}

	versionID := ""
	if parsed.task.Meta != nil {
		versionID = parsed.task.Meta.VersionID
	}

	dedupKey := dedupKeyPrefix + parsed.composition.ID
	if versionID != "" {
		cached, err := uc.RedisRepository.Get(ctx, dedupKey)
		if err != nil {
			uc.Log.Warn("searchUsecase.UpsertEvent dedup lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if cachedVersion, _ := json.Marshal(versionID); cached == string(cachedVersion) {
			uc.Log.Info("searchUsecase.UpsertEvent version already indexed, skipping",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCompositionIDKey, parsed.composition.ID),
			)
			return nil
		}
	}

	doc := uc.buildEventDocument(event, parsed, versionID)
	if err := uc.SearchRepository.UpsertEventDocument(ctx, doc); err != nil {
		return err
	}

	if versionID != "" {
		if err := uc.RedisRepository.Set(ctx, dedupKey, versionID, uc.DedupTTL); err != nil {
			uc.Log.Warn("searchUsecase.UpsertEvent cannot cache indexed version",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	// Notification is best effort. The projection is already durable.
	if err := uc.IndexNotifier.PublishIndexedEvent(ctx, doc); err != nil {
		uc.Log.Warn("searchUsecase.UpsertEvent cannot publish index notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

type parsedBundle struct {
	composition    *fhir_dto.Composition
	task           *fhir_dto.Task
	patients       map[string]*fhir_dto.Patient
	relatedPersons map[string]*fhir_dto.RelatedPerson
}

func parseBundle(bundle *fhir_dto.RawBundle) (*parsedBundle, error) {
	parsed := &parsedBundle{
		patients:       make(map[string]*fhir_dto.Patient),
		relatedPersons: make(map[string]*fhir_dto.RelatedPerson),
	}
	for _, entry := range bundle.Entry {
		switch entry.ResourceTypeOf() {
		case constvars.ResourceComposition:
			if parsed.composition != nil {
				continue
			}
			composition := new(fhir_dto.Composition)
			if err := json.Unmarshal(entry.Resource, composition); err != nil {
				return nil, exceptions.ErrCannotParseJSON(err)
			}
			parsed.composition = composition
		case constvars.ResourceTask:
			if parsed.task != nil {
				continue
			}
			task := new(fhir_dto.Task)
			if err := json.Unmarshal(entry.Resource, task); err != nil {
				return nil, exceptions.ErrCannotParseJSON(err)
			}
			parsed.task = task
		case constvars.ResourcePatient:
			patient := new(fhir_dto.Patient)
			if err := json.Unmarshal(entry.Resource, patient); err != nil {
				return nil, exceptions.ErrCannotParseJSON(err)
			}
			parsed.patients[entry.FullURL] = patient
		case constvars.ResourceRelatedPerson:
			relatedPerson := new(fhir_dto.RelatedPerson)
			if err := json.Unmarshal(entry.Resource, relatedPerson); err != nil {
				return nil, exceptions.ErrCannotParseJSON(err)
			}
			parsed.relatedPersons[entry.FullURL] = relatedPerson
		}
	}
	if parsed.composition == nil {
		return nil, exceptions.ErrBundleMissingComposition()
	}
	if parsed.task == nil {
		return nil, exceptions.ErrBundleMissingTask()
	}
	return parsed, nil
}

func (uc *searchUsecase) buildEventDocument(event constvars.Event, parsed *parsedBundle, versionID string) *models.EventDocument {
	doc := &models.EventDocument{
		CompositionID: parsed.composition.ID,
		Event:         string(event),
		VersionID:     versionID,
		IndexedAt:     time.Now().UTC(),
	}

	if parsed.task.BusinessStatus != nil && len(parsed.task.BusinessStatus.Coding) > 0 {
		doc.BusinessStatus = parsed.task.BusinessStatus.Coding[0].Code
	}
	for _, identifier := range parsed.task.Identifier {
		switch identifier.System {
		case codes.TrackingIDSystem(event):
			doc.TrackingID = identifier.Value
		case codes.RegistrationNumberSystem(event):
			doc.RegistrationNumber = identifier.Value
		}
	}
	if ext := utils.FindExtension(constvars.ExtensionContactPhoneNumber, parsed.task.Extension); ext != nil {
		doc.ContactPhoneNumber = ext.ValueString
	}

	doc.ChildNames = uc.sectionNames(parsed, "child-details")
	doc.MotherNames = uc.sectionNames(parsed, "mother-details")
	doc.FatherNames = uc.sectionNames(parsed, "father-details")
	doc.InformantNames = uc.informantNames(parsed)
	return doc
}

// informantNames resolves the informant section through its RelatedPerson to
// the underlying patient. Informants without a patient reference contribute
// nothing.
func (uc *searchUsecase) informantNames(parsed *parsedBundle) []string {
	var names []string
	for _, section := range parsed.composition.Section {
		if section.Code == nil || len(section.Code.Coding) == 0 || section.Code.Coding[0].Code != "informant-details" {
			continue
		}
		for _, ref := range section.Entry {
			relatedPerson, ok := parsed.relatedPersons[ref.Reference]
			if !ok || relatedPerson.Patient == nil {
				continue
			}
			patient, ok := parsed.patients[relatedPerson.Patient.Reference]
			if !ok {
				continue
			}
			for _, name := range patient.Name {
				names = append(names, flattenName(name))
			}
		}
	}
	return names
}

// sectionNames resolves a composition section to its patients and flattens
// their names for indexing.
func (uc *searchUsecase) sectionNames(parsed *parsedBundle, sectionCode string) []string {
	var names []string
	for _, section := range parsed.composition.Section {
		if section.Code == nil || len(section.Code.Coding) == 0 || section.Code.Coding[0].Code != sectionCode {
			continue
		}
		for _, ref := range section.Entry {
			patient, ok := parsed.patients[ref.Reference]
			if !ok {
				continue
			}
			for _, name := range patient.Name {
				names = append(names, flattenName(name))
			}
		}
	}
	return names
}

func flattenName(name fhir_dto.HumanName) string {
	parts := append([]string{}, name.Given...)
	parts = append(parts, name.Family...)
	return strings.TrimSpace(strings.Join(parts, " "))
}
