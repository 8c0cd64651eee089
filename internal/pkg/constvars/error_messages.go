package constvars

// Client-facing messages. Never leak internals here.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request right now, please check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientInvalidDeclaration            = "The declaration could not be converted, please check the submitted data"
	ErrClientIndexingFailed                = "The event could not be indexed, please try again later"
	ErrClientServerLongRespond             = "The server takes too long to respond, please try again later"
)

// Developer-facing messages, logged but never returned to clients.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevBuildBundle               = "failed to build FHIR bundle"
	ErrDevUnknownCode               = "no mapping exists for code %q in table %s"
	ErrDevMissingCollectorIdentity  = "certificate collector has neither identifier nor name"
	ErrDevMissingOtherRelationship  = "informant relationship OTHER requires a free-text relationship"
	ErrDevRejectionRequiresReason   = "a REJECTED transition requires both a reason and a comment"
	ErrDevUploadDocument            = "failed to upload document payload"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeResponse            = "failed to decode response body for %s"
	ErrDevUpsertEventDocument       = "failed to upsert event document into search index"
	ErrDevBundleMissingComposition  = "bundle has no Composition entry"
	ErrDevBundleMissingTask         = "bundle has no Task entry"
	ErrDevRedisSet                  = "failed to set redis key"
	ErrDevRedisGet                  = "failed to get redis key %s"
	ErrDevPublishNotification       = "failed to publish index notification"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded while processing the request"
	ErrDevUnknownEvent              = "unknown event type %q in URL"
)
