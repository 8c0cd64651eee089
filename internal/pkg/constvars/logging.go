package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingCompositionIDKey = "composition_id"
	LoggingTrackingIDKey    = "tracking_id"
	LoggingTaskIDKey        = "task_id"
	LoggingEventKey         = "event"
	LoggingFileNameKey      = "file_name"
	LoggingQueueKey         = "queue"
	LoggingTaskStatusKey    = "task_status"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
)
