package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementThreadOperations(operation string, success bool)
	IncrementLikeOperations(operation string, success bool)
	IncrementReplyOperations(operation string, success bool)
	IncrementFollowOperations(operation string, success bool)

	SetWebsocketConnections(count int)
	SetServiceHealth(healthy bool)
}
