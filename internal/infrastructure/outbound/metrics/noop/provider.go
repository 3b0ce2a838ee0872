// Package noop provides a MetricsProvider that records nothing. It backs
// tests and cache-less local runs where a Prometheus registry is unwanted.
package noop

import (
	"time"

	ports "circle-backend/internal/domain/ports/output"
)

type NoopMetricsProvider struct{}

func NewNoopMetricsProvider() ports.MetricsProvider {
	return &NoopMetricsProvider{}
}

func (n *NoopMetricsProvider) IncrementHTTPRequests(method, path, status string)                  {}
func (n *NoopMetricsProvider) RecordHTTPRequestDuration(method, path string, d time.Duration)     {}
func (n *NoopMetricsProvider) IncrementDatabaseQueries(queryType string, success bool)            {}
func (n *NoopMetricsProvider) RecordDatabaseQueryDuration(queryType string, d time.Duration)      {}
func (n *NoopMetricsProvider) IncrementCacheHits()                                                {}
func (n *NoopMetricsProvider) IncrementCacheMisses()                                              {}
func (n *NoopMetricsProvider) RecordCacheOperationDuration(operation string, d time.Duration)     {}
func (n *NoopMetricsProvider) IncrementThreadOperations(operation string, success bool)           {}
func (n *NoopMetricsProvider) IncrementLikeOperations(operation string, success bool)             {}
func (n *NoopMetricsProvider) IncrementReplyOperations(operation string, success bool)            {}
func (n *NoopMetricsProvider) IncrementFollowOperations(operation string, success bool)           {}
func (n *NoopMetricsProvider) SetWebsocketConnections(count int)                                  {}
func (n *NoopMetricsProvider) SetServiceHealth(healthy bool)                                      {}
