package ports

import model "circle-backend/internal/domain/models"

// Broadcaster pushes an event to every connected websocket client.
// Fire-and-forget: no delivery guarantee, no acknowledgment.
//
//go:generate mockery --name Broadcaster --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename Broadcaster.go
type Broadcaster interface {
	Broadcast(event model.Event)
}
