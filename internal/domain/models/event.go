package model

type EventType string

const (
	EventThreadCreated EventType = "THREAD_CREATED"
	EventThreadUpdated EventType = "THREAD_UPDATED"
	EventThreadDeleted EventType = "THREAD_DELETED"
	EventNewReply      EventType = "NEW_REPLY"
	EventLikeUpdate    EventType = "LIKE_UPDATE"
	EventNotification  EventType = "NOTIFICATION"
)

// Event is a broadcast message pushed to every connected websocket client.
// UserID, when set, names the user the event is aimed at; clients are
// expected to self-filter on it.
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message,omitempty"`
	UserID  int64     `json:"userId,omitempty"`
	Payload any       `json:"payload,omitempty"`
}

type LikeUpdatePayload struct {
	ThreadID int64 `json:"threadId"`
	Likes    int64 `json:"likes"`
}
