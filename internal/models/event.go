package models

// Analytics event types published to Kafka.
const (
	EventEmotionSample = "emotion_sample"
	EventSessionClosed = "session_closed"
)

// AnalyticsEvent represents an analytics record published to Kafka for every
// emotion sample and every closed session.
type AnalyticsEvent struct {
	EventID    string  `json:"event_id"`             // EventID is a unique identifier for the event.
	Timestamp  int64   `json:"timestamp"`            // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	EventType  string  `json:"event_type"`           // EventType is "emotion_sample" or "session_closed".
	UserID     string  `json:"user_id"`              // UserID is the identifier of the user the event belongs to.
	SessionID  string  `json:"session_id,omitempty"` // SessionID is the related session, if any.
	Emotion    string  `json:"emotion,omitempty"`    // Emotion is the label attached to the event.
	Confidence float64 `json:"confidence,omitempty"` // Confidence is the score attached to the event.
}
