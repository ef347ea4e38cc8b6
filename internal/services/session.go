package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/repositories"
)

var (
	// ErrSessionNotFound is returned when a session does not exist or is not
	// owned by the caller. The two cases are deliberately indistinguishable.
	ErrSessionNotFound = errors.New("session not found")
)

// Number of recent sessions the dashboard aggregates over.
const dashboardSessionLimit = 10

// SessionReader defines read operations for sessions.
type SessionReader interface {
	GetByIDAndUser(ctx context.Context, sessionID, userID uuid.UUID) (*models.SessionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SessionDB, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.SessionDB, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, userID uuid.UUID) (*models.SessionDB, error)
	Update(ctx context.Context, sessionID, userID uuid.UUID, upd repositories.SessionUpdate) (*models.SessionDB, error)
}

// EmotionReader defines read operations for emotion samples.
type EmotionReader interface {
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.EmotionDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SessionService handles the interview-session lifecycle and aggregation.
type SessionService struct {
	readRepo    SessionReader
	writeRepo   SessionWriter
	emotionRepo EmotionReader
	kafkaWriter KafkaWriter
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	readRepo SessionReader,
	writeRepo SessionWriter,
	emotionRepo EmotionReader,
	kafkaWriter KafkaWriter,
) *SessionService {
	return &SessionService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		emotionRepo: emotionRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an analytics event to Kafka. Best effort: failures
// are logged and never fail the request.
func (s *SessionService) publishEvent(ctx context.Context, event models.AnalyticsEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.EventType)
	}
}

// Create opens a new session for the user.
func (s *SessionService) Create(ctx context.Context, userID uuid.UUID) (*models.SessionDB, error) {
	session, err := s.writeRepo.Save(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to create session", "userID", userID, "error", err)
		return nil, err
	}
	return session, nil
}

// Update closes (or amends) a session owned by the user. When the session has
// collected emotion samples, average_confidence and dominant_emotion are
// computed from them and override whatever the client supplied; client values
// are used only for sessions without samples. A summary line is generated
// from the final figures.
func (s *SessionService) Update(ctx context.Context, userID, sessionID uuid.UUID, upd repositories.SessionUpdate) (*models.SessionDB, error) {
	session, err := s.readRepo.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get session", "sessionID", sessionID, "userID", userID, "error", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	samples, err := s.emotionRepo.ListBySession(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to list emotion samples", "sessionID", sessionID, "error", err)
		return nil, err
	}

	if len(samples) > 0 {
		avg := meanConfidence(samples)
		mode := dominantEmotion(samples)
		upd.AverageConfidence = &avg
		upd.DominantEmotion = &mode
	}

	if upd.EndTime == nil {
		now := time.Now().UTC()
		upd.EndTime = &now
	}

	if upd.SessionSummary == nil && upd.AverageConfidence != nil && upd.DominantEmotion != nil {
		totalQuestions := session.TotalQuestions
		if upd.TotalQuestions != nil {
			totalQuestions = *upd.TotalQuestions
		}
		summary := fmt.Sprintf("Completed %d questions with %d%% average confidence. Dominant emotion: %s.",
			totalQuestions, int(*upd.AverageConfidence*100), *upd.DominantEmotion)
		upd.SessionSummary = &summary
	}

	updated, err := s.writeRepo.Update(ctx, sessionID, userID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update session", "sessionID", sessionID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrSessionNotFound
	}

	event := models.AnalyticsEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		EventType: models.EventSessionClosed,
		UserID:    userID.String(),
		SessionID: sessionID.String(),
	}
	if updated.DominantEmotion != nil {
		event.Emotion = *updated.DominantEmotion
	}
	if updated.AverageConfidence != nil {
		event.Confidence = *updated.AverageConfidence
	}
	s.publishEvent(ctx, event)

	return updated, nil
}

// List returns all sessions of the user, newest first.
func (s *SessionService) List(ctx context.Context, userID uuid.UUID) ([]models.SessionDB, error) {
	sessions, err := s.readRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list sessions", "userID", userID, "error", err)
		return nil, err
	}
	return sessions, nil
}

// Summary returns a session owned by the user together with its ordered
// emotion timeline.
func (s *SessionService) Summary(ctx context.Context, userID, sessionID uuid.UUID) (*models.SessionDB, []models.EmotionDB, error) {
	session, err := s.readRepo.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get session", "sessionID", sessionID, "userID", userID, "error", err)
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrSessionNotFound
	}

	timeline, err := s.emotionRepo.ListBySession(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to list emotion samples", "sessionID", sessionID, "error", err)
		return nil, nil, err
	}

	return session, timeline, nil
}

// Dashboard aggregates the user's recent sessions: mean average_confidence
// over closed sessions and the modal dominant emotion, ties broken by
// first-encountered (newest session wins).
func (s *SessionService) Dashboard(ctx context.Context, userID uuid.UUID) (totalSessions int, averageConfidence float64, bestEmotion string, recent []models.SessionDB, err error) {
	recent, err = s.readRepo.ListRecentByUser(ctx, userID, dashboardSessionLimit)
	if err != nil {
		logger.Log.Errorw("failed to list recent sessions", "userID", userID, "error", err)
		return 0, 0, "", nil, err
	}

	totalSessions = len(recent)
	bestEmotion = "Neutral"

	var sum float64
	var closed int
	counts := make(map[string]int)
	var bestCount int

	for _, session := range recent {
		if session.AverageConfidence == nil {
			continue
		}
		sum += *session.AverageConfidence
		closed++

		if session.DominantEmotion == nil {
			continue
		}
		counts[*session.DominantEmotion]++
		if counts[*session.DominantEmotion] > bestCount {
			bestCount = counts[*session.DominantEmotion]
			bestEmotion = *session.DominantEmotion
		}
	}

	if closed > 0 {
		averageConfidence = sum / float64(closed)
	}

	return totalSessions, averageConfidence, bestEmotion, recent, nil
}

// meanConfidence returns the arithmetic mean of the samples' confidence.
func meanConfidence(samples []models.EmotionDB) float64 {
	var sum float64
	for _, sample := range samples {
		sum += sample.Confidence
	}
	return sum / float64(len(samples))
}

// dominantEmotion returns the modal emotion label, ties broken by
// first-encountered in capture order.
func dominantEmotion(samples []models.EmotionDB) string {
	counts := make(map[string]int)
	best := samples[0].Emotion
	var bestCount int
	for _, sample := range samples {
		counts[sample.Emotion]++
		if counts[sample.Emotion] > bestCount {
			bestCount = counts[sample.Emotion]
			best = sample.Emotion
		}
	}
	return best
}
