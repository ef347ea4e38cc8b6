package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/facades"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// Classifier is the injectable emotion-inference strategy: either the remote
// model facade or the random mock.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (emotion string, confidence, eyeContact float64, err error)
}

// EmotionWriter defines write operations for emotion samples.
type EmotionWriter interface {
	Save(ctx context.Context, userID uuid.UUID, sessionID *uuid.UUID, emotion string, confidence, eyeContactScore float64) (*models.EmotionDB, error)
}

// EmotionService runs one classifier invocation per call and records the result.
type EmotionService struct {
	classifier  Classifier
	writeRepo   EmotionWriter
	kafkaWriter KafkaWriter
}

// NewEmotionService creates a new EmotionService.
func NewEmotionService(classifier Classifier, writeRepo EmotionWriter, kafkaWriter KafkaWriter) *EmotionService {
	return &EmotionService{
		classifier:  classifier,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Analyze decodes a base64 frame, classifies it, appends an emotion sample
// and publishes an analytics event. frameData may carry a data-URL prefix.
func (s *EmotionService) Analyze(ctx context.Context, userID uuid.UUID, sessionID *uuid.UUID, frameData string) (*models.EmotionDB, error) {
	imageBytes, err := decodeFrame(frameData)
	if err != nil {
		logger.Log.Errorw("failed to decode frame data", "userID", userID, "error", err)
		return nil, err
	}

	emotion, confidence, eyeContact, err := s.classifier.Classify(ctx, imageBytes)
	if err != nil {
		logger.Log.Errorw("classification failed", "userID", userID, "error", err)
		return nil, err
	}

	sample, err := s.writeRepo.Save(ctx, userID, sessionID, emotion, confidence, eyeContact)
	if err != nil {
		logger.Log.Errorw("failed to save emotion sample", "userID", userID, "error", err)
		return nil, err
	}

	event := models.AnalyticsEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		EventType:  models.EventEmotionSample,
		UserID:     userID.String(),
		Emotion:    emotion,
		Confidence: confidence,
	}
	if sessionID != nil {
		event.SessionID = sessionID.String()
	}
	s.publishEvent(ctx, event)

	return sample, nil
}

// publishEvent publishes an analytics event to Kafka. Best effort.
func (s *EmotionService) publishEvent(ctx context.Context, event models.AnalyticsEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{Key: []byte(event.EventID), Value: data}); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	}
}

// decodeFrame decodes a base64 frame payload, tolerating the
// "data:image/...;base64," prefix browsers attach.
func decodeFrame(frameData string) ([]byte, error) {
	if idx := strings.Index(frameData, ","); idx != -1 && strings.HasPrefix(frameData, "data:") {
		frameData = frameData[idx+1:]
	}

	imageBytes, err := base64.StdEncoding.DecodeString(frameData)
	if err != nil {
		return nil, facades.ErrImageDecode
	}
	return imageBytes, nil
}
