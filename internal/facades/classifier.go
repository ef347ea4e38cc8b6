package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"net/http"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// Error variables
var (
	// ErrImageDecode is returned when the submitted frame is not a valid image.
	ErrImageDecode = errors.New("cannot decode image bytes")
	// ErrNoFaceDetected is returned when the model finds no face in the frame.
	ErrNoFaceDetected = errors.New("no face detected")
)

// Input size the emotion model was trained with.
const modelInputSize = 48

// ModelClassifier calls a remote emotion-model server over HTTP. The frame is
// preprocessed in-process (grayscale, 48x48, intensities in [0,1]) and sent as
// a flat tensor; the server answers with one probability row per detected face.
type ModelClassifier struct {
	url    string
	client *http.Client
}

// NewModelClassifier creates a classifier facade for the given inference URL.
func NewModelClassifier(url string, timeout time.Duration) *ModelClassifier {
	return &ModelClassifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Instances [][]float32 `json:"instances"`
}

type inferenceResponse struct {
	Predictions [][]float64 `json:"predictions"`
	EyeContact  []float64   `json:"eye_contact,omitempty"`
}

// Classify preprocesses the frame, invokes the model server and returns the
// argmax label of the closed 7-emotion set with its probability.
func (c *ModelClassifier) Classify(ctx context.Context, imageBytes []byte) (emotion string, confidence, eyeContact float64, err error) {
	pixels, err := preprocess(imageBytes)
	if err != nil {
		return "", 0, 0, err
	}

	body, err := json.Marshal(inferenceRequest{Instances: [][]float32{pixels}})
	if err != nil {
		return "", 0, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Errorw("model server request failed", "url", c.url, "error", err)
		return "", 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, 0, fmt.Errorf("model server returned status %d", resp.StatusCode)
	}

	var out inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0, 0, err
	}

	if len(out.Predictions) == 0 {
		return "", 0, 0, ErrNoFaceDetected
	}
	probs := out.Predictions[0]
	if len(probs) != len(models.EmotionLabels) {
		return "", 0, 0, fmt.Errorf("model server returned %d class scores, want %d", len(probs), len(models.EmotionLabels))
	}

	best := 0
	for i := range probs {
		if probs[i] > probs[best] {
			best = i
		}
	}

	if len(out.EyeContact) > 0 {
		eyeContact = out.EyeContact[0]
	}

	return models.EmotionLabels[best], probs[best], eyeContact, nil
}

// preprocess decodes the image, converts it to grayscale, scales it to the
// model input size and normalizes pixel intensities to [0,1].
func preprocess(imageBytes []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, ErrImageDecode
	}

	gray := image.NewGray(image.Rect(0, 0, modelInputSize, modelInputSize))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	pixels := make([]float32, len(gray.Pix))
	for i, p := range gray.Pix {
		pixels[i] = float32(p) / 255.0
	}
	return pixels, nil
}

// MockClassifier is the injectable stand-in used when no model server is
// configured. It draws labels and scores from the same distributions the
// prototype used.
type MockClassifier struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockClassifier creates a mock classifier seeded with the given value.
func NewMockClassifier(seed int64) *MockClassifier {
	return &MockClassifier{rnd: rand.New(rand.NewSource(seed))}
}

// Classify returns a random label with score ranges tied to the label.
func (c *MockClassifier) Classify(ctx context.Context, imageBytes []byte) (emotion string, confidence, eyeContact float64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	emotion = models.MockEmotions[c.rnd.Intn(len(models.MockEmotions))]

	uniform := func(lo, hi float64) float64 {
		return lo + c.rnd.Float64()*(hi-lo)
	}

	switch emotion {
	case "Happy", "Confident":
		confidence = uniform(0.7, 0.95)
		eyeContact = uniform(0.75, 0.9)
	case "Focused":
		confidence = uniform(0.65, 0.85)
		eyeContact = uniform(0.8, 0.95)
	default: // Neutral, Calm
		confidence = uniform(0.6, 0.8)
		eyeContact = uniform(0.7, 0.85)
	}

	return emotion, round2(confidence), round2(eyeContact), nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
