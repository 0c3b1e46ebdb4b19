// Package vision turns a face photo into a 1-5 mood.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
)

var (
	ErrNoFace         = errors.New("no face detected")
	ErrNotConfigured  = errors.New("vision endpoint not configured")
	ErrEmptyImage     = errors.New("empty image")
	ErrDetectorStatus = errors.New("detector returned an error status")
)

// Detector maps an image to a mood in [1,5].
type Detector interface {
	Detect(ctx context.Context, image []byte) (int, error)
}

// Emotions are per-face scores in [0,1] as returned by the detection API.
type Emotions struct {
	Anger     float64 `json:"anger"`
	Contempt  float64 `json:"contempt"`
	Disgust   float64 `json:"disgust"`
	Fear      float64 `json:"fear"`
	Happiness float64 `json:"happiness"`
	Neutral   float64 `json:"neutral"`
	Sadness   float64 `json:"sadness"`
	Surprise  float64 `json:"surprise"`
}

// MapEmotions weighs the scores around a neutral 3 and rounds to the mood scale.
func MapEmotions(e Emotions) int {
	score := 3.0
	score += e.Happiness * 2
	score += e.Surprise * 0.5
	score -= e.Sadness * 2
	score -= e.Anger * 2
	score -= e.Fear * 1.5
	score -= e.Disgust * 1.5
	score -= e.Contempt
	score += (e.Neutral - 0.5) * 0.2

	// Half rounds up.
	mood := int(math.Floor(score + 0.5))
	if mood < 1 {
		return 1
	}
	if mood > 5 {
		return 5
	}
	return mood
}

type face struct {
	FaceAttributes struct {
		Emotion Emotions `json:"emotion"`
	} `json:"faceAttributes"`
}

// HTTPDetector calls a Face-API style detect endpoint and maps the first
// face's emotion scores.
type HTTPDetector struct {
	Endpoint string
	Key      string
	Client   *http.Client
}

func NewHTTPDetector(endpoint, key string, timeout time.Duration) *HTTPDetector {
	return &HTTPDetector{
		Endpoint: strings.TrimRight(endpoint, "/"),
		Key:      key,
		Client:   &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDetector) Detect(ctx context.Context, image []byte) (int, error) {
	if d.Endpoint == "" {
		return 0, ErrNotConfigured
	}
	if len(image) == 0 {
		return 0, ErrEmptyImage
	}
	url := d.Endpoint + "/face/v1.0/detect?returnFaceAttributes=emotion"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", d.Key)

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("detect: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%w: %d", ErrDetectorStatus, resp.StatusCode)
	}

	var faces []face
	if err := json.NewDecoder(resp.Body).Decode(&faces); err != nil {
		return 0, fmt.Errorf("decode detect response: %w", err)
	}
	if len(faces) == 0 {
		return 0, ErrNoFace
	}
	return MapEmotions(faces[0].FaceAttributes.Emotion), nil
}

// Fallback wraps a detector so that any failure yields a random mood instead
// of an error. The failure is logged.
type Fallback struct {
	inner  Detector
	rng    *rand.Rand
	logger hclog.Logger
}

func WithFallback(inner Detector, rng *rand.Rand, logger hclog.Logger) *Fallback {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Fallback{inner: inner, rng: rng, logger: logger.Named("vision")}
}

func (f *Fallback) Detect(ctx context.Context, image []byte) (int, error) {
	mood, err := f.inner.Detect(ctx, image)
	if err == nil {
		return mood, nil
	}
	mood = f.rng.Intn(5) + 1
	f.logger.Warn("mood detection failed, using simulated mood", "error", err, "mood", mood)
	return mood, nil
}
