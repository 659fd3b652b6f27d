package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"physique_backend/internal/engine"
	"physique_backend/pkg/apperrors"
)

// Classifier scores a single physique photo and returns per-label
// probabilities. Implementations must be safe for concurrent use.
type Classifier interface {
	Predict(ctx context.Context, image []byte) (engine.LabelProbabilities, error)
}

// HTTPClassifier calls the image classifier sidecar over HTTP. The
// sidecar returns one probability per class index; the mapping turns
// indexes into label names.
type HTTPClassifier struct {
	baseURL string
	mapping ClassMapping
	client  *http.Client
}

// predictResponse is the sidecar's wire format.
type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// NewHTTPClassifier builds a client with the given base URL and class
// mapping. A zero timeout falls back to 30s.
func NewHTTPClassifier(baseURL string, mapping ClassMapping, timeout time.Duration) *HTTPClassifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClassifier{
		baseURL: baseURL,
		mapping: mapping,
		client:  &http.Client{Timeout: timeout},
	}
}

// Predict uploads the image as multipart form data and decodes the
// probability vector into a label map.
func (c *HTTPClassifier) Predict(ctx context.Context, image []byte) (engine.LabelProbabilities, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "photo.jpg")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "classifier", "Image classifier is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.ErrExternalService(
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload),
			"classifier", "Image classifier rejected the request")
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.ErrExternalService(err, "classifier", "Image classifier returned a malformed response")
	}

	return c.mapping.ToProbabilities(decoded.Probabilities)
}
