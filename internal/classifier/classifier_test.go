package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClassifier_Predict(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)

		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"probabilities":[0.9,0.1]}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL, ClassMapping{"chest_strong", "chest_weak"}, time.Second)

	probs, err := c.Predict(context.Background(), []byte("fake-jpeg-bytes"))
	require.NoError(t, err)

	assert.InDelta(t, 0.9, probs["chest_strong"], 1e-9)
	assert.InDelta(t, 0.1, probs["chest_weak"], 1e-9)
}

func TestHTTPClassifier_Predict_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL, ClassMapping{"chest_strong"}, time.Second)

	_, err := c.Predict(context.Background(), []byte("x"))
	assert.Error(t, err)
}

func TestHTTPClassifier_Predict_Unreachable(t *testing.T) {
	t.Parallel()

	c := NewHTTPClassifier("http://127.0.0.1:1", ClassMapping{"chest_strong"}, 200*time.Millisecond)

	_, err := c.Predict(context.Background(), []byte("x"))
	assert.Error(t, err)
}

func TestHTTPClassifier_Predict_VectorMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"probabilities":[0.9,0.1,0.5]}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL, ClassMapping{"chest_strong", "chest_weak"}, time.Second)

	_, err := c.Predict(context.Background(), []byte("x"))
	assert.Error(t, err)
}
