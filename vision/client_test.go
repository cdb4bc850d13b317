package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikelihoodScore(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, LikelihoodScore("VERY_UNLIKELY"))
	assert.Equal(25, LikelihoodScore("UNLIKELY"))
	assert.Equal(50, LikelihoodScore("POSSIBLE"))
	assert.Equal(75, LikelihoodScore("LIKELY"))
	assert.Equal(100, LikelihoodScore("VERY_LIKELY"))

	// 未知值按 0 处理
	assert.Equal(0, LikelihoodScore(""))
	assert.Equal(0, LikelihoodScore("UNKNOWN"))
}

func TestAnnotateSafeSearch(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"responses": [
				{
					"safeSearchAnnotation": {
						"adult": "LIKELY",
						"spoof": "VERY_UNLIKELY",
						"medical": "UNLIKELY",
						"violence": "POSSIBLE",
						"racy": "LIKELY"
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.Endpoint = srv.URL

	ss, err := client.AnnotateSafeSearch(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal("LIKELY", ss.Adult)
	assert.Equal("POSSIBLE", ss.Violence)

	verdict := ss.Verdict()
	assert.Equal(75, verdict.AdultScore)
	assert.Equal(50, verdict.ViolenceScore)
}

func TestAnnotateSafeSearchEmptyResponse(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responses": [{}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.Endpoint = srv.URL

	ss, err := client.AnnotateSafeSearch(context.Background(), "aGVsbG8=")
	require.NoError(t, err)

	verdict := ss.Verdict()
	assert.Equal(0, verdict.AdultScore)
	assert.Equal(0, verdict.ViolenceScore)
}

func TestAnnotateSafeSearchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("bad-key")
	client.Endpoint = srv.URL

	_, err := client.AnnotateSafeSearch(context.Background(), "aGVsbG8=")
	require.Error(t, err)
}
