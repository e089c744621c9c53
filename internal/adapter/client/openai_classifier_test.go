package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, reply func(userText string) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model          string `json:"model"`
			ResponseFormat struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)

		resp := map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]string{
						"role":    "assistant",
						"content": reply(req.Messages[1].Content),
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestOpenAIClassifier_Classify(t *testing.T) {
	t.Run("parses json reply", func(t *testing.T) {
		server := chatServer(t, func(string) string {
			return `{"label": "positive", "score": 0.97}`
		})
		defer server.Close()

		classifier := NewOpenAIClassifier("sk-test", server.URL, "gpt-4o-mini")

		result, err := classifier.Classify(context.Background(), "Loved it", "run-1")

		require.NoError(t, err)
		assert.Equal(t, "POSITIVE", result.Label)
		assert.Equal(t, 0.97, result.Score)
	})

	t.Run("clamps score", func(t *testing.T) {
		server := chatServer(t, func(string) string {
			return `{"label": "NEGATIVE", "score": 1.4}`
		})
		defer server.Close()

		classifier := NewOpenAIClassifier("sk-test", server.URL, "gpt-4o-mini")

		result, err := classifier.Classify(context.Background(), "awful", "")

		require.NoError(t, err)
		assert.Equal(t, 1.0, result.Score)
	})

	t.Run("rejects reply without label", func(t *testing.T) {
		server := chatServer(t, func(string) string {
			return `{"score": 0.5}`
		})
		defer server.Close()

		classifier := NewOpenAIClassifier("sk-test", server.URL, "gpt-4o-mini")

		_, err := classifier.Classify(context.Background(), "hmm", "")

		assert.ErrorIs(t, err, ErrEmptyPrediction)
	})

	t.Run("rejects non json reply", func(t *testing.T) {
		server := chatServer(t, func(string) string {
			return "It is positive."
		})
		defer server.Close()

		classifier := NewOpenAIClassifier("sk-test", server.URL, "gpt-4o-mini")

		_, err := classifier.Classify(context.Background(), "hmm", "")

		assert.Error(t, err)
	})
}

func TestOpenAIClassifier_ClassifyBatch(t *testing.T) {
	server := chatServer(t, func(text string) string {
		if text == "bad" {
			return `{"label": "NEGATIVE", "score": 0.9}`
		}
		return `{"label": "POSITIVE", "score": 0.8}`
	})
	defer server.Close()

	classifier := NewOpenAIClassifier("sk-test", server.URL, "gpt-4o-mini")

	results, err := classifier.ClassifyBatch(context.Background(), []string{"good", "bad"}, "")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "POSITIVE", results[0].Label)
	assert.Equal(t, "NEGATIVE", results[1].Label)
}
