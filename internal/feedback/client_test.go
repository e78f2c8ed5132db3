package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Submit(t *testing.T) {
	tests := []struct {
		name              string
		source            string
		pronunciation     string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want     DictionaryEntry
		wantKind Kind
		wantErr  error
	}{
		{
			name:          "accepted",
			source:        " 파닭 ",
			pronunciation: "パダク\n",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/kanafy-ko/dictionary", r.URL.Path)
				assert.Equal(t, "kanafy-cli/1.0", r.Header.Get("User-Agent"))

				var body DictionaryEntry
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, DictionaryEntry{Source: "파닭", Pronunciation: "パダク"}, body)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success":true,"hangul":"파닭","kana":"パダク"}`))
			},
			want: DictionaryEntry{Source: "파닭", Pronunciation: "パダク"},
		},
		{
			name:          "endpoint is missing",
			source:        "파닭",
			pronunciation: "パダク",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
			},
			wantKind: KindNotFound,
		},
		{
			name:          "rejected with a detail",
			source:        "파닭",
			pronunciation: "パダク",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"detail":"ハングルを入力してください。"}`))
			},
			wantKind: KindRejectedByService,
		},
		{
			name:          "server error without a detail",
			source:        "파닭",
			pronunciation: "パダク",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
			},
			wantKind: KindUnknownHTTPError,
		},
		{
			name:          "empty pronunciation",
			source:        "파닭",
			pronunciation: "   ",
			wantErr:       ErrEmptyField,
		},
		{
			name:          "empty source",
			source:        "",
			pronunciation: "パダク",
			wantErr:       ErrEmptyField,
		},
		{
			name:          "source too long",
			source:        strings.Repeat("가", MaxSourceLength+1),
			pronunciation: "カ",
			wantErr:       ErrTooLong,
		},
		{
			name:          "pronunciation too long",
			source:        "가",
			pronunciation: strings.Repeat("カ", MaxPronunciationLength+1),
			wantErr:       ErrTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				if tt.mockServerHandler == nil {
					t.Errorf("unexpected request: %s", r.URL.Path)
					return
				}
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, 0)
			got, err := client.Submit(context.Background(), tt.source, tt.pronunciation)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, requests.Load())
				return
			}
			if tt.wantKind != "" {
				var submitErr *SubmitError
				require.ErrorAs(t, err, &submitErr)
				assert.Equal(t, tt.wantKind, submitErr.Kind)
				assert.Equal(t, server.URL, submitErr.BaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.EqualValues(t, 1, requests.Load())
		})
	}
}

func TestClient_Submit_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, 0)
	_, err := client.Submit(context.Background(), "파닭", "パダク")

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, KindNetworkUnreachable, submitErr.Kind)
	assert.Contains(t, submitErr.UserMessage(), url)
}

func TestSubmitError_UserMessage(t *testing.T) {
	errs := []*SubmitError{
		{Kind: KindNetworkUnreachable, BaseURL: "http://localhost:8000"},
		{Kind: KindNotFound, BaseURL: "http://localhost:8000", StatusCode: 404},
		{Kind: KindRejectedByService, StatusCode: 400, Detail: "ハングルを入力してください。"},
		{Kind: KindUnknownHTTPError, StatusCode: 502},
	}

	seen := map[string]bool{}
	for _, err := range errs {
		message := err.UserMessage()
		assert.NotEmpty(t, message)
		assert.False(t, seen[message], "duplicated message for %s", err.Kind)
		seen[message] = true
	}
	assert.Contains(t, errs[2].UserMessage(), "ハングルを入力してください。")
	assert.Contains(t, errs[3].UserMessage(), "502")
}
