// Package kanafy is the client of the remote Korean to kana conversion service.
package kanafy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"resty.dev/v3"

	"github.com/at-ishikawa/kanafy/internal/conversion"
	"github.com/at-ishikawa/kanafy/internal/lrc"
	"github.com/at-ishikawa/kanafy/internal/transport"
)

const (
	convertPath  = "/api/kanafy-ko"
	batchPath    = "/api/kanafy-ko/batch"
	documentPath = "/api/kanafy-ko/lrc"
	healthPath   = "/api/kanafy-ko/health"

	// MaxTextLength and MaxBatchItems are the request limits enforced by the service.
	MaxTextLength = 50_000
	MaxBatchItems = 100

	// The service rejects user agents that look like crawlers, including Go's default one.
	userAgent = "kanafy-cli/1.0"
)

type Client struct {
	httpClient *resty.Client
	baseURL    string
}

var _ conversion.Converter = (*Client)(nil)

// NewClient creates a client for the service at baseURL.
// A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
		baseURL:    baseURL,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// BaseURL returns the service location this client talks to.
func (client *Client) BaseURL() string {
	return client.baseURL
}

type convertRequest struct {
	Text           string `json:"text"`
	UseG2pk        bool   `json:"use_g2pk"`
	ConvertNumbers bool   `json:"convert_numbers"`
}

type batchRequest struct {
	Texts          []string `json:"texts"`
	UseG2pk        bool     `json:"use_g2pk"`
	ConvertNumbers bool     `json:"convert_numbers"`
}

type batchResponse struct {
	Results []conversion.Outcome `json:"results"`
}

type documentRequest struct {
	Content string `json:"content"`
	UseG2pk bool   `json:"use_g2pk"`
}

// DocumentResponse is the response of the server-side document conversion endpoint.
type DocumentResponse struct {
	OriginalContent  string         `json:"original_content"`
	ProcessedContent string         `json:"processed_content"`
	LineDetails      []RemoteDetail `json:"line_details"`
	UseG2pk          bool           `json:"use_g2pk"`
	TotalLines       int            `json:"total_lines"`
	LyricsLines      int            `json:"lyrics_lines"`
	MetadataLines    int            `json:"metadata_lines"`
}

// RemoteDetail is a line detail as reported by the service.
type RemoteDetail struct {
	LineNumber      int     `json:"line_number"`
	Original        string  `json:"original"`
	Processed       string  `json:"processed"`
	Type            string  `json:"type"`
	Timestamp       string  `json:"timestamp"`
	OriginalLyrics  string  `json:"original_lyrics"`
	ConvertedLyrics string  `json:"converted_lyrics"`
	Error           *string `json:"error"`
}

// LineDetail converts the remote representation into the local one.
func (detail RemoteDetail) LineDetail() lrc.LineDetail {
	kind := lrc.KindUnrecognized
	switch detail.Type {
	case "empty":
		kind = lrc.KindBlank
	case "metadata":
		kind = lrc.KindMetadata
	case "lyrics":
		if detail.OriginalLyrics != "" {
			kind = lrc.KindLyric
		}
	}

	result := lrc.LineDetail{
		LineNumber:      detail.LineNumber,
		Original:        detail.Original,
		Processed:       detail.Processed,
		Type:            kind,
		Timestamp:       detail.Timestamp,
		OriginalLyrics:  detail.OriginalLyrics,
		ConvertedLyrics: detail.ConvertedLyrics,
	}
	if detail.Error != nil {
		result.Error = *detail.Error
	}
	return result
}

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Convert implements conversion.Converter.
func (client *Client) Convert(ctx context.Context, text string, options conversion.Options) (conversion.Outcome, error) {
	if utf8.RuneCountInString(text) > MaxTextLength {
		return conversion.Outcome{}, fmt.Errorf("text is longer than %d characters", MaxTextLength)
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(convertRequest{
			Text:           text,
			UseG2pk:        options.UseG2pk,
			ConvertNumbers: options.ConvertNumbers,
		}).
		SetResult(&conversion.Outcome{}).
		Post(convertPath)
	if err != nil {
		return conversion.Outcome{}, client.transportError(err)
	}
	if response.IsError() {
		return conversion.Outcome{}, newResponseError(response.StatusCode(), response.String())
	}

	outcome, ok := response.Result().(*conversion.Outcome)
	if !ok || outcome == nil {
		return conversion.Outcome{}, fmt.Errorf("empty response body: %s", response.String())
	}
	slog.Default().Debug("converted a text",
		"text", text,
		"kana", outcome.Kana,
	)
	return *outcome, nil
}

// ConvertBatch implements conversion.Converter.
func (client *Client) ConvertBatch(ctx context.Context, texts []string, options conversion.Options) ([]conversion.Outcome, error) {
	if len(texts) > MaxBatchItems {
		return nil, fmt.Errorf("batch of %d texts exceeds the limit of %d", len(texts), MaxBatchItems)
	}
	for i, text := range texts {
		if utf8.RuneCountInString(text) > MaxTextLength {
			return nil, fmt.Errorf("text %d is longer than %d characters", i, MaxTextLength)
		}
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(batchRequest{
			Texts:          texts,
			UseG2pk:        options.UseG2pk,
			ConvertNumbers: options.ConvertNumbers,
		}).
		SetResult(&batchResponse{}).
		Post(batchPath)
	if err != nil {
		return nil, client.transportError(err)
	}
	if response.IsError() {
		return nil, newResponseError(response.StatusCode(), response.String())
	}

	body, ok := response.Result().(*batchResponse)
	if !ok || body == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	return body.Results, nil
}

// ConvertDocument sends a whole document to the server-side document conversion endpoint.
func (client *Client) ConvertDocument(ctx context.Context, content string, useG2pk bool) (DocumentResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(documentRequest{
			Content: content,
			UseG2pk: useG2pk,
		}).
		SetResult(&DocumentResponse{}).
		Post(documentPath)
	if err != nil {
		return DocumentResponse{}, client.transportError(err)
	}
	if response.IsError() {
		return DocumentResponse{}, newResponseError(response.StatusCode(), response.String())
	}

	body, ok := response.Result().(*DocumentResponse)
	if !ok || body == nil {
		return DocumentResponse{}, fmt.Errorf("empty response body: %s", response.String())
	}
	return *body, nil
}

func (client *Client) Health(ctx context.Context) (HealthStatus, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&HealthStatus{}).
		Get(healthPath)
	if err != nil {
		return HealthStatus{}, client.transportError(err)
	}
	if response.IsError() {
		return HealthStatus{}, newResponseError(response.StatusCode(), response.String())
	}

	body, ok := response.Result().(*HealthStatus)
	if !ok || body == nil {
		return HealthStatus{}, fmt.Errorf("empty response body: %s", response.String())
	}
	return *body, nil
}

func (client *Client) transportError(err error) error {
	if transport.IsUnreachable(err) {
		return fmt.Errorf("%w at %s: %w", conversion.ErrUnreachable, client.baseURL, err)
	}
	return fmt.Errorf("httpClient.Post > %w", err)
}

// ResponseError is a non-success response from the service.
type ResponseError struct {
	StatusCode int
	Detail     string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Detail)
}

func newResponseError(statusCode int, body string) *ResponseError {
	return &ResponseError{
		StatusCode: statusCode,
		Detail:     ParseDetail(body),
	}
}

// ParseDetail extracts the "detail" message of an error body, falling back to the raw body.
func ParseDetail(body string) string {
	var decoded struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil || len(decoded.Detail) == 0 {
		return strings.TrimSpace(body)
	}

	var message string
	if err := json.Unmarshal(decoded.Detail, &message); err == nil {
		return message
	}

	// Validation errors carry a list of {loc, msg, type} objects.
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(decoded.Detail, &items); err == nil {
		messages := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				messages = append(messages, item.Msg)
			}
		}
		if len(messages) > 0 {
			return strings.Join(messages, "; ")
		}
	}
	return string(decoded.Detail)
}
