// Package feedback submits pronunciation corrections to the community dictionary of the conversion service.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/kanafy/internal/kanafy"
)

const (
	dictionaryPath = "/api/kanafy-ko/dictionary"

	MaxSourceLength        = 200
	MaxPronunciationLength = 500
)

var (
	// ErrEmptyField is returned without calling the service when a field is empty after trimming.
	ErrEmptyField = errors.New("source and pronunciation must not be empty")
	ErrTooLong    = errors.New("entry is too long")
)

// DictionaryEntry is a correction from a source token to its pronunciation.
type DictionaryEntry struct {
	Source        string `json:"hangul"`
	Pronunciation string `json:"kana"`
}

// Kind classifies why a submission failed.
type Kind string

const (
	KindNetworkUnreachable Kind = "network-unreachable"
	KindNotFound           Kind = "not-found"
	KindRejectedByService  Kind = "rejected-by-service"
	KindUnknownHTTPError   Kind = "unknown-http-error"
)

// SubmitError is a classified submission failure.
type SubmitError struct {
	Kind       Kind
	BaseURL    string
	StatusCode int
	Detail     string
	Err        error
}

func (e *SubmitError) Error() string {
	switch e.Kind {
	case KindNetworkUnreachable:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.BaseURL, e.Err)
	case KindRejectedByService:
		return fmt.Sprintf("%s: status %d: %s", e.Kind, e.StatusCode, e.Detail)
	default:
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	}
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// UserMessage tells the user what to do about the failure.
func (e *SubmitError) UserMessage() string {
	switch e.Kind {
	case KindNetworkUnreachable:
		return fmt.Sprintf("Could not reach the dictionary service at %s. Make sure the conversion service is running there.", e.BaseURL)
	case KindNotFound:
		return fmt.Sprintf("The dictionary endpoint does not exist at %s. The service may be an outdated deployment; redeploy it.", e.BaseURL)
	case KindRejectedByService:
		return fmt.Sprintf("The dictionary service rejected the entry: %s", e.Detail)
	default:
		return fmt.Sprintf("The dictionary service failed with HTTP status %d. Try again later.", e.StatusCode)
	}
}

type Client struct {
	httpClient *resty.Client
	baseURL    string
}

// NewClient creates a client for the dictionary endpoint under baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "kanafy-cli/1.0")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		httpClient: client,
		baseURL:    baseURL,
	}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Hangul  string `json:"hangul"`
	Kana    string `json:"kana"`
}

// Submit sends a correction to the dictionary.
// Fields are trimmed first; invalid entries are rejected without a network call.
func (client *Client) Submit(ctx context.Context, source, pronunciation string) (DictionaryEntry, error) {
	entry, err := NewDictionaryEntry(source, pronunciation)
	if err != nil {
		return DictionaryEntry{}, err
	}

	res, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(entry).
		SetResult(&submitResponse{}).
		Post(dictionaryPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return DictionaryEntry{}, ctxErr
		}
		return DictionaryEntry{}, &SubmitError{
			Kind:    KindNetworkUnreachable,
			BaseURL: client.baseURL,
			Err:     err,
		}
	}
	if res.IsError() {
		submitErr := classifyResponse(res.StatusCode(), res.String())
		submitErr.BaseURL = client.baseURL
		return DictionaryEntry{}, submitErr
	}

	slog.Default().Info("submitted a dictionary entry",
		"source", entry.Source,
		"pronunciation", entry.Pronunciation,
	)
	if body, ok := res.Result().(*submitResponse); ok && body != nil && body.Hangul != "" {
		return DictionaryEntry{Source: body.Hangul, Pronunciation: body.Kana}, nil
	}
	return entry, nil
}

// NewDictionaryEntry trims and validates a correction.
func NewDictionaryEntry(source, pronunciation string) (DictionaryEntry, error) {
	entry := DictionaryEntry{
		Source:        strings.TrimSpace(source),
		Pronunciation: strings.TrimSpace(pronunciation),
	}
	if entry.Source == "" || entry.Pronunciation == "" {
		return DictionaryEntry{}, ErrEmptyField
	}
	if utf8.RuneCountInString(entry.Source) > MaxSourceLength {
		return DictionaryEntry{}, fmt.Errorf("%w: source must be at most %d characters", ErrTooLong, MaxSourceLength)
	}
	if utf8.RuneCountInString(entry.Pronunciation) > MaxPronunciationLength {
		return DictionaryEntry{}, fmt.Errorf("%w: pronunciation must be at most %d characters", ErrTooLong, MaxPronunciationLength)
	}
	return entry, nil
}

func classifyResponse(statusCode int, body string) *SubmitError {
	if statusCode == http.StatusNotFound {
		return &SubmitError{Kind: KindNotFound, StatusCode: statusCode}
	}
	if detail, ok := structuredDetail(body); ok {
		return &SubmitError{Kind: KindRejectedByService, StatusCode: statusCode, Detail: detail}
	}
	return &SubmitError{Kind: KindUnknownHTTPError, StatusCode: statusCode}
}

func structuredDetail(body string) (string, bool) {
	if !strings.Contains(body, `"detail"`) {
		return "", false
	}
	detail := kanafy.ParseDetail(body)
	if detail == "" || detail == strings.TrimSpace(body) {
		return "", false
	}
	return detail, true
}
