//go:generate mockgen -source=interface.go -destination=../mocks/pipeline/mock_pipeline.go -package=mock_pipeline
package pipeline

import (
	"context"

	"github.com/at-ishikawa/kanafy/internal/kanafy"
)

// DocumentConverter converts a whole document on the service side.
type DocumentConverter interface {
	ConvertDocument(ctx context.Context, content string, useG2pk bool) (kanafy.DocumentResponse, error)
}
