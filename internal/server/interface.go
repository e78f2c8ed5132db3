//go:generate mockgen -source=interface.go -destination=../mocks/server/mock_server.go -package=mock_server
package server

import (
	"context"

	"github.com/at-ishikawa/kanafy/internal/feedback"
	"github.com/at-ishikawa/kanafy/internal/pipeline"
)

type DocumentPipeline interface {
	ConvertDocumentWith(ctx context.Context, text string, overrides pipeline.Overrides) (pipeline.Output, error)
}

type CorrectionSubmitter interface {
	Submit(ctx context.Context, source, pronunciation string) (feedback.DictionaryEntry, error)
}
