// Package server provides Connect RPC handlers for the document conversion service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/kanafy/internal/conversion"
	"github.com/at-ishikawa/kanafy/internal/feedback"
	"github.com/at-ishikawa/kanafy/internal/kanafy"
	"github.com/at-ishikawa/kanafy/internal/pipeline"
)

const (
	ServiceName = "kanafy.v1.KanafyService"

	ConvertDocumentProcedure  = "/" + ServiceName + "/ConvertDocument"
	SubmitCorrectionProcedure = "/" + ServiceName + "/SubmitCorrection"
)

// ConvertDocumentRequest accepts an empty content, which is a document of one blank line.
// UseG2pk falls back to the server configuration when it is omitted.
type ConvertDocumentRequest struct {
	Content string `json:"content" validate:"max=50000"`
	UseG2pk *bool  `json:"use_g2pk,omitempty"`
}

type SubmitCorrectionRequest struct {
	Source        string `json:"hangul" validate:"required,max=200"`
	Pronunciation string `json:"kana" validate:"required,max=500"`
}

type SubmitCorrectionResponse struct {
	Success bool   `json:"success"`
	Source  string `json:"hangul"`
	Kana    string `json:"kana"`
}

// Handler implements the procedures of the conversion service.
type Handler struct {
	pipeline  DocumentPipeline
	submitter CorrectionSubmitter
	validator *validator.Validate
}

func NewHandler(pipeline DocumentPipeline, submitter CorrectionSubmitter) *Handler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		pipeline:  pipeline,
		submitter: submitter,
		validator: validate,
	}
}

// NewServiceHandler returns the path and handler to mount on a mux.
func NewServiceHandler(h *Handler, options ...connect.HandlerOption) (string, http.Handler) {
	options = append([]connect.HandlerOption{WithJSONCodec()}, options...)

	mux := http.NewServeMux()
	mux.Handle(ConvertDocumentProcedure, connect.NewUnaryHandler(
		ConvertDocumentProcedure,
		h.ConvertDocument,
		options...,
	))
	mux.Handle(SubmitCorrectionProcedure, connect.NewUnaryHandler(
		SubmitCorrectionProcedure,
		h.SubmitCorrection,
		options...,
	))
	return "/" + ServiceName + "/", mux
}

// ConvertDocument converts a timestamped lyrics document.
func (h *Handler) ConvertDocument(
	ctx context.Context,
	req *connect.Request[ConvertDocumentRequest],
) (*connect.Response[pipeline.Output], error) {
	if err := h.validator.Struct(req.Msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	output, err := h.pipeline.ConvertDocumentWith(ctx, req.Msg.Content, pipeline.Overrides{UseG2pk: req.Msg.UseG2pk})
	if err != nil {
		return nil, conversionError(err)
	}
	return connect.NewResponse(&output), nil
}

// SubmitCorrection forwards a pronunciation correction to the dictionary.
func (h *Handler) SubmitCorrection(
	ctx context.Context,
	req *connect.Request[SubmitCorrectionRequest],
) (*connect.Response[SubmitCorrectionResponse], error) {
	if err := h.validator.Struct(req.Msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	entry, err := h.submitter.Submit(ctx, req.Msg.Source, req.Msg.Pronunciation)
	if err != nil {
		return nil, submitError(err)
	}
	return connect.NewResponse(&SubmitCorrectionResponse{
		Success: true,
		Source:  entry.Source,
		Kana:    entry.Pronunciation,
	}), nil
}

func conversionError(err error) *connect.Error {
	switch {
	case errors.Is(err, conversion.ErrUnreachable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	var responseErr *kanafy.ResponseError
	if errors.As(err, &responseErr) && responseErr.StatusCode < http.StatusInternalServerError {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func submitError(err error) *connect.Error {
	if errors.Is(err, feedback.ErrEmptyField) || errors.Is(err, feedback.ErrTooLong) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	var submitErr *feedback.SubmitError
	if !errors.As(err, &submitErr) {
		return connect.NewError(connect.CodeInternal, err)
	}

	message := errors.New(submitErr.UserMessage())
	switch submitErr.Kind {
	case feedback.KindNetworkUnreachable:
		return connect.NewError(connect.CodeUnavailable, message)
	case feedback.KindNotFound:
		return connect.NewError(connect.CodeNotFound, message)
	case feedback.KindRejectedByService:
		return connect.NewError(connect.CodeFailedPrecondition, message)
	default:
		return connect.NewError(connect.CodeUnknown, fmt.Errorf("%s: %w", submitErr.UserMessage(), err))
	}
}
