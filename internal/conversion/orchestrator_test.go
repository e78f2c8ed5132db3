package conversion_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/kanafy/internal/conversion"
	"github.com/at-ishikawa/kanafy/internal/lrc"
	mock_conversion "github.com/at-ishikawa/kanafy/internal/mocks/conversion"
)

var kana = map[string]string{
	"안녕":  "アンニョン",
	"사랑해": "サランヘ",
	"하나":  "ハナ",
	"둘":   "トゥル",
	"셋":   "セッ",
}

func outcomeOf(text string) conversion.Outcome {
	return conversion.Outcome{Original: text, PhoneticHangul: text, Kana: kana[text]}
}

func TestOrchestrator_Convert_Concurrent(t *testing.T) {
	options := conversion.Options{UseG2pk: true}

	tests := []struct {
		name    string
		text    string
		setup   func(m *mock_conversion.MockConverter)
		want    map[int]lrc.ConversionResult
		wantErr error
	}{
		{
			name: "only lyric lines are submitted",
			text: "[ti:봄날]\n[00:01.23]안녕\n[00:05:00]사랑해\n\n[99:59.99]",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().Convert(gomock.Any(), "안녕", options).Return(outcomeOf("안녕"), nil)
				m.EXPECT().Convert(gomock.Any(), "사랑해", options).Return(outcomeOf("사랑해"), nil)
			},
			want: map[int]lrc.ConversionResult{
				2: lrc.Succeeded(2, "アンニョン", "안녕"),
				3: lrc.Succeeded(3, "サランヘ", "사랑해"),
			},
		},
		{
			name: "one failing line does not affect the others",
			text: "[00:01.00]하나\n[00:02.00]둘\n[00:03.00]셋",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().Convert(gomock.Any(), "하나", options).Return(outcomeOf("하나"), nil)
				m.EXPECT().Convert(gomock.Any(), "둘", options).Return(conversion.Outcome{}, errors.New("response error 500: 変換に失敗しました。"))
				m.EXPECT().Convert(gomock.Any(), "셋", options).Return(outcomeOf("셋"), nil)
			},
			want: map[int]lrc.ConversionResult{
				1: lrc.Succeeded(1, "ハナ", "하나"),
				2: lrc.Failed(2, "response error 500: 変換に失敗しました。"),
				3: lrc.Succeeded(3, "セッ", "셋"),
			},
		},
		{
			name: "error reported in the outcome becomes a failure",
			text: "[00:01.00]하나\n[00:02.00]둘",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().Convert(gomock.Any(), "하나", options).Return(outcomeOf("하나"), nil)
				m.EXPECT().Convert(gomock.Any(), "둘", options).Return(conversion.Outcome{Original: "둘", Error: "unsupported character"}, nil)
			},
			want: map[int]lrc.ConversionResult{
				1: lrc.Succeeded(1, "ハナ", "하나"),
				2: lrc.Failed(2, "unsupported character"),
			},
		},
		{
			name: "unreachable service fails the whole job",
			text: "[00:01.00]하나\n[00:02.00]둘",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().Convert(gomock.Any(), gomock.Any(), options).
					Return(conversion.Outcome{}, fmt.Errorf("httpClient.Post > %w", conversion.ErrUnreachable)).
					MinTimes(1).MaxTimes(2)
			},
			wantErr: conversion.ErrUnreachable,
		},
		{
			name:  "document without lyrics makes no call",
			text:  "[ti:봄날]\n\n[00:01.00]",
			setup: func(m *mock_conversion.MockConverter) {},
			want:  map[int]lrc.ConversionResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			converter := mock_conversion.NewMockConverter(ctrl)
			tt.setup(converter)

			orchestrator := conversion.NewOrchestrator(converter, conversion.Config{
				Mode:        conversion.ModeConcurrent,
				Concurrency: 4,
				Options:     options,
			})
			got, err := orchestrator.Convert(context.Background(), lrc.ParseDocument(tt.text))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrchestrator_Convert_Batch(t *testing.T) {
	options := conversion.Options{UseG2pk: false, ConvertNumbers: true}

	tests := []struct {
		name    string
		text    string
		setup   func(m *mock_conversion.MockConverter)
		want    map[int]lrc.ConversionResult
		wantErr error
	}{
		{
			name: "results are matched by original text, not position",
			text: "[00:01.00]하나\n[ti:x]\n[00:02.00]둘\n[00:03.00]셋",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"하나", "둘"}, options).
					Return([]conversion.Outcome{outcomeOf("둘"), outcomeOf("하나")}, nil)
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"셋"}, options).
					Return([]conversion.Outcome{outcomeOf("셋")}, nil)
			},
			want: map[int]lrc.ConversionResult{
				1: lrc.Succeeded(1, "ハナ", "하나"),
				3: lrc.Succeeded(3, "トゥル", "둘"),
				4: lrc.Succeeded(4, "セッ", "셋"),
			},
		},
		{
			name: "missing outcome fails only that line",
			text: "[00:01.00]하나\n[00:02.00]둘",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"하나", "둘"}, options).
					Return([]conversion.Outcome{outcomeOf("하나")}, nil)
			},
			want: map[int]lrc.ConversionResult{
				1: lrc.Succeeded(1, "ハナ", "하나"),
				2: lrc.Failed(2, "conversion service returned no result for this line"),
			},
		},
		{
			name: "duplicate lyrics each get a result",
			text: "[00:01.00]하나\n[00:02.00]하나",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"하나", "하나"}, options).
					Return([]conversion.Outcome{outcomeOf("하나"), outcomeOf("하나")}, nil)
			},
			want: map[int]lrc.ConversionResult{
				1: lrc.Succeeded(1, "ハナ", "하나"),
				2: lrc.Succeeded(2, "ハナ", "하나"),
			},
		},
		{
			name: "failing chunk does not affect other chunks",
			text: "[00:01.00]하나\n[00:02.00]둘\n[00:03.00]셋",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"하나", "둘"}, options).
					Return(nil, errors.New("response error 500: 一括変換に失敗しました。"))
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"셋"}, options).
					Return([]conversion.Outcome{outcomeOf("셋")}, nil)
			},
			want: map[int]lrc.ConversionResult{
				1: lrc.Failed(1, "response error 500: 一括変換に失敗しました。"),
				2: lrc.Failed(2, "response error 500: 一括変換に失敗しました。"),
				3: lrc.Succeeded(3, "セッ", "셋"),
			},
		},
		{
			name: "unreachable service fails the whole job",
			text: "[00:01.00]하나\n[00:02.00]둘\n[00:03.00]셋",
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().ConvertBatch(gomock.Any(), gomock.Any(), options).
					Return(nil, conversion.ErrUnreachable).
					MinTimes(1).MaxTimes(2)
			},
			wantErr: conversion.ErrUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			converter := mock_conversion.NewMockConverter(ctrl)
			tt.setup(converter)

			orchestrator := conversion.NewOrchestrator(converter, conversion.Config{
				Mode:        conversion.ModeBatch,
				Concurrency: 2,
				BatchSize:   2,
				Options:     options,
			})
			got, err := orchestrator.Convert(context.Background(), lrc.ParseDocument(tt.text))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrchestrator_Convert_ReversedCompletionOrder(t *testing.T) {
	texts := []string{"하나", "둘", "셋", "안녕", "사랑해"}
	document := ""
	for i, text := range texts {
		if i > 0 {
			document += "\n"
		}
		document += fmt.Sprintf("[00:0%d.00]%s", i, text)
	}

	started := make(chan string, len(texts))
	finished := make(chan string, len(texts))
	release := make(map[string]chan struct{}, len(texts))
	for _, text := range texts {
		release[text] = make(chan struct{})
	}

	ctrl := gomock.NewController(t)
	converter := mock_conversion.NewMockConverter(ctrl)
	converter.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, text string, _ conversion.Options) (conversion.Outcome, error) {
			started <- text
			<-release[text]
			defer func() { finished <- text }()
			return outcomeOf(text), nil
		}).
		Times(len(texts))

	var completionOrder []string
	coordinated := make(chan struct{})
	go func() {
		defer close(coordinated)
		for range texts {
			<-started
		}
		for i := len(texts) - 1; i >= 0; i-- {
			close(release[texts[i]])
			completionOrder = append(completionOrder, <-finished)
		}
	}()

	doc := lrc.ParseDocument(document)
	orchestrator := conversion.NewOrchestrator(converter, conversion.Config{
		Mode:        conversion.ModeConcurrent,
		Concurrency: len(texts),
	})
	results, err := orchestrator.Convert(context.Background(), doc)
	require.NoError(t, err)
	<-coordinated
	assert.Equal(t, []string{"사랑해", "안녕", "셋", "둘", "하나"}, completionOrder)

	got := lrc.Reassemble(doc, results)
	assert.Equal(t, "[00:00.00]ハナ\n[00:01.00]トゥル\n[00:02.00]セッ\n[00:03.00]アンニョン\n[00:04.00]サランヘ", got.Document)
	for i, detail := range got.Details {
		assert.Equal(t, i+1, detail.LineNumber)
	}
}

func TestOrchestrator_Convert_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ctrl := gomock.NewController(t)
	converter := mock_conversion.NewMockConverter(ctrl)
	converter.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, text string, _ conversion.Options) (conversion.Outcome, error) {
			cancel()
			<-ctx.Done()
			return conversion.Outcome{}, ctx.Err()
		}).
		MinTimes(1).MaxTimes(2)

	orchestrator := conversion.NewOrchestrator(converter, conversion.Config{Concurrency: 1})
	got, err := orchestrator.Convert(ctx, lrc.ParseDocument("[00:01.00]하나\n[00:02.00]둘"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestOrchestrator_Convert_UnknownMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	converter := mock_conversion.NewMockConverter(ctrl)

	orchestrator := conversion.NewOrchestrator(converter, conversion.Config{Mode: "stream"})
	_, err := orchestrator.Convert(context.Background(), lrc.ParseDocument("[00:01.00]하나"))
	assert.ErrorContains(t, err, "unknown conversion mode")
}

func TestOrchestrator_ConvertWithOptions(t *testing.T) {
	configured := conversion.Options{UseG2pk: true}
	override := conversion.Options{UseG2pk: false, ConvertNumbers: true}

	tests := []struct {
		name  string
		mode  conversion.Mode
		setup func(m *mock_conversion.MockConverter)
	}{
		{
			name: "concurrent",
			mode: conversion.ModeConcurrent,
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().Convert(gomock.Any(), "하나", override).Return(outcomeOf("하나"), nil)
			},
		},
		{
			name: "batch",
			mode: conversion.ModeBatch,
			setup: func(m *mock_conversion.MockConverter) {
				m.EXPECT().ConvertBatch(gomock.Any(), []string{"하나"}, override).Return([]conversion.Outcome{outcomeOf("하나")}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			converter := mock_conversion.NewMockConverter(ctrl)
			tt.setup(converter)

			orchestrator := conversion.NewOrchestrator(converter, conversion.Config{Mode: tt.mode, Options: configured})
			got, err := orchestrator.ConvertWithOptions(context.Background(), lrc.ParseDocument("[ti:x]\n[00:01.00]하나"), override)
			require.NoError(t, err)
			assert.Equal(t, map[int]lrc.ConversionResult{2: lrc.Succeeded(2, "ハナ", "하나")}, got)
		})
	}
}
