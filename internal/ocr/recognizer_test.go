package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikhilbhat/docuscan/internal/common"
)

type stubEngine struct {
	lines []Line
	err   error
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Recognize(context.Context, []byte) ([]Line, error) {
	return s.lines, s.err
}

func (s *stubEngine) Close() error { return nil }

func TestResultFullTextPreservesEngineOrder(t *testing.T) {
	res := Result{Lines: []Line{
		{Text: "second visually, first detected", Confidence: 0.9},
		{Text: "GOVERNMENT OF INDIA", Confidence: 0.8},
		{Text: "RAHUL KUMAR", Confidence: 0.7},
	}}
	require.Equal(t,
		"second visually, first detected\nGOVERNMENT OF INDIA\nRAHUL KUMAR",
		res.FullText())
}

func TestResultAverageConfidence(t *testing.T) {
	res := Result{Lines: []Line{{Confidence: 0.5}, {Confidence: 0.9}, {Confidence: 0.7}}}
	require.InDelta(t, 0.7, res.AverageConfidence(), 1e-9)
}

func TestResultEmpty(t *testing.T) {
	var res Result
	require.Empty(t, res.FullText())
	require.Equal(t, 0.0, res.AverageConfidence())
}

func TestRecognizerHappyPath(t *testing.T) {
	engine := &stubEngine{lines: []Line{
		{Text: "RAHUL KUMAR", Confidence: 0.92},
		{Text: "1234 5678 9012", Confidence: 0.88},
	}}
	r := NewRecognizer(engine, Config{}, nil)

	res, err := r.Recognize(context.Background(), encodePNG(t, 100, 40))
	require.NoError(t, err)
	require.Equal(t, "RAHUL KUMAR\n1234 5678 9012", res.FullText())
	require.InDelta(t, 0.9, res.AverageConfidence(), 1e-9)
}

func TestRecognizerZeroDetectionsIsNotAnError(t *testing.T) {
	r := NewRecognizer(&stubEngine{}, Config{}, nil)

	res, err := r.Recognize(context.Background(), encodePNG(t, 100, 40))
	require.NoError(t, err)
	require.Empty(t, res.Lines)
	require.Equal(t, 0.0, res.AverageConfidence())
}

func TestRecognizerInvalidImage(t *testing.T) {
	r := NewRecognizer(&stubEngine{}, Config{}, nil)

	_, err := r.Recognize(context.Background(), []byte("not an image"))
	require.ErrorIs(t, err, common.ErrInvalidImage)
}

func TestRecognizerEngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("corrupt pixel buffer")}
	r := NewRecognizer(engine, Config{}, nil)

	_, err := r.Recognize(context.Background(), encodePNG(t, 100, 40))
	require.ErrorIs(t, err, common.ErrRecognition)
}
