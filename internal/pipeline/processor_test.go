package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/ocr"
	"github.com/nikhilbhat/docuscan/internal/repository"
)

type stubRecognizer struct {
	res ocr.Result
	err error
}

func (s stubRecognizer) Recognize(context.Context, []byte) (ocr.Result, error) {
	return s.res, s.err
}

type fakeRepo struct {
	inserts []repository.InsertRequest
}

func (f *fakeRepo) Insert(_ context.Context, req repository.InsertRequest) (*entity.Extraction, error) {
	f.inserts = append(f.inserts, req)
	return &entity.Extraction{
		ID:              len(f.inserts),
		Filename:        req.Filename,
		DocumentType:    req.DocumentType,
		Fields:          req.Fields,
		RawText:         req.RawText,
		ConfidenceScore: req.ConfidenceScore,
		CreatedAt:       time.Now(),
	}, nil
}

func (f *fakeRepo) ListRecent(context.Context, int) ([]*entity.Extraction, error) {
	return nil, nil
}

func (f *fakeRepo) GetByID(context.Context, int) (*entity.Extraction, error) {
	return nil, common.ErrNotFound
}

func lines(texts ...string) ocr.Result {
	res := ocr.Result{}
	for _, txt := range texts {
		res.Lines = append(res.Lines, ocr.Line{Text: txt, Confidence: 0.9})
	}
	return res
}

func TestProcessAadhaarDocument(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{res: lines("GOVERNMENT OF INDIA", "RAHUL KUMAR", "1234 5678 9012")}, repo, nil)

	rec, err := p.Process(context.Background(), []byte("img"), "aadhaar.png")
	require.NoError(t, err)

	require.Equal(t, constants.Aadhaar, rec.DocumentType)
	require.Equal(t, "123456789012", rec.Fields.Aadhaar)
	require.Equal(t, "Rahul Kumar", rec.Fields.Name)
	require.Equal(t, "India", rec.Fields.Country)
	require.Equal(t, "aadhaar.png", rec.Filename)
	require.InDelta(t, 0.9, float64(rec.ConfidenceScore), 1e-6)
	require.Len(t, repo.inserts, 1)
}

func TestProcessPANDocument(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{res: lines("INCOME TAX DEPARTMENT", "ABCDE1234F", "12/05/1998")}, repo, nil)

	rec, err := p.Process(context.Background(), []byte("img"), "pan.jpg")
	require.NoError(t, err)

	require.Equal(t, constants.PAN, rec.DocumentType)
	require.Equal(t, "ABCDE1234F", rec.Fields.PAN)
	require.Empty(t, rec.Fields.Aadhaar)
	require.Equal(t, "1998-05-12", rec.Fields.DOB)
}

func TestProcessBusinessCard(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{res: lines("Rohan Mehta", "rohan@acme.com", "+91 9876543210")}, repo, nil)

	rec, err := p.Process(context.Background(), []byte("img"), "card.png")
	require.NoError(t, err)

	require.Equal(t, constants.BusinessCard, rec.DocumentType)
	require.Equal(t, "rohan@acme.com", rec.Fields.Email)
	require.Equal(t, "9876543210", rec.Fields.Phone)
}

func TestProcessGenericDocument(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{res: lines("meeting notes", "remember the milk")}, repo, nil)

	rec, err := p.Process(context.Background(), []byte("img"), "note.png")
	require.NoError(t, err)

	require.Equal(t, constants.GenericDocument, rec.DocumentType)
	require.Equal(t, "", rec.Fields.Name)
	require.Equal(t, "", rec.Fields.Email)
}

func TestProcessNoTextFound(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{res: ocr.Result{}}, repo, nil)

	_, err := p.Process(context.Background(), []byte("img"), "blank.png")
	require.ErrorIs(t, err, common.ErrNoTextFound)
	// nothing reaches storage
	require.Empty(t, repo.inserts)
}

func TestProcessWhitespaceOnlyText(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{res: lines("   ", "\t")}, repo, nil)

	_, err := p.Process(context.Background(), []byte("img"), "blank.png")
	require.ErrorIs(t, err, common.ErrNoTextFound)
	require.Empty(t, repo.inserts)
}

func TestProcessRecognizerErrorPropagates(t *testing.T) {
	repo := &fakeRepo{}
	p := NewProcessor(stubRecognizer{err: common.ErrRecognition}, repo, nil)

	_, err := p.Process(context.Background(), []byte("img"), "bad.png")
	require.ErrorIs(t, err, common.ErrRecognition)
	require.Empty(t, repo.inserts)
}
