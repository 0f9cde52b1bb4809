package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/extract"
	"github.com/nikhilbhat/docuscan/internal/repository"
)

type stubProcessor struct {
	rec *entity.Extraction
	err error
}

func (s stubProcessor) Process(context.Context, []byte, string) (*entity.Extraction, error) {
	return s.rec, s.err
}

type stubRepo struct {
	records map[int]*entity.Extraction
	listErr error
}

func (s stubRepo) Insert(context.Context, repository.InsertRequest) (*entity.Extraction, error) {
	panic("not used by handlers")
}

func (s stubRepo) ListRecent(context.Context, int) ([]*entity.Extraction, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*entity.Extraction, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out, nil
}

func (s stubRepo) GetByID(_ context.Context, id int) (*entity.Extraction, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rec, nil
}

type stubExporter struct {
	data []byte
	err  error
}

func (s stubExporter) ExportHistoryXLSX(context.Context, int) ([]byte, error) {
	return s.data, s.err
}

func sampleExtraction() *entity.Extraction {
	return &entity.Extraction{
		ID:           1,
		Filename:     "aadhaar.png",
		DocumentType: constants.Aadhaar,
		Fields: extract.Fields{
			Name:    "Rahul Kumar",
			Aadhaar: "123456789012",
			Country: "India",
		},
		RawText:         "RAHUL KUMAR\n1234 5678 9012",
		ConfidenceScore: 0.91,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestServer(t *testing.T, processor DocumentProcessor, repo repository.ExtractionRepository, exporter HistoryExporter) *httptest.Server {
	t.Helper()
	router := NewRouter(common.ServerConfig{
		CORSOrigins:  []string{"*"},
		HistoryLimit: 100,
	}, processor, repo, exporter, nil)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func multipartImage(t *testing.T, fieldName, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func decodeEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()
	defer resp.Body.Close()
	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHandleExtractSuccess(t *testing.T) {
	srv := newTestServer(t, stubProcessor{rec: sampleExtraction()}, stubRepo{}, stubExporter{})

	body, contentType := multipartImage(t, "file", "aadhaar.png", "image/png", []byte("fake image bytes"))
	resp, err := http.Post(srv.URL+"/api/ocr/extract", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Status)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(1), data["id"])
	require.Equal(t, "AADHAAR", data["document_type"])

	fields, ok := data["extracted_data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "123456789012", fields["aadhaar"])
	// raw text stays out of the response body
	require.NotContains(t, data, "raw_text")
}

func TestHandleExtractRejectsNonImage(t *testing.T) {
	srv := newTestServer(t, stubProcessor{rec: sampleExtraction()}, stubRepo{}, stubExporter{})

	body, contentType := multipartImage(t, "file", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	resp, err := http.Post(srv.URL+"/api/ocr/extract", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.False(t, env.Status)
}

func TestHandleExtractMissingFileField(t *testing.T) {
	srv := newTestServer(t, stubProcessor{rec: sampleExtraction()}, stubRepo{}, stubExporter{})

	body, contentType := multipartImage(t, "upload", "a.png", "image/png", []byte("x"))
	resp, err := http.Post(srv.URL+"/api/ocr/extract", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExtractNoTextFound(t *testing.T) {
	srv := newTestServer(t, stubProcessor{err: common.ErrNoTextFound}, stubRepo{}, stubExporter{})

	body, contentType := multipartImage(t, "file", "blank.png", "image/png", []byte("x"))
	resp, err := http.Post(srv.URL+"/api/ocr/extract", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.False(t, env.Status)
	require.Equal(t, "no readable text found in image", env.Message)
}

func TestHandleExtractInfrastructureFailureHidesDetails(t *testing.T) {
	dbErr := common.WrapError(common.ErrDatabase, `pq: connection refused host=10.0.0.5`)
	srv := newTestServer(t, stubProcessor{err: dbErr}, stubRepo{}, stubExporter{})

	body, contentType := multipartImage(t, "file", "a.png", "image/png", []byte("x"))
	resp, err := http.Post(srv.URL+"/api/ocr/extract", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.False(t, env.Status)
	require.NotContains(t, env.Error, "10.0.0.5")
}

func TestHandleGetByID(t *testing.T) {
	repo := stubRepo{records: map[int]*entity.Extraction{1: sampleExtraction()}}
	srv := newTestServer(t, stubProcessor{}, repo, stubExporter{})

	resp, err := http.Get(srv.URL + "/api/ocr/extract/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Status)
}

func TestHandleGetByIDNotFound(t *testing.T) {
	srv := newTestServer(t, stubProcessor{}, stubRepo{}, stubExporter{})

	resp, err := http.Get(srv.URL + "/api/ocr/extract/999")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleGetByIDRejectsNonNumeric(t *testing.T) {
	srv := newTestServer(t, stubProcessor{}, stubRepo{}, stubExporter{})

	resp, err := http.Get(srv.URL + "/api/ocr/extract/abc")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleHistory(t *testing.T) {
	repo := stubRepo{records: map[int]*entity.Extraction{1: sampleExtraction()}}
	srv := newTestServer(t, stubProcessor{}, repo, stubExporter{})

	resp, err := http.Get(srv.URL + "/api/ocr/history")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Status)
	items, ok := env.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestHandleExport(t *testing.T) {
	srv := newTestServer(t, stubProcessor{}, stubRepo{}, stubExporter{data: []byte("xlsx-bytes")})

	resp, err := http.Get(srv.URL + "/api/ocr/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

func TestRootLiveness(t *testing.T) {
	srv := newTestServer(t, stubProcessor{}, stubRepo{}, stubExporter{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "docuscan API running", body["status"])
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t, stubProcessor{}, stubRepo{}, stubExporter{})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "abc-123", resp.Header.Get("X-Request-Id"))
}
