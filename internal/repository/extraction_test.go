package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/gen/ent"
	"github.com/nikhilbhat/docuscan/internal/common"
	"github.com/nikhilbhat/docuscan/internal/extract"
)

func openTestRepo(t *testing.T) ExtractionRepository {
	t.Helper()
	client, err := ent.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Schema.Create(context.Background()))
	return NewExtractionRepository(client, nil)
}

func TestInsertAndGetRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, InsertRequest{
		Filename:     "aadhaar.png",
		DocumentType: constants.Aadhaar,
		Fields: extract.Fields{
			Name:    "Rahul Kumar",
			Aadhaar: "123456789012",
			DOB:     "1998-05-12",
			State:   "Karnataka",
			Country: "India",
		},
		RawText:         "GOVERNMENT OF INDIA\nRAHUL KUMAR\n1234 5678 9012",
		ConfidenceScore: 0.91,
	})
	require.NoError(t, err)
	require.NotZero(t, inserted.ID)
	require.False(t, inserted.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, inserted.ID)
	require.NoError(t, err)
	require.Equal(t, "aadhaar.png", got.Filename)
	require.Equal(t, constants.Aadhaar, got.DocumentType)
	require.Equal(t, "Rahul Kumar", got.Fields.Name)
	require.Equal(t, "123456789012", got.Fields.Aadhaar)
	require.Equal(t, "1998-05-12", got.Fields.DOB)
	require.Equal(t, "Karnataka", got.Fields.State)
	require.Equal(t, "India", got.Fields.Country)
	// unset fields come back unset, not as empty-string columns
	require.Empty(t, got.Fields.Email)
	require.Empty(t, got.Fields.Phone)
	require.InDelta(t, 0.91, float64(got.ConfidenceScore), 1e-6)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsertRejectsMalformedDOB(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.Insert(context.Background(), InsertRequest{
		Filename:     "x.png",
		DocumentType: constants.GenericDocument,
		Fields:       extract.Fields{DOB: "12/05/1998"},
		RawText:      "text",
	})
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestListRecentNewestFirst(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	var ids []int
	for i := 0; i < 3; i++ {
		rec, err := repo.Insert(ctx, InsertRequest{
			Filename:        fmt.Sprintf("doc-%d.png", i),
			DocumentType:    constants.GenericDocument,
			RawText:         "text",
			ConfidenceScore: 0.5,
		})
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	recs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, ids[2], recs[0].ID)
	require.Equal(t, ids[1], recs[1].ID)
}
