package memstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepository_SequenceSurvivesDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository(NewStore())

	first, err := repo.NextInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	inv := domain.Invoice{InvoiceID: uuid.NewString(), Status: domain.InvoiceDraft}
	require.NoError(t, repo.SaveInvoice(ctx, inv))
	require.NoError(t, repo.DeleteInvoice(ctx, inv.InvoiceID))

	second, err := repo.NextInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, second)
}

func TestInvoiceRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepository(NewStore())

	a := domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-0001"}
	b := domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-0002"}
	require.NoError(t, repo.SaveInvoice(ctx, a))
	require.NoError(t, repo.SaveInvoice(ctx, b))

	got, err := repo.ListInvoices(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "INV-0002", got[0].Number)
	assert.Equal(t, "INV-0001", got[1].Number)

	page, err := repo.ListInvoices(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "INV-0001", page[0].Number)
}

func TestInvoiceRepository_FindMissing(t *testing.T) {
	repo := NewInvoiceRepository(NewStore())
	_, err := repo.FindInvoiceByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
