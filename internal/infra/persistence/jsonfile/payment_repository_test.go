package jsonfile

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_SaveOrUpdate_MissNeverDuplicates(t *testing.T) {
	repo := NewPaymentRepository(newTestConfig(t))
	ctx := context.Background()

	// Saving an unknown id against a populated store must append exactly one
	// record regardless of how many existing records the scan walks past.
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P001", AppointmentID: "A001"}))
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P002", AppointmentID: "A001"}))
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P003", AppointmentID: "A002"}))

	payments, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
}

func TestPaymentRepository_SaveOrUpdate_ReplacesExisting(t *testing.T) {
	repo := NewPaymentRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P001", Amount: 10}))
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P002", Amount: 20}))
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P001", Amount: 15}))

	payments, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "P001", payments[0].ID)
	assert.InDelta(t, 15.0, payments[0].Amount, 0.001)
}

func TestPaymentRepository_ListByAppointment(t *testing.T) {
	repo := NewPaymentRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P001", AppointmentID: "A001", Method: entity.MethodCash}))
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P002", AppointmentID: "A002", Method: entity.MethodCard}))
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.Payment{ID: "P003", AppointmentID: "A001", Method: entity.MethodEwallet}))

	payments, err := repo.ListByAppointment(ctx, "A001")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "P001", payments[0].ID)
	assert.Equal(t, "P003", payments[1].ID)
}
