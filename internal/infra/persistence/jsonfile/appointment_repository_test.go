package jsonfile

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAppointments(t *testing.T, repo repository.AppointmentRepository, appointments ...entity.Appointment) {
	t.Helper()
	ctx := context.Background()
	for i := range appointments {
		require.NoError(t, repo.SaveOrUpdate(ctx, &appointments[i]))
	}
}

func TestAppointmentRepository_ListByCustomer_KeepsRelativeOrder(t *testing.T) {
	repo := NewAppointmentRepository(newTestConfig(t))

	seedAppointments(t, repo,
		entity.Appointment{ID: "A001", CustomerID: "C1", Status: entity.StatusPending},
		entity.Appointment{ID: "A002", CustomerID: "C2", Status: entity.StatusPending},
		entity.Appointment{ID: "A003", CustomerID: "C1", Status: entity.StatusConfirmed},
	)

	matches, err := repo.ListByCustomer(context.Background(), "C1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "A001", matches[0].ID)
	assert.Equal(t, "A003", matches[1].ID)
}

func TestAppointmentRepository_ListByDoctor(t *testing.T) {
	repo := NewAppointmentRepository(newTestConfig(t))

	seedAppointments(t, repo,
		entity.Appointment{ID: "A001", DoctorID: "U900"},
		entity.Appointment{ID: "A002", DoctorID: "U901"},
	)

	matches, err := repo.ListByDoctor(context.Background(), "U900")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "A001", matches[0].ID)
}

func TestAppointmentRepository_SaveOrUpdate_RoundTripsAllFields(t *testing.T) {
	repo := NewAppointmentRepository(newTestConfig(t))
	ctx := context.Background()

	appointment := &entity.Appointment{
		ID:         "A010",
		CustomerID: "U300",
		DoctorID:   "U200",
		DateTime:   "2025-08-20T14:30",
		Status:     entity.StatusConfirmed,
		Charge:     125.50,
		Notes:      "follow-up visit",
		CreatedBy:  "U100",
	}
	require.NoError(t, repo.SaveOrUpdate(ctx, appointment))

	found, err := repo.FindByID(ctx, "A010")
	require.NoError(t, err)
	assert.Equal(t, *appointment, *found)
}

func TestAppointmentRepository_FindByID_UnknownIDReturnsSentinel(t *testing.T) {
	repo := NewAppointmentRepository(newTestConfig(t))

	_, err := repo.FindByID(context.Background(), "A999")
	assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
}

func TestAppointmentRepository_StatusUpdatePersists(t *testing.T) {
	repo := NewAppointmentRepository(newTestConfig(t))
	ctx := context.Background()

	seedAppointments(t, repo, entity.Appointment{ID: "A001", CustomerID: "U001", Status: entity.StatusPending})

	found, err := repo.FindByID(ctx, "A001")
	require.NoError(t, err)
	found.Status = entity.StatusCompleted
	require.NoError(t, repo.SaveOrUpdate(ctx, found))

	matches, err := repo.ListByCustomer(ctx, "U001")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, entity.StatusCompleted, matches[0].Status)
}
