package impl

import (
	"context"
	"testing"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Generate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := bookAppointment(t, env, "U300", "U200", 100.0)
	bookAppointment(t, env, "U301", "U200", 40.0)
	third := bookAppointment(t, env, "U302", "U201", 60.5)

	_, err := env.appointments.UpdateStatus(ctx, first.ID, "COMPLETED")
	require.NoError(t, err)
	_, err = env.appointments.UpdateStatus(ctx, third.ID, "COMPLETED")
	require.NoError(t, err)

	report, err := env.reports.Generate(ctx, &usecase.GenerateReportInput{
		Title:       "Monthly summary",
		GeneratedBy: "U100",
	})
	require.NoError(t, err)

	assert.Equal(t, "R001", report.ID)
	assert.Equal(t, "Monthly summary", report.Title)
	assert.Equal(t, "U100", report.GeneratedBy)
	// All appointments count; only completed ones contribute revenue.
	assert.Equal(t, 3, report.TotalAppointments)
	assert.InDelta(t, 160.5, report.TotalRevenue, 0.0001)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestReportService_Generate_EmptyStore(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.reports.Generate(context.Background(), &usecase.GenerateReportInput{
		Title:       "Empty clinic",
		GeneratedBy: "U100",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalAppointments)
	assert.Zero(t, report.TotalRevenue)
}

func TestReportService_Generate_RejectsBlankTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.Generate(context.Background(), &usecase.GenerateReportInput{
		Title:       "   ",
		GeneratedBy: "U100",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_ListAll_PreservesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := env.reports.Generate(ctx, &usecase.GenerateReportInput{Title: title, GeneratedBy: "U100"})
		require.NoError(t, err)
	}

	reports, err := env.reports.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "first", reports[0].Title)
	assert.Equal(t, "R003", reports[2].ID)
}
