package jsonfile

import (
	"context"
	"testing"

	"clinic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRepository_CreateAndFilter(t *testing.T) {
	repo := NewFeedbackRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Feedback{ID: "F001", FromUserID: "U001", ToUserID: "U900", Rating: 5, Comment: "great"}))
	require.NoError(t, repo.Create(ctx, &entity.Feedback{ID: "F002", FromUserID: "U002", ToUserID: "U901", Rating: 3, Comment: "okay"}))
	require.NoError(t, repo.Create(ctx, &entity.Feedback{ID: "F003", FromUserID: "U001", ToUserID: "U901", Rating: 4, Comment: "good"}))

	forDoctor, err := repo.ListForDoctor(ctx, "U901")
	require.NoError(t, err)
	require.Len(t, forDoctor, 2)
	assert.Equal(t, "F002", forDoctor[0].ID)
	assert.Equal(t, "F003", forDoctor[1].ID)

	forCustomer, err := repo.ListForCustomer(ctx, "U001")
	require.NoError(t, err)
	require.Len(t, forCustomer, 2)
	assert.Equal(t, "F001", forCustomer[0].ID)
	assert.Equal(t, "F003", forCustomer[1].ID)
}

func TestReportRepository_CreateAppendsInOrder(t *testing.T) {
	repo := NewReportRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Report{ID: "R001", Title: "August", TotalAppointments: 10, TotalRevenue: 1250.5}))
	require.NoError(t, repo.Create(ctx, &entity.Report{ID: "R002", Title: "September"}))

	reports, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "R001", reports[0].ID)
	assert.Equal(t, 10, reports[0].TotalAppointments)
	assert.InDelta(t, 1250.5, reports[0].TotalRevenue, 0.001)
	assert.Equal(t, "R002", reports[1].ID)
}
