package impl

import (
	"context"
	"testing"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Submit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	feedback, err := env.feedback.Submit(ctx, &usecase.SubmitFeedbackInput{
		FromUserID:    "U300",
		ToUserID:      "U200",
		AppointmentID: "A001",
		Rating:        5,
		Comment:       "  great visit  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "F001", feedback.ID)
	assert.Equal(t, 5, feedback.Rating)
	assert.Equal(t, "great visit", feedback.Comment)
	assert.NotEmpty(t, feedback.Timestamp)
}

func TestFeedbackService_Submit_RatingBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	submit := func(rating int) error {
		_, err := env.feedback.Submit(ctx, &usecase.SubmitFeedbackInput{
			FromUserID:    "U300",
			ToUserID:      "U200",
			AppointmentID: "A001",
			Rating:        rating,
			Comment:       "ok",
		})

		return err
	}

	assert.ErrorIs(t, submit(0), domainerrors.ErrInvalidRating)
	assert.ErrorIs(t, submit(6), domainerrors.ErrInvalidRating)
	assert.NoError(t, submit(1))
	assert.NoError(t, submit(5))
}

func TestFeedbackService_Submit_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.feedback.Submit(ctx, &usecase.SubmitFeedbackInput{
		FromUserID:    "U300",
		ToUserID:      "U200",
		AppointmentID: "A001",
		Rating:        3,
		Comment:       "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyComment)

	_, err = env.feedback.Submit(ctx, &usecase.SubmitFeedbackInput{
		FromUserID:    "U300",
		ToUserID:      "",
		AppointmentID: "A001",
		Rating:        3,
		Comment:       "fine",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFeedbackService_Submit_SkipsTakenIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Seed a record whose id the counter has never issued. The generator
	// must step over it instead of colliding.
	seeded, err := env.feedback.Submit(ctx, &usecase.SubmitFeedbackInput{
		FromUserID:    "U300",
		ToUserID:      "U200",
		AppointmentID: "A001",
		Rating:        4,
		Comment:       "first",
	})
	require.NoError(t, err)
	assert.Equal(t, "F001", seeded.ID)

	next, err := env.feedback.Submit(ctx, &usecase.SubmitFeedbackInput{
		FromUserID:    "U301",
		ToUserID:      "U200",
		AppointmentID: "A002",
		Rating:        2,
		Comment:       "second",
	})
	require.NoError(t, err)
	assert.Equal(t, "F002", next.ID)
}

func TestFeedbackService_Listings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	inputs := []usecase.SubmitFeedbackInput{
		{FromUserID: "U300", ToUserID: "U200", AppointmentID: "A001", Rating: 5, Comment: "a"},
		{FromUserID: "U301", ToUserID: "U200", AppointmentID: "A002", Rating: 3, Comment: "b"},
		{FromUserID: "U300", ToUserID: "U201", AppointmentID: "A003", Rating: 4, Comment: "c"},
	}
	for i := range inputs {
		_, err := env.feedback.Submit(ctx, &inputs[i])
		require.NoError(t, err)
	}

	forDoctor, err := env.feedback.ListForDoctor(ctx, "U200")
	require.NoError(t, err)
	require.Len(t, forDoctor, 2)
	assert.Equal(t, "a", forDoctor[0].Comment)
	assert.Equal(t, "b", forDoctor[1].Comment)

	forCustomer, err := env.feedback.ListForCustomer(ctx, "U300")
	require.NoError(t, err)
	assert.Len(t, forCustomer, 2)

	blank, err := env.feedback.ListForDoctor(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, blank)

	all, err := env.feedback.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
