package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgdir/domain/core/valueobjects"
	pkgerrors "orgdir/pkg/errors"
)

func mustActivityName(t *testing.T, value string) valueobjects.ActivityName {
	t.Helper()
	name, err := valueobjects.NewActivityName(value)
	require.NoError(t, err)
	return name
}

func TestNewActivityNesting(t *testing.T) {
	food, err := NewActivity(mustActivityName(t, "Food"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, food.Level())
	assert.True(t, food.IsRoot())

	meat, err := NewActivity(mustActivityName(t, "Meat"), food)
	require.NoError(t, err)
	assert.Equal(t, 2, meat.Level())
	assert.False(t, meat.IsRoot())
	assert.True(t, meat.ParentID().Equals(food.ID()))

	beef, err := NewActivity(mustActivityName(t, "Beef"), meat)
	require.NoError(t, err)
	assert.Equal(t, 3, beef.Level())

	_, err = NewActivity(mustActivityName(t, "Angus"), beef)
	require.Error(t, err)

	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNestingLevelExceeded, appErr.Code)
	assert.Equal(t, 4, appErr.Details["current_level"])
	assert.Equal(t, 3, appErr.Details["max_level"])
}

func TestNewActivityDistinctIDs(t *testing.T) {
	first, err := NewActivity(mustActivityName(t, "Food"), nil)
	require.NoError(t, err)
	second, err := NewActivity(mustActivityName(t, "Cars"), nil)
	require.NoError(t, err)

	assert.False(t, first.ID().Equals(second.ID()))
	assert.False(t, first.Equals(second))
}
