package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orgdir/domain/core/valueobjects"
	"orgdir/infrastructure/persistence/memory"
	pkgerrors "orgdir/pkg/errors"
)

func newActivityService() *ActivityService {
	return NewActivityService(memory.NewActivityRepository(), nil, zap.NewNop())
}

func TestActivityCreate(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	root, err := s.Create(ctx, "Food", valueobjects.ActivityID{})
	require.NoError(t, err)
	assert.Equal(t, 1, root.Level())

	child, err := s.Create(ctx, "Meat", root.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, child.Level())
	assert.True(t, child.ParentID().Equals(root.ID()))
}

func TestActivityCreateDuplicateName(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	_, err := s.Create(ctx, "Food", valueobjects.ActivityID{})
	require.NoError(t, err)

	_, err = s.Create(ctx, "Food", valueobjects.ActivityID{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeActivityNameExists, pkgerrors.GetAppError(err).Code)

	// Name uniqueness is case-insensitive
	_, err = s.Create(ctx, "FOOD", valueobjects.ActivityID{})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeActivityNameExists, pkgerrors.GetAppError(err).Code)
}

func TestActivityCreateMissingParent(t *testing.T) {
	s := newActivityService()

	_, err := s.Create(context.Background(), "Meat", valueobjects.NewActivityID())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeActivityNotFound, pkgerrors.GetAppError(err).Code)
}

func TestActivityCreateMaxNesting(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	food, err := s.Create(ctx, "Food", valueobjects.ActivityID{})
	require.NoError(t, err)
	meat, err := s.Create(ctx, "Meat", food.ID())
	require.NoError(t, err)
	beef, err := s.Create(ctx, "Beef", meat.ID())
	require.NoError(t, err)

	_, err = s.Create(ctx, "Angus", beef.ID())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNestingLevelExceeded, pkgerrors.GetAppError(err).Code)
}

func TestActivitySearch(t *testing.T) {
	s := newActivityService()
	ctx := context.Background()

	food, err := s.Create(ctx, "Food", valueobjects.ActivityID{})
	require.NoError(t, err)
	_, err = s.Create(ctx, "Meat", food.ID())
	require.NoError(t, err)
	_, err = s.Create(ctx, "Seafood", valueobjects.ActivityID{})
	require.NoError(t, err)

	results, total, err := s.Search(ctx, "food", valueobjects.ActivityID{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, results, 2)

	children, total, err := s.Search(ctx, "", food.ID(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, children, 1)
	assert.Equal(t, "Meat", children[0].Name().String())
}
