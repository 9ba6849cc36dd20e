package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryChatRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryChatRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("a", chat.RoleUser, fmt.Sprint(i))))
	}
	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("b", chat.RoleUser, "other")))

	all, err := repo.GetHistory(ctx, "a", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, m := range all {
		assert.Equal(t, fmt.Sprint(i), m.Content)
	}

	window, err := repo.GetHistory(ctx, "a", 2, 1)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "1", window[0].Content)
	assert.Equal(t, "2", window[1].Content)

	past, err := repo.GetHistory(ctx, "a", 10, 99)
	require.NoError(t, err)
	assert.Empty(t, past)

	n, err := repo.CountMessages(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, repo.DeleteHistory(ctx, "a"))
	n, err = repo.CountMessages(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.CountMessages(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryChatRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryChatRepository()
	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("a", chat.RoleUser, "original")))

	got, err := repo.GetHistory(ctx, "a", 0, 0)
	require.NoError(t, err)
	got[0].Content = "mutated"

	again, err := repo.GetHistory(ctx, "a", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}

func TestMemoryChatRepositoryRequiresSession(t *testing.T) {
	err := NewMemoryChatRepository().SaveMessage(context.Background(), &chat.Message{Content: "x"})
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
}
