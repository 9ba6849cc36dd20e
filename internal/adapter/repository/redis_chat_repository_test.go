package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, chat.Repository) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return srv, NewRedisChatRepository(client, ttl)
}

func TestRedisChatRepository(t *testing.T) {
	ctx := context.Background()
	_, repo := newRedisRepo(t, time.Hour)

	saved := make([]*chat.Message, 0, 5)
	for i := 0; i < 5; i++ {
		role := chat.RoleUser
		if i%2 == 1 {
			role = chat.RoleAssistant
		}
		msg := chat.NewMessage("a", role, fmt.Sprint(i))
		require.NoError(t, repo.SaveMessage(ctx, msg))
		saved = append(saved, msg)
	}
	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("b", chat.RoleUser, "other")))

	all, err := repo.GetHistory(ctx, "a", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, m := range all {
		assert.Equal(t, saved[i].ID, m.ID)
		assert.Equal(t, saved[i].Role, m.Role)
		assert.Equal(t, saved[i].Content, m.Content)
		assert.Equal(t, "a", m.SessionID)
		assert.True(t, saved[i].Timestamp.Equal(m.Timestamp))
	}

	window, err := repo.GetHistory(ctx, "a", 2, 1)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "1", window[0].Content)
	assert.Equal(t, "2", window[1].Content)

	tail, err := repo.GetHistory(ctx, "a", 0, 3)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, "3", tail[0].Content)

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

func TestRedisChatRepositoryRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	srv, repo := newRedisRepo(t, time.Hour)

	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("a", chat.RoleUser, "hi")))
	assert.Equal(t, time.Hour, srv.TTL(chatKey("a")))

	srv.FastForward(50 * time.Minute)
	assert.Equal(t, 10*time.Minute, srv.TTL(chatKey("a")))

	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("a", chat.RoleAssistant, "hello")))
	assert.Equal(t, time.Hour, srv.TTL(chatKey("a")))

	srv.FastForward(61 * time.Minute)
	n, err := repo.CountMessages(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisChatRepositoryWithoutTTL(t *testing.T) {
	ctx := context.Background()
	srv, repo := newRedisRepo(t, 0)

	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("a", chat.RoleUser, "hi")))
	assert.Zero(t, srv.TTL(chatKey("a")))
}

func TestRedisChatRepositoryRequiresSession(t *testing.T) {
	_, repo := newRedisRepo(t, time.Hour)
	err := repo.SaveMessage(context.Background(), &chat.Message{Content: "x"})
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
}
