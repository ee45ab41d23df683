package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestKV_Expiracao(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newKV()
	s.now = clock.Now

	s.set("a", "1", time.Minute)
	s.set("b", "2", 0)

	_, ok := s.get("a")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = s.get("a")
	assert.False(t, ok, "expira exatamente no deadline")

	v, ok := s.get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestKV_SetNXRespeitaExpiracao(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	s := newKV()
	s.now = clock.Now

	assert.True(t, s.setNX("k", "x", time.Second))
	assert.False(t, s.setNX("k", "y", time.Second))

	clock.Advance(2 * time.Second)
	assert.True(t, s.setNX("k", "z", time.Second))
}

func TestIdempotencyStore(t *testing.T) {
	s := NewIdempotencyStore()
	ctx := context.Background()

	ok, _ := s.Reserve(ctx, "k", time.Hour)
	assert.True(t, ok)
	ok, _ = s.Reserve(ctx, "k", time.Hour)
	assert.False(t, ok)

	_, done, _ := s.Result(ctx, "k")
	assert.False(t, done)

	require.NoError(t, s.Complete(ctx, "k", "order-1", time.Hour))
	v, done, _ := s.Result(ctx, "k")
	assert.True(t, done)
	assert.Equal(t, "order-1", v)
}

func TestResetTokenStore_UsoUnico(t *testing.T) {
	s := NewResetTokenStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "tok", "u1", time.Hour))

	uid, ok, _ := s.Consume(ctx, "tok")
	assert.True(t, ok)
	assert.Equal(t, "u1", uid)

	_, ok, _ = s.Consume(ctx, "tok")
	assert.False(t, ok)
}

func TestTokenBlacklist(t *testing.T) {
	b := NewTokenBlacklist()
	ctx := context.Background()
	require.NoError(t, b.Revoke(ctx, "j", time.Hour))
	revoked, _ := b.IsRevoked(ctx, "j")
	assert.True(t, revoked)
	revoked, _ = b.IsRevoked(ctx, "outro")
	assert.False(t, revoked)
}

func TestProfileCache_CopiaSemHash(t *testing.T) {
	c := NewProfileCache()
	ctx := context.Background()
	u := &entity.User{ID: "u1", Email: "x@y.com", PasswordHash: "hash"}
	require.NoError(t, c.Set(ctx, u, time.Minute))

	u.Email = "mudou@y.com"
	got, ok, _ := c.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, "x@y.com", got.Email)
	assert.Empty(t, got.PasswordHash)

	c.Invalidate(ctx, "u1")
	_, ok, _ = c.Get(ctx, "u1")
	assert.False(t, ok)
}

func TestCartStore(t *testing.T) {
	s := NewCartStore(logger.Nop())
	ctx := context.Background()

	empty, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	c := cart.New(cart.Item{ProductID: "p1", Price: decimal.NewFromInt(10), Quantity: 2})
	require.NoError(t, s.Save(ctx, "u1", c))
	loaded, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(loaded.Subtotal()))

	s.kv.set("u2", "lixo", 0)
	loaded, err = s.Load(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
	s.kv.set("u3", `{"version":7,"items":[]}`, 0)
	_, err = s.Load(ctx, "u3")
	assert.ErrorIs(t, err, cart.ErrUnsupportedVersion)
}
