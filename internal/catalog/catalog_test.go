// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

func newTestStore(t *testing.T, maxAge time.Duration) *Store {
	t.Helper()
	s, err := NewStore(types.CatalogConfig{Dir: t.TempDir(), MaxAge: maxAge})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePlayers() map[string]types.Player {
	return map[string]types.Player{
		"100": {ID: "100", FirstName: "Justin", LastName: "Tucker", Position: "K", Team: "BAL"},
		"200": {ID: "200", FirstName: "Josh", LastName: "Allen", Position: "QB", Team: "BUF"},
		"300": {ID: "300", FirstName: "Harrison", LastName: "Butker", Position: "K", Team: "KC"},
		"400": {ID: "400", FirstName: "Tommy", LastName: "Townsend", Position: "P", Team: "KC"},
	}
}

func TestStaleWhenNeverFetched(t *testing.T) {
	s := newTestStore(t, time.Hour)

	stale, err := s.Stale(context.Background())
	require.NoError(t, err)
	assert.True(t, stale)

	fetched, err := s.LastFetched(context.Background())
	require.NoError(t, err)
	assert.True(t, fetched.IsZero())
}

func TestReplaceAndCount(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Replace(ctx, samplePlayers()))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	stale, err := s.Stale(ctx)
	require.NoError(t, err)
	assert.False(t, stale, "catalog should be fresh right after Replace")
}

func TestReplaceSwapsFullSet(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Replace(ctx, samplePlayers()))
	require.NoError(t, s.Replace(ctx, map[string]types.Player{
		"500": {ID: "500", FirstName: "Jake", LastName: "Moody", Position: "K", Team: "SF"},
	}))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "old players must not survive a Replace")
}

func TestReplaceFillsMissingID(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	// Some Sleeper catalog entries omit player_id in the value; the map
	// key is authoritative then.
	require.NoError(t, s.Replace(ctx, map[string]types.Player{
		"700": {FirstName: "Cameron", LastName: "Dicker", Position: "K", Team: "LAC"},
	}))

	kickers, err := s.KickersAmong(ctx, []string{"700"})
	require.NoError(t, err)
	require.Len(t, kickers, 1)
	assert.Equal(t, "700", kickers[0].ID)
}

func TestKickersAmong(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, s.Replace(ctx, samplePlayers()))

	tests := []struct {
		name    string
		ids     []string
		wantIDs []string
	}{
		{"roster with one kicker", []string{"100", "200"}, []string{"100"}},
		{"punter counts as kicker", []string{"200", "400"}, []string{"400"}},
		{"two kickers ordered by id", []string{"300", "100"}, []string{"100", "300"}},
		{"no kickers", []string{"200"}, nil},
		{"empty roster", nil, nil},
		{"unknown ids ignored", []string{"999"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kickers, err := s.KickersAmong(ctx, tt.ids)
			require.NoError(t, err)
			var gotIDs []string
			for _, k := range kickers {
				gotIDs = append(gotIDs, k.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestEnsureFreshSkipsWhenFresh(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, s.Replace(ctx, samplePlayers()))

	called := false
	err := s.EnsureFresh(ctx, func(context.Context) (map[string]types.Player, error) {
		called = true
		return nil, nil
	}, discard{})
	require.NoError(t, err)
	assert.False(t, called, "fetch must not run for a fresh catalog")
}

func TestEnsureFreshRefreshesWhenStale(t *testing.T) {
	// A zero-width staleness window makes any previous fetch stale.
	s := newTestStore(t, time.Nanosecond)
	ctx := context.Background()
	require.NoError(t, s.Replace(ctx, map[string]types.Player{}))

	err := s.EnsureFresh(ctx, func(context.Context) (map[string]types.Player, error) {
		return samplePlayers(), nil
	}, discard{})
	require.NoError(t, err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestEnsureFreshPropagatesFetchError(t *testing.T) {
	s := newTestStore(t, time.Hour)
	boom := errors.New("upstream down")

	err := s.EnsureFresh(context.Background(), func(context.Context) (map[string]types.Player, error) {
		return nil, boom
	}, discard{})
	assert.ErrorIs(t, err, boom)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
