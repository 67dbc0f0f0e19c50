package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/donaldgifford/dealer-appraisal/internal/store/mocks"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache(t *testing.T) (*DealerNames, redismock.ClientMock, *storeMocks.MockStore) {
	t.Helper()

	db, rm := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, rm.ExpectationsWereMet())
	})

	ms := storeMocks.NewMockStore(t)
	c := NewDealerNames(db, ms,
		WithTTL(10*time.Minute),
		WithPrefix("test:"),
		WithLogger(quietLogger()),
	)
	return c, rm, ms
}

func TestDealerNames_AllHits(t *testing.T) {
	t.Parallel()

	c, rm, _ := newTestCache(t)
	rm.ExpectMGet("test:d1", "test:d2").SetVal([]interface{}{"Downtown Toyota", "Lakeshore Honda"})

	names, err := c.DealershipNames(context.Background(), []string{"d1", "d2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"d1": "Downtown Toyota", "d2": "Lakeshore Honda"}, names)
}

func TestDealerNames_MissLoadsFromSourceAndCaches(t *testing.T) {
	t.Parallel()

	c, rm, ms := newTestCache(t)
	rm.ExpectMGet("test:d1", "test:d2").SetVal([]interface{}{"Downtown Toyota", nil})
	ms.EXPECT().
		DealershipNames(mock.Anything, []string{"d2"}).
		Return(map[string]string{"d2": "Lakeshore Honda"}, nil).
		Once()
	rm.ExpectSet("test:d2", "Lakeshore Honda", 10*time.Minute).SetVal("OK")

	names, err := c.DealershipNames(context.Background(), []string{"d1", "d2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"d1": "Downtown Toyota", "d2": "Lakeshore Honda"}, names)
}

func TestDealerNames_RedisDownFallsBackToSource(t *testing.T) {
	t.Parallel()

	c, rm, ms := newTestCache(t)
	rm.ExpectMGet("test:d1").SetErr(errors.New("connection refused"))
	ms.EXPECT().
		DealershipNames(mock.Anything, []string{"d1"}).
		Return(map[string]string{"d1": "Downtown Toyota"}, nil).
		Once()
	rm.ExpectSet("test:d1", "Downtown Toyota", 10*time.Minute).SetErr(errors.New("connection refused"))

	names, err := c.DealershipNames(context.Background(), []string{"d1"})
	require.NoError(t, err)
	assert.Equal(t, "Downtown Toyota", names["d1"])
}

func TestDealerNames_SourceError(t *testing.T) {
	t.Parallel()

	c, rm, ms := newTestCache(t)
	rm.ExpectMGet("test:d1").SetVal([]interface{}{nil})
	ms.EXPECT().DealershipNames(mock.Anything, []string{"d1"}).Return(nil, errors.New("db down")).Once()

	_, err := c.DealershipNames(context.Background(), []string{"d1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading dealership names")
}

func TestDealerNames_UnknownIDNotCached(t *testing.T) {
	t.Parallel()

	c, rm, ms := newTestCache(t)
	rm.ExpectMGet("test:gone").SetVal([]interface{}{nil})
	ms.EXPECT().DealershipNames(mock.Anything, []string{"gone"}).Return(map[string]string{}, nil).Once()

	names, err := c.DealershipNames(context.Background(), []string{"gone"})
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDealerNames_EmptyIDs(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestCache(t)

	names, err := c.DealershipNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDealerNames_Invalidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ids     []string
		setup   func(redismock.ClientMock)
		wantErr bool
	}{
		{
			name: "deletes keys",
			ids:  []string{"d1", "d2"},
			setup: func(rm redismock.ClientMock) {
				rm.ExpectDel("test:d1", "test:d2").SetVal(2)
			},
		},
		{
			name:  "no ids is a no-op",
			setup: func(redismock.ClientMock) {},
		},
		{
			name: "redis error",
			ids:  []string{"d1"},
			setup: func(rm redismock.ClientMock) {
				rm.ExpectDel("test:d1").SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rm, _ := newTestCache(t)
			tt.setup(rm)

			err := c.Invalidate(context.Background(), tt.ids...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
