package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	empty, err := s.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, empty.UserID)
	assert.Empty(t, empty.Destinations)
	assert.Zero(t, empty.Version)

	it := models.Itinerary{
		UserID:  userID,
		Version: 3,
		Destinations: []models.Destination{
			{ID: uuid.New(), Name: "Arashiyama", Photos: []string{"a.jpg"}, TravelMode: models.TravelModeWalking},
		},
	}
	require.NoError(t, s.Save(ctx, it))

	// the stored copy is isolated from the caller's slices
	it.Destinations[0].Photos[0] = "changed.jpg"

	loaded, err := s.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), loaded.Version)
	assert.Equal(t, []string{"a.jpg"}, loaded.Destinations[0].Photos)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestMemoryStoreCancelledSave(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()
	assert.Error(t, s.Save(ctx, models.Itinerary{UserID: uuid.New()}))
	assert.Error(t, s.Ping(ctx))
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	km := NewKeyedMutex()
	key := uuid.New()

	var mu sync.Mutex
	active, maxActive := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock(key)
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxActive)
	assert.Empty(t, km.locks)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()
	unlockA := km.Lock(uuid.New())
	done := make(chan struct{})
	go func() {
		unlock := km.Lock(uuid.New())
		unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
	unlockA()
}
