package util

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSequenceIsMonotonic(t *testing.T) {
	var seq Sequence
	assert.Equal(t, int64(1), seq.Next())
	assert.Equal(t, int64(2), seq.Next())

	var wg sync.WaitGroup
	seen := make(chan int64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- seq.Next()
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[int64]bool{}
	for id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 100)
	assert.Equal(t, int64(103), seq.Next())
}
