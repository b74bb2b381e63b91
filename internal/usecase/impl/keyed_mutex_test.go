package impl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	const goroutines = 50

	var (
		wg      sync.WaitGroup
		counter int
	)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := km.Lock("user:TEMPERATURE_HIGH:")
			defer unlock()

			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock("a")
	defer unlockA()

	// A second key must be acquirable while the first is held.
	unlockB := km.Lock("b")
	unlockB()
}

func TestKeyedMutex_EntriesAreReleased(t *testing.T) {
	km := newKeyedMutex()

	unlock := km.Lock("transient")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
