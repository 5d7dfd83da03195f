package study

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("k")
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
	if len(km.locks) != 0 {
		t.Errorf("locks left behind: %d", len(km.locks))
	}
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	km := newKeyedMutex()

	unlockA := km.Lock(progressKey("ana", "card-1"))
	done := make(chan struct{})
	go func() {
		unlock := km.Lock(progressKey("ana", "card-2"))
		unlock()
		close(done)
	}()
	<-done
	unlockA()
}
