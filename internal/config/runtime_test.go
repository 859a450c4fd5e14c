package config

import (
	"sync"
	"testing"
)

func TestRuntimeGetReturnsInitial(t *testing.T) {
	t.Parallel()

	doc := docWithRepo(pinnedRepo())
	rt := NewRuntime(doc)

	if rt.Get() != doc {
		t.Error("Expected Get to return the initial document")
	}
}

func TestRuntimeStoreSwapsDocument(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(docWithRepo(pinnedRepo()))

	updated := &Document{}
	rt.Store(updated)

	if rt.Get() != updated {
		t.Error("Expected Get to return the stored document")
	}
}

func TestRuntimeConcurrentAccess(t *testing.T) {
	t.Parallel()

	rt := NewRuntime(&Document{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			rt.Store(docWithRepo(pinnedRepo()))
		}()
		go func() {
			defer wg.Done()
			if rt.Get() == nil {
				t.Error("Get returned nil during concurrent store")
			}
		}()
	}
	wg.Wait()
}
