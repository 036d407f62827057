package html_test

import (
	"sync"
	"testing"

	"github.com/goliatone/go-formfield/pkg/html"
)

func TestIDGeneratorCountsPerPrefix(t *testing.T) {
	ids := html.NewIDGenerator()

	for _, want := range []string{"w1", "w2"} {
		if got := ids.Next("w"); got != want {
			t.Fatalf("want %s, got %s", want, got)
		}
	}
	if got := ids.Next(""); got != "i1" {
		t.Fatalf("expected default prefix, got %s", got)
	}

	ids.Reset()
	if got := ids.Next("w"); got != "w1" {
		t.Fatalf("expected counter restart after reset, got %s", got)
	}
}

func TestIDGeneratorNeverRepeatsUnderConcurrency(t *testing.T) {
	ids := html.NewIDGenerator()
	const workers = 8
	const perWorker = 50

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := ids.Next("w")
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}
