package svcctx

import (
	"context"
	"sync"
	"testing"

	"github.com/kgplan/kgplan/internal/ai"
)

func TestServicesFrom(t *testing.T) {
	if ServicesFrom(context.Background()) != nil {
		t.Error("expected nil services from a bare context")
	}
	if SplitterFrom(context.Background()) != nil {
		t.Error("expected nil splitter from a bare context")
	}

	svcs := &Services{}
	ctx := WithServices(context.Background(), svcs)
	if ServicesFrom(ctx) != svcs {
		t.Error("expected attached services back")
	}
}

func TestSetSplitter(t *testing.T) {
	splitter, err := ai.NewSplitter(ai.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svcs := &Services{}
	ctx := WithServices(context.Background(), svcs)

	if SplitterFrom(ctx) != nil {
		t.Error("expected nil splitter before configuration")
	}
	svcs.SetSplitter(splitter)
	if SplitterFrom(ctx) != splitter {
		t.Error("expected configured splitter")
	}
	svcs.SetSplitter(nil)
	if SplitterFrom(ctx) != nil {
		t.Error("expected nil splitter after reset")
	}
}

// Config hot-reload swaps the splitter while requests are reading it; the
// race detector flags this test if either side skips the lock.
func TestSetSplitter_ConcurrentWithReads(t *testing.T) {
	splitter, err := ai.NewSplitter(ai.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svcs := &Services{}
	ctx := WithServices(context.Background(), svcs)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				svcs.SetSplitter(splitter)
			} else {
				svcs.SetSplitter(nil)
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		got := SplitterFrom(ctx)
		if got != nil && got != splitter {
			t.Fatalf("unexpected splitter %p", got)
		}
	}
	wg.Wait()
}
