package cell

import (
	"sync"
	"testing"
)

func TestSeedVisible(t *testing.T) {
	p := New(42)
	if got := *p.Load(); got != 42 {
		t.Fatalf("seed not visible: got %d", got)
	}
}

func TestStoreReplacesReference(t *testing.T) {
	p := New("a")
	b := "b"
	p.Store(&b)
	if p.Load() != &b {
		t.Fatal("Store did not install the new reference")
	}
}

func TestCompareAndSwapIsIdentityBased(t *testing.T) {
	p := New(7)
	cur := p.Load()

	same := 7 // equal value, distinct allocation
	if p.CompareAndSwap(&same, new(int)) {
		t.Fatal("CAS succeeded against equal value with different identity")
	}
	next := 8
	if !p.CompareAndSwap(cur, &next) {
		t.Fatal("CAS failed against the installed reference")
	}
	if *p.Load() != 8 {
		t.Fatal("CAS did not install next")
	}
	if p.CompareAndSwap(cur, new(int)) {
		t.Fatal("CAS succeeded against a stale reference")
	}
}

func TestConcurrentCASRetainsEveryIncrement(t *testing.T) {
	const workers = 8
	const perWorker = 2000

	p := New(0)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				for {
					cur := p.Load()
					next := *cur + 1
					if p.CompareAndSwap(cur, &next) {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	if got := *p.Load(); got != workers*perWorker {
		t.Fatalf("lost updates: got %d, want %d", got, workers*perWorker)
	}
}
