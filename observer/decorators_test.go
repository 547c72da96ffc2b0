package observer_test

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/momentics/hioload-atom/api"
	"github.com/momentics/hioload-atom/observer"
)

func TestFilteredForwardsMatchingValuesOnly(t *testing.T) {
	var got []int
	fn := observer.Filtered(
		func(n api.Notification[int]) { got = append(got, n.Value) },
		func(v int) bool { return v%2 == 0 },
	)
	for v := 0; v < 5; v++ {
		fn(note(v))
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("filtered deliveries = %v, want [0 2 4]", got)
	}
}

func TestRateLimitedDropsBeyondBurst(t *testing.T) {
	delivered := 0
	fn := observer.RateLimited(
		func(api.Notification[int]) { delivered++ },
		rate.Every(time.Hour), 2,
	)
	for i := 0; i < 10; i++ {
		fn(note(i))
	}
	if delivered != 2 {
		t.Fatalf("delivered = %d, want burst of 2", delivered)
	}
}

func TestOnceDeliversSingleNotification(t *testing.T) {
	count := 0
	fn := observer.Once(func(api.Notification[int]) { count++ })
	fn(note(1))
	fn(note(2))
	fn(note(3))
	if count != 1 {
		t.Fatalf("deliveries = %d, want 1", count)
	}
}

func TestLoggedForwardsAndPrints(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	delivered := 0
	fn := observer.Logged(func(api.Notification[int]) { delivered++ }, "trace")
	fn(note(7))

	if delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}
	if !strings.Contains(buf.String(), "[trace] value=7") {
		t.Fatalf("log output missing notification line: %q", buf.String())
	}
}

func TestDecoratorsCompose(t *testing.T) {
	var got []int
	fn := observer.Once(observer.Filtered(
		func(n api.Notification[int]) { got = append(got, n.Value) },
		func(v int) bool { return v > 10 },
	))
	// Once consumes its single shot on the first call even when the inner
	// filter then drops the value.
	fn(note(1))
	fn(note(20))
	if len(got) != 0 {
		t.Fatalf("Once(Filtered) consumed by first call, got %v", got)
	}

	got = nil
	fn = observer.Filtered(observer.Once(
		func(n api.Notification[int]) { got = append(got, n.Value) },
	), func(v int) bool { return v > 10 })
	fn(note(1))
	fn(note(20))
	fn(note(30))
	if len(got) != 1 || got[0] != 20 {
		t.Fatalf("Filtered(Once) deliveries = %v, want [20]", got)
	}
}
