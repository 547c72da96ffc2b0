package api_test

import (
	"testing"
	"time"

	"github.com/momentics/hioload-atom/api"
)

func TestNotificationStruct(t *testing.T) {
	ts := time.Unix(42, 0)
	n := api.Notification[int]{Timestamp: ts, Value: 7}
	if !n.Timestamp.Equal(ts) || n.Value != 7 || n.Extra != nil {
		t.Fatal("Notification fields not set correctly")
	}
}

func TestAcceptAllAdmitsEverything(t *testing.T) {
	v := api.AcceptAll[int]()
	for _, x := range []int{-1, 0, 1, 1 << 30} {
		if !v(x) {
			t.Fatalf("AcceptAll rejected %d", x)
		}
	}
}

func TestCellInterfaceCompliance(t *testing.T) {
	var _ api.Cell[string] = (*api.MockCell[string])(nil)
}

func TestTimeSourceInterfaceCompliance(t *testing.T) {
	var _ api.TimeSource = (*api.MockTimeSource)(nil)
}

func TestMockCellDelegates(t *testing.T) {
	val := "x"
	var stored *string
	m := &api.MockCell[string]{
		LoadFunc:  func() *string { return &val },
		StoreFunc: func(v *string) { stored = v },
		CompareAndSwapFunc: func(old, next *string) bool {
			return old == &val
		},
	}
	if *m.Load() != "x" {
		t.Error("Load did not delegate")
	}
	m.Store(&val)
	if stored != &val {
		t.Error("Store did not delegate")
	}
	if !m.CompareAndSwap(&val, new(string)) {
		t.Error("CompareAndSwap did not delegate")
	}
}

func TestStructuredErrorContext(t *testing.T) {
	e := api.NewError(api.ErrCodeRejected, "candidate rejected").
		WithContext("atom", "counter")
	if e.Code != api.ErrCodeRejected {
		t.Error("wrong code")
	}
	if e.Error() == "candidate rejected" {
		t.Error("context not rendered")
	}
}
