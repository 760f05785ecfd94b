package uri_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/uriparse/internal/testutil/allocmock"
	"github.com/ghettovoice/uriparse/uri"
)

// trackAllocs makes alloc hand out fresh buffers and counts the ones not freed yet.
func trackAllocs(alloc *allocmock.MockAllocator, allocs, live *int) {
	alloc.EXPECT().
		Alloc(gomock.Any()).
		DoAndReturn(func(n int) []byte {
			*allocs++
			*live++
			return make([]byte, n)
		}).
		AnyTimes()
	alloc.EXPECT().
		Free(gomock.AssignableToTypeOf([]byte(nil))).
		Do(func([]byte) { *live-- }).
		AnyTimes()
}

func TestAllocator_PairsEveryDecodedSpan(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	alloc := allocmock.NewMockAllocator(ctrl)

	// scheme, userinfo, host, port, segment, path, query, item key, item value, fragment
	alloc.EXPECT().
		Alloc(gomock.Any()).
		DoAndReturn(func(n int) []byte { return make([]byte, n) }).
		Times(10)
	alloc.EXPECT().
		Free(gomock.AssignableToTypeOf([]byte(nil))).
		Times(10)

	st := recorderSettings()
	st.Decode = true
	st.Allocator = alloc

	var r recorder
	if got := uri.ParseFullURI("s://u@h:1/p?a=b#f", st, &r); got != uri.Success {
		t.Errorf("uri.ParseFullURI(s, st, r) = %v, want %v", got, uri.Success)
	}
}

func TestAllocator_OnlyObservedSpans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	alloc := allocmock.NewMockAllocator(ctrl)
	var allocs, live int
	trackAllocs(alloc, &allocs, &live)

	var segs []string
	st := &uri.Settings[any]{
		PathSegment: func(_ any, b []byte) bool {
			segs = append(segs, string(b))
			return true
		},
		Decode:    true,
		Allocator: alloc,
	}
	if got := uri.ParseFullURI("http://host/a%20b/c", st, nil); got != uri.Success {
		t.Errorf("uri.ParseFullURI(s, st, nil) = %v, want %v", got, uri.Success)
	}
	if allocs != 2 || live != 0 {
		t.Errorf("allocs = %d, live = %d, want 2 and 0", allocs, live)
	}
	if len(segs) != 2 || segs[0] != "a b" || segs[1] != "c" {
		t.Errorf("segments = %q, want [\"a b\" \"c\"]", segs)
	}
}

func TestAllocator_ReleasedOnCancel(t *testing.T) {
	t.Parallel()

	const in = "s://u@h:1/p/q?a=b&c&d=1#f"

	for k := 1; k <= 12; k++ {
		ctrl := gomock.NewController(t)
		alloc := allocmock.NewMockAllocator(ctrl)
		var allocs, live int
		trackAllocs(alloc, &allocs, &live)

		st := recorderSettings()
		st.Decode = true
		st.Allocator = alloc

		r := recorder{stop: k}
		if got := uri.ParseFullURI(in, st, &r); got != uri.Canceled {
			t.Errorf("cancel on hook #%d: uri.ParseFullURI(s, st, r) = %v, want %v", k, got, uri.Canceled)
		}
		if allocs == 0 || live != 0 {
			t.Errorf("cancel on hook #%d: allocs = %d, live = %d, want some and 0", k, allocs, live)
		}
	}
}

func TestAllocator_ReleasedOnPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	alloc := allocmock.NewMockAllocator(ctrl)
	var allocs, live int
	trackAllocs(alloc, &allocs, &live)

	st := &uri.Settings[any]{
		Host:      func(any, []byte) bool { panic("boom") },
		Decode:    true,
		Allocator: alloc,
	}

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()
		uri.ParseFullURI("http://host/", st, nil)
	}()

	if allocs != 1 || live != 0 {
		t.Errorf("allocs = %d, live = %d, want 1 and 0", allocs, live)
	}
}

func TestDefaultAllocator(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 64, 100, 70000} {
		b := uri.DefaultAllocator.Alloc(n)
		if len(b) != n {
			t.Errorf("uri.DefaultAllocator.Alloc(%d) len = %d, want %d", n, len(b), n)
		}
		uri.DefaultAllocator.Free(b)
	}
}
