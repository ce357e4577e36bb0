package cli

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
)

type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func TestDisplayProgress(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	defer func() { newSpinner = orig }()

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		DisplayProgress(done, "evaluating", func() (float64, time.Duration) {
			return 0.5, 30 * time.Second
		})
		close(finished)
	}()

	// let a few refresh ticks pass
	time.Sleep(3 * ProgressRefreshRate)
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("DisplayProgress did not return after done was closed")
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !fake.started || !fake.stopped {
		t.Errorf("spinner lifecycle: started=%v stopped=%v", fake.started, fake.stopped)
	}
	if len(fake.suffixes) == 0 {
		t.Fatal("no progress updates recorded")
	}
	last := fake.suffixes[len(fake.suffixes)-1]
	for _, want := range []string{"evaluating", "50%", "ETA: 30s"} {
		if !strings.Contains(last, want) {
			t.Errorf("suffix missing %q: %q", want, last)
		}
	}
}
