package logger

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_LinesNeverInterleave verifies that the single-write
// emission keeps lines whole when many goroutines log simultaneously.
func TestConcurrency_LinesNeverInterleave(t *testing.T) {
	buf := captureOutput(t)
	Init(Config{Level: "debug"})

	const numGoroutines = 200
	const messagesPerGoroutine = 25

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			log := NewModule("conc")
			for j := range messagesPerGoroutine {
				log.Infof("goroutine-%d-info-%d", id, j)
				log.Errorf("goroutine-%d-error-%d", id, j)
			}
		}(i)
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expectedLines := numGoroutines * messagesPerGoroutine * 2
	if len(lines) != expectedLines {
		t.Fatalf("expected %d log lines, got %d", expectedLines, len(lines))
	}

	// Each line must carry its tag, module and message intact.
	for i, line := range lines {
		hasTag := strings.Contains(line, ": INF  conc  ") ||
			strings.Contains(line, ": ERR  conc  ")
		if !hasTag {
			t.Fatalf("line %d appears garbled (missing tag/module): %q", i, line)
		}
		if !strings.Contains(line, "goroutine-") {
			t.Fatalf("line %d appears garbled (missing goroutine marker): %q", i, line)
		}
	}
}

// TestConcurrency_ThresholdResolvedOnce verifies that concurrent first use
// observes a single, stable threshold value.
func TestConcurrency_ThresholdResolvedOnce(t *testing.T) {
	captureOutput(t)
	Init(Config{Level: "info"})

	const numGoroutines = 100
	results := make([]Level, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			results[id] = Threshold()
		}(i)
	}
	wg.Wait()

	for id, got := range results {
		if got != InfoLevel {
			t.Fatalf("goroutine %d observed threshold %v, want %v", id, got, InfoLevel)
		}
	}
}

// TestConcurrency_MixedWithEmptyLines verifies that EmptyLine shares the
// same write lock as regular emission.
func TestConcurrency_MixedWithEmptyLines(t *testing.T) {
	buf := captureOutput(t)
	Init(Config{Level: "info"})

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			NewModule("mix").Infof("line-%d", id)
		}(i)
		go func() {
			defer wg.Done()
			EmptyLine()
		}()
	}
	wg.Wait()

	output := buf.String()
	if got := strings.Count(output, "\n"); got != numGoroutines*2 {
		t.Fatalf("expected %d newlines, got %d", numGoroutines*2, got)
	}
	if got := strings.Count(output, "line-"); got != numGoroutines {
		t.Fatalf("expected %d log lines, got %d", numGoroutines, got)
	}
}
