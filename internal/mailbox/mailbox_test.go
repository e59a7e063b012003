package mailbox

import (
	"context"
	"testing"
	"time"
)

func TestLatestWins(t *testing.T) {
	mb := New[int]()
	mb.Put(1)
	mb.Put(2)
	mb.Put(3)

	if !mb.HasJob() {
		t.Fatal("HasJob = false")
	}
	got, ok := mb.TryTake()
	if !ok || got != 3 {
		t.Fatalf("TryTake = %d, %v, want 3, true", got, ok)
	}
	if _, ok := mb.TryTake(); ok {
		t.Error("mailbox not empty after take")
	}
}

func TestTakeBlocksUntilPut(t *testing.T) {
	mb := New[string]()
	done := make(chan string)
	go func() {
		j, _ := mb.Take(context.Background())
		done <- j
	}()

	time.Sleep(10 * time.Millisecond)
	mb.Put("scan")

	select {
	case got := <-done:
		if got != "scan" {
			t.Errorf("Take = %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Take did not return")
	}
}

func TestTakeCancelled(t *testing.T) {
	mb := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, ok := mb.Take(ctx); ok {
		t.Error("Take returned a job from an empty mailbox")
	}
}
