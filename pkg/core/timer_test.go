package core

import (
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step = %v", fs.Step())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step should not fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step should fire")
	}
	clock = clock.Add(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 2 {
		t.Fatalf("backlog after stall replayed %d steps", steps)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/8 {
		t.Fatalf("step = %v", fs.Step())
	}
}
