package core

import "testing"

func TestManualClockAdvance(t *testing.T) {
	c := &ManualClock{}
	if got := c.Advance(16); got != 16 {
		t.Errorf("Advance(16) = %d, expected 16", got)
	}
	c.Advance(17)
	if c.NowMillis() != 33 {
		t.Errorf("NowMillis() = %d, expected 33", c.NowMillis())
	}
}

func TestPausableClockSkipsPausedTime(t *testing.T) {
	base := &ManualClock{}
	base.Advance(1000)
	c := NewPausableClock(base)

	base.Advance(100)
	if c.NowMillis() != 1100 {
		t.Fatalf("NowMillis() = %d, expected 1100", c.NowMillis())
	}

	c.Pause()
	base.Advance(60_000)
	if c.NowMillis() != 1100 {
		t.Errorf("paused NowMillis() = %d, expected 1100", c.NowMillis())
	}
	if !c.Paused() {
		t.Error("Paused() = false after Pause()")
	}

	c.Resume()
	if c.NowMillis() != 1100 {
		t.Errorf("NowMillis() after Resume() = %d, expected 1100", c.NowMillis())
	}
	base.Advance(16)
	if c.NowMillis() != 1116 {
		t.Errorf("NowMillis() = %d, expected 1116", c.NowMillis())
	}
}

func TestPausableClockRepeatedCalls(t *testing.T) {
	base := &ManualClock{}
	c := NewPausableClock(base)

	c.Resume() // not paused
	c.Pause()
	base.Advance(500)
	c.Pause() // already paused; must keep the first pause instant
	base.Advance(500)
	c.Resume()
	c.Resume()

	if c.NowMillis() != 0 || c.Paused() {
		t.Errorf("NowMillis() = %d, paused %v; expected 0, false", c.NowMillis(), c.Paused())
	}

	c.Pause()
	base.Advance(200)
	c.Resume()
	base.Advance(10)
	if c.NowMillis() != 10 {
		t.Errorf("NowMillis() after two pauses = %d, expected 10", c.NowMillis())
	}
}
