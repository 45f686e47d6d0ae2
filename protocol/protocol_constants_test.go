package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgWorld != "world" {
		t.Fatalf("MsgWorld = %q, want %q", MsgWorld, "world")
	}
	if MsgFrame != "frame" {
		t.Fatalf("MsgFrame = %q, want %q", MsgFrame, "frame")
	}
	if MsgInput != "input" {
		t.Fatalf("MsgInput = %q, want %q", MsgInput, "input")
	}
}

func TestTimingSanity(t *testing.T) {
	if SimTickHz <= 0 || BroadcastHz <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}
