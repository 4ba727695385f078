package report

import (
	"testing"
	"time"

	"Go2SendGraph/internal/model"
)

func TestCodecRoundTrip(t *testing.T) {
	in := model.SnapshotReport{
		ReportID: "9c5b94b1-35ad-49bb-b118-8e8fc24abf80",
		TaskID:   3,
		TakenAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Counts:   map[model.TaskID]int64{4: 120, 5: 7},
	}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out.ReportID != in.ReportID || out.TaskID != in.TaskID {
		t.Errorf("Identity fields changed: got %+v", out)
	}
	if !out.TakenAt.Equal(in.TakenAt) {
		t.Errorf("Expected TakenAt %v, got %v", in.TakenAt, out.TakenAt)
	}
	if len(out.Counts) != 2 || out.Counts[4] != 120 || out.Counts[5] != 7 {
		t.Errorf("Unexpected counts: %v", out.Counts)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode([]byte("not a gob stream")); err == nil {
		t.Error("Expected error for garbage input, got nil")
	}
}
