package report

import "testing"

func TestWithStatusOffResetsShift(t *testing.T) {
	e := ShiftEntry{
		Name:       "aoki",
		Status:     StatusWorking,
		FromHour:   18,
		FromMin:    30,
		ToHour:     23,
		ToMin:      15,
		HourlyRate: 1000,
		Amount:     4687.5,
	}

	off := WithStatus(e, StatusOff)
	if off.Amount != 0 {
		t.Fatalf("off member must pay nothing, got %v", off.Amount)
	}
	if off.FromHour != MinHour || off.ToHour != MinHour || off.FromMin != 0 || off.ToMin != 0 {
		t.Fatalf("off member shift times must reset to defaults: %+v", off)
	}
	if e.Amount != 4687.5 {
		t.Fatal("input entry must not be mutated")
	}
}

func TestWithStatusWorkingRecomputes(t *testing.T) {
	e := ShiftEntry{Name: "aoki", Status: StatusOff, FromHour: 18, ToHour: 23, HourlyRate: 1000}
	on := WithStatus(e, StatusWorking)
	if on.Amount != 5250 {
		t.Fatalf("expected recomputed 5250, got %v", on.Amount)
	}
}

func TestWithShiftTimesRecomputes(t *testing.T) {
	e := ShiftEntry{Name: "aoki", Status: StatusWorking, HourlyRate: 1000}
	moved := WithShiftTimes(e, 20, 30, 22, 0)
	if moved.Amount != 1500 {
		t.Fatalf("expected 1500, got %v", moved.Amount)
	}

	inverted := WithShiftTimes(e, 20, 0, 18, 0)
	if inverted.Amount != 0 {
		t.Fatalf("inverted span must clamp to zero, got %v", inverted.Amount)
	}
}

func TestWithRateRecomputes(t *testing.T) {
	e := ShiftEntry{Name: "aoki", Status: StatusWorking, FromHour: 18, ToHour: 22, HourlyRate: 900}
	raised := WithRate(e, 1200)
	if raised.Amount != 4800 {
		t.Fatalf("expected 4800, got %v", raised.Amount)
	}
}

func TestFinalizeRecomputesDerivedFields(t *testing.T) {
	d := DayReport{
		Members: []ShiftEntry{
			// Stored amounts are stale on purpose; Finalize must not trust them.
			{Name: "aoki", Status: StatusWorking, FromHour: 18, ToHour: 23, HourlyRate: 1000, Amount: 1},
			{Name: "kinjo", Status: StatusOff, Amount: 9999},
		},
		StaffSalaries: 123456,
	}

	out := Finalize(d)
	if out.Members[0].Amount != 5250 {
		t.Fatalf("expected recomputed 5250, got %v", out.Members[0].Amount)
	}
	if out.Members[1].Amount != 0 {
		t.Fatalf("off member amount must be zero, got %v", out.Members[1].Amount)
	}
	if out.StaffSalaries != 5250 {
		t.Fatalf("expected staff salaries 5250, got %v", out.StaffSalaries)
	}
	if d.Members[0].Amount != 1 {
		t.Fatal("input report must not be mutated")
	}
}

func TestWithAdjustedCash(t *testing.T) {
	d := DayReport{Cash: 50000}
	out := WithAdjustedCash(d, 20000)
	if out.AdjustedCash != 20000 || d.AdjustedCash != 0 {
		t.Fatalf("expected new record with adjustment, got %+v", out)
	}
}
