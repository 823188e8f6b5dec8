package report

import (
	"reflect"
	"testing"
)

func sampleDay() DayReport {
	return DayReport{
		Year:      2025,
		Month:     11,
		Day:       14,
		DayOfWeek: "金",
		Weather:   "sunny",
		Cash:      84000,
		Card:      32000,
		EMoney:    4500,
		Guests:    41,
		Members: []ShiftEntry{
			{Name: "aoki", Status: StatusWorking, FromHour: 17, FromMin: 0, ToHour: 23, ToMin: 0, HourlyRate: 1000, Amount: 6250},
			{Name: "kinjo", Status: StatusWorking, FromHour: 18, FromMin: 30, ToHour: 22, ToMin: 0, HourlyRate: 950, Amount: 3325},
			{Name: "miyara", Status: StatusOff},
		},
		Suppliers: map[string]float64{
			"suehiro":  12400,
			"shopping": 3200,
			"yachin":   0,
		},
		Optionals: []OptionalExpense{{Name: "ice", Value: 800}},
		Denominations: map[int]int{
			10000: 3,
			5000:  4,
			1000:  8,
			500:   2,
			100:   9,
			10:    10,
		},
		Impression: "busy friday",
	}
}

func TestAggregateDay(t *testing.T) {
	got := AggregateDay(sampleDay())

	if got.TotalSales != 84000+32000+4500 {
		t.Fatalf("total sales: expected 120500, got %v", got.TotalSales)
	}
	if got.TotalPayroll != 9575 {
		t.Fatalf("total payroll: expected 9575, got %v", got.TotalPayroll)
	}
	wantChange := float64(3*10000 + 4*5000 + 8*1000 + 2*500 + 9*100 + 10*10)
	if got.TotalChange != wantChange {
		t.Fatalf("total change: expected %v, got %v", wantChange, got.TotalChange)
	}
	if got.DrawerDelta != wantChange-DrawerTarget {
		t.Fatalf("drawer delta: expected %v, got %v", wantChange-DrawerTarget, got.DrawerDelta)
	}
	if got.TotalExpenses != 12400+3200+800 {
		t.Fatalf("total expenses: expected 16400, got %v", got.TotalExpenses)
	}
	if got.WorkingHeadcount != 2 {
		t.Fatalf("headcount: expected 2, got %d", got.WorkingHeadcount)
	}
}

func TestAggregateDayIdempotent(t *testing.T) {
	day := sampleDay()
	first := AggregateDay(day)
	second := AggregateDay(day)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation must be pure: %+v vs %+v", first, second)
	}
}

func TestTotalChangeMissingKeysCountZero(t *testing.T) {
	if got := TotalChange(map[int]int{500: 120}); got != 60000 {
		t.Fatalf("expected 60000, got %v", got)
	}
	if got := TotalChange(nil); got != 0 {
		t.Fatalf("empty drawer should total 0, got %v", got)
	}
}

func TestTotalExpensesIgnoresUnknownSupplierKeys(t *testing.T) {
	d := DayReport{Suppliers: map[string]float64{"sakihama": 5000, "bogus": 99999}}
	if got := TotalExpenses(d); got != 5000 {
		t.Fatalf("unknown supplier keys must not count, got %v", got)
	}
}
