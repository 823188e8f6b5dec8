package report

import "testing"

func validDay() DayReport {
	d := sampleDay()
	return d
}

func TestValidateAcceptsCompleteDay(t *testing.T) {
	if problems := Validate(validDay()); len(problems) != 0 {
		t.Fatalf("expected no problems, got %+v", problems)
	}
}

func TestValidateRejectsSalesWithoutGuests(t *testing.T) {
	d := validDay()
	d.Guests = 0
	problems := Validate(d)
	if len(problems) != 1 || problems[0].Field != "guests" {
		t.Fatalf("expected a guests problem, got %+v", problems)
	}
}

func TestValidateAllowsZeroGuestsWithZeroSales(t *testing.T) {
	d := validDay()
	d.Guests = 0
	d.Cash, d.Card, d.EMoney = 0, 0, 0
	for _, p := range Validate(d) {
		if p.Field == "guests" {
			t.Fatalf("a closed register with no guests is fine, got %+v", p)
		}
	}
}

func TestValidateRejectsEmptyRoster(t *testing.T) {
	d := validDay()
	for i := range d.Members {
		d.Members[i].Status = StatusOff
	}
	problems := Validate(d)
	found := false
	for _, p := range problems {
		if p.Field == "members" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a members problem, got %+v", problems)
	}
}

func TestValidateRejectsUnnamedOptionalExpense(t *testing.T) {
	d := validDay()
	d.Optionals = append(d.Optionals, OptionalExpense{Name: "", Value: 500})
	problems := Validate(d)
	found := false
	for _, p := range problems {
		if p.Field == "optionals" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an optionals problem, got %+v", problems)
	}
}

func TestValidateAllowsNamedZeroExpense(t *testing.T) {
	d := validDay()
	d.Optionals = []OptionalExpense{{Name: "ice", Value: 0}, {Name: "", Value: 0}}
	if problems := Validate(d); len(problems) != 0 {
		t.Fatalf("zero-value expenses need no name, got %+v", problems)
	}
}
