package report

import "fmt"

// Problem is one user-facing validation failure. These are business-rule
// gates checked before a day may be saved, not system faults.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// HasNoGuests flags takings recorded without a headcount: customers are
// implied but the guest count is missing.
func HasNoGuests(d DayReport) bool {
	return d.Guests == 0 && (d.Cash != 0 || d.Card != 0 || d.EMoney != 0)
}

// HasOnDutyMembers reports whether at least one member worked.
func HasOnDutyMembers(members []ShiftEntry) bool {
	for _, m := range members {
		if m.Status == StatusWorking {
			return true
		}
	}
	return false
}

// HasUnnamedValue flags an ad-hoc expense carrying an amount but no name.
func HasUnnamedValue(op OptionalExpense) bool {
	return op.Value != 0 && op.Name == ""
}

// Validate runs the save gate and returns every problem found. An empty
// result means the day may be saved.
func Validate(d DayReport) []Problem {
	var problems []Problem
	if HasNoGuests(d) {
		problems = append(problems, Problem{
			Field:  "guests",
			Reason: "guest count is required when sales are recorded",
		})
	}
	if !HasOnDutyMembers(d.Members) {
		problems = append(problems, Problem{
			Field:  "members",
			Reason: "at least one member must be on duty",
		})
	}
	for i, op := range d.Optionals {
		if HasUnnamedValue(op) {
			problems = append(problems, Problem{
				Field:  "optionals",
				Reason: fmt.Sprintf("expense %d has an amount but no name", i+1),
			})
		}
	}
	return problems
}
