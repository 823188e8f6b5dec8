package report

import (
	"context"
	"math"
)

// AdjustmentStep is the granularity of the cash adjustment: the admin
// screen moves in whole 10,000-yen notes.
const AdjustmentStep = 10000

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// SaveDay runs the validation gate, recomputes the derived fields, and
// persists the report. Validation problems abort the save and are returned
// for user-facing messaging; they are not errors.
func (s *Service) SaveDay(ctx context.Context, d DayReport) ([]Problem, error) {
	if problems := Validate(d); len(problems) > 0 {
		return problems, nil
	}
	return nil, s.Store.SaveDay(ctx, Finalize(d))
}

// ApplyAdjustment merges an adjustment into one day after checking it
// against the day's true cash figure.
func (s *Service) ApplyAdjustment(ctx context.Context, year, month, day int, amount float64) error {
	if amount < 0 || math.Mod(amount, AdjustmentStep) != 0 {
		return ErrAdjustmentStepped
	}

	d, err := s.Store.GetDay(ctx, year, month, day)
	if err != nil {
		return err
	}
	if amount > d.Cash {
		return ErrAdjustmentTooBig
	}
	return s.Store.SaveAdjustment(ctx, year, month, day, amount)
}
