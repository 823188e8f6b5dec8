package report

type ShiftStatus string

const (
	StatusWorking ShiftStatus = "working"
	StatusOff     ShiftStatus = "off"
)

// ShiftEntry is one staff member's attendance record for one day. Amount is
// derived from the other fields and recomputed whenever they change; it is
// never authoritative on its own.
type ShiftEntry struct {
	Name       string      `json:"name"`
	Status     ShiftStatus `json:"status"`
	FromHour   int         `json:"fromHour"`
	FromMin    int         `json:"fromMin"`
	ToHour     int         `json:"toHour"`
	ToMin      int         `json:"toMin"`
	HourlyRate float64     `json:"hourlyRate"`
	Amount     float64     `json:"amount"`
}

// OptionalExpense is an ad-hoc named expense outside the fixed supplier
// slots.
type OptionalExpense struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DayReport is one calendar day's full report. Saves overwrite the whole
// record; only AdjustedCash is ever merged separately.
type DayReport struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	DayOfWeek string `json:"dayOfWeek"`
	Weather   string `json:"weather"`

	Cash    float64 `json:"cash"`
	Card    float64 `json:"card"`
	EMoney  float64 `json:"eMoney"`
	Senbero float64 `json:"senbero"`
	Guests  int     `json:"guests"`

	Members []ShiftEntry `json:"members"`

	Suppliers map[string]float64 `json:"suppliers"`
	Optionals []OptionalExpense  `json:"optionals,omitempty"`

	// Denominations maps face value to counted quantity.
	Denominations map[int]int `json:"denominations"`

	// StaffSalaries is the day's payroll total, computed at save time and
	// persisted rather than re-derived on every read.
	StaffSalaries float64 `json:"staffSalaries"`

	Impression string `json:"impression"`

	// AdjustedCash is the amount an admin chose to subtract from Cash for
	// the accountant-facing figure. Zero means unadjusted.
	AdjustedCash float64 `json:"adjustedCash,omitempty"`
}

// DaySummary is the output of AggregateDay.
type DaySummary struct {
	TotalSales       float64 `json:"totalSales"`
	TotalPayroll     float64 `json:"totalPayroll"`
	TotalChange      float64 `json:"totalChange"`
	DrawerDelta      float64 `json:"drawerDelta"`
	TotalExpenses    float64 `json:"totalExpenses"`
	WorkingHeadcount int     `json:"workingHeadcount"`
}

// MonthSummary is the output of Rollup: the running monthly figures shown
// on the focal day's dashboard.
type MonthSummary struct {
	AvgDailySales       float64 `json:"avgDailySales"`
	AvgCustomerValue    float64 `json:"avgCustomerValue"`
	TotalMonthlySales   float64 `json:"totalMonthlySales"`
	TotalMonthlyGuests  int     `json:"totalMonthlyGuests"`
	TotalMonthlyPayroll float64 `json:"totalMonthlyPayroll"`
}
