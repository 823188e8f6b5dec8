package report

// Business-rule constants. The shift grid runs on the restaurant's business
// day, which starts at noon and runs past midnight: hour 25 is 1 AM of the
// following calendar day.
const (
	MinHour = 12
	MaxHour = 25

	// NightRateMultiplier applies to any portion of a shift worked at or
	// after NightStartHour (22:00, expressed in decimal hours).
	NightRateMultiplier = 1.25
	NightStartHour      = 22.0

	// DrawerTarget is the expected cash-drawer float after counting the
	// till; any deviation is reported as a shortage or overage.
	DrawerTarget = 60000
)

// Minutes are the shift selector's quarter-hour buckets. The calculator
// still yields a sane value for other minutes, but forms only offer these.
var Minutes = []int{0, 15, 30, 45}

// Denominations lists the bill and coin face values counted in the drawer,
// largest first. The order is also the spreadsheet/report display order.
var Denominations = []int{10000, 5000, 2000, 1000, 500, 100, 50, 10, 5, 1}

// SupplierKeys is the fixed set of regular supplier and overhead expense
// slots on the daily form. Ad-hoc expenses go in DayReport.Optionals.
var SupplierKeys = []string{
	"suehiro",
	"sakihama",
	"miyazato",
	"ganaha",
	"BEEFshin",
	"zenoki",
	"sunny",
	"shopping",
	"zappi",
	"kemutou",
	"gyoumu",
	"furikomiFee",
	"cardFee",
	"eigyou",
	"koutuhi",
	"yachin",
	"kounetuhi",
	"tushinhi",
	"miyagi",
}

// WeekDays are the single-character day-of-week labels, Sunday first,
// indexed by time.Weekday.
var WeekDays = []string{"日", "月", "火", "水", "木", "金", "土"}

// Weathers are the allowed values for DayReport.Weather.
var Weathers = []string{
	"sunny",
	"cloudy",
	"rain",
	"windy",
	"rain then sunny",
	"sunny then rain",
}
