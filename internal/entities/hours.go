package entities

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// AllWeekdays в порядке Sunday = 0
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return ""
	}
	return weekdayNames[d]
}

func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return 0, false
}

// DaySchedule время в формате "HH:MM" (24ч, с ведущим нулём), локальное UTC+3
type DaySchedule struct {
	Open   string
	Close  string
	IsOpen bool
}

type WeeklyOperatingHours map[Weekday]DaySchedule

type OpenStatus struct {
	IsOpen    bool
	Message   string
	LocalTime string
}
