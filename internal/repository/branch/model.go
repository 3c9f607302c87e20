package branch

type DayScheduleDB struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

// OperatingHoursDB документ branches.operating_hours, ключи дни недели в нижнем регистре
type OperatingHoursDB map[string]DayScheduleDB
