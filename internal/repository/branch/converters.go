package branch

import (
	"strings"

	"storefront/internal/entities"
	"storefront/internal/service/hours"
)

// ToDomain неизвестные дни и дни с битым временем отбрасываются,
// отсутствующий день дальше трактуется как выходной.
func ToDomain(doc OperatingHoursDB) *entities.WeeklyOperatingHours {
	schedule := make(entities.WeeklyOperatingHours, len(doc))

	for name, day := range doc {
		weekday, ok := entities.ParseWeekday(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			continue
		}

		if day.IsOpen {
			if _, _, ok := hours.ParseClock(day.Open); !ok {
				continue
			}
			if _, _, ok := hours.ParseClock(day.Close); !ok {
				continue
			}
		}

		schedule[weekday] = entities.DaySchedule{
			Open:   day.Open,
			Close:  day.Close,
			IsOpen: day.IsOpen,
		}
	}

	return &schedule
}
