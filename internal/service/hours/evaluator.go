package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/entities"
)

const (
	// Кувейт: UTC+3 круглый год, базу таймзон не используем
	localOffset = 180 * time.Minute

	defaultOpen  = "13:00"
	defaultClose = "00:30"

	msgClosedToday     = "We are closed today"
	msgCurrentlyClosed = "We are currently closed. Open %s - %s"
	msgSeeHours        = "See hours"
	displayFormat      = "Open %s - %s"
)

// LocalTime переводит момент во время ресторана.
// Результат в UTC-локации, поэтому Hour/Minute/Weekday дают местное время.
func LocalTime(at time.Time) time.Time {
	return at.UTC().Add(localOffset)
}

// Evaluate проверяет, открыт ли ресторан в момент at.
//
// Время "HH:MM" сравнивается строками: с ведущими нулями лексикографический
// порядок совпадает с числовым. Если close < open, окно переходит через полночь.
func Evaluate(schedule *entities.WeeklyOperatingHours, at time.Time) entities.OpenStatus {
	local := LocalTime(at)
	localTime := formatClock(local.Hour(), local.Minute())

	if schedule == nil {
		return entities.OpenStatus{IsOpen: true, LocalTime: localTime}
	}

	day, ok := (*schedule)[entities.Weekday(local.Weekday())]
	if !ok || !day.IsOpen {
		return entities.OpenStatus{
			IsOpen:    false,
			Message:   msgClosedToday,
			LocalTime: localTime,
		}
	}

	now := fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())

	var open bool
	if day.Close < day.Open {
		open = now >= day.Open || now < day.Close
	} else {
		open = now >= day.Open && now < day.Close
	}

	if open {
		return entities.OpenStatus{IsOpen: true, LocalTime: localTime}
	}

	return entities.OpenStatus{
		IsOpen:    false,
		Message:   fmt.Sprintf(msgCurrentlyClosed, FormatTime12Hour(day.Open), FormatTime12Hour(day.Close)),
		LocalTime: localTime,
	}
}

// Display сворачивает неделю в одну строку, если все дни одинаковые и открыты.
func Display(schedule *entities.WeeklyOperatingHours) string {
	if schedule == nil {
		return fmt.Sprintf(displayFormat, FormatTime12Hour(defaultOpen), FormatTime12Hour(defaultClose))
	}

	first, ok := (*schedule)[entities.Sunday]
	if !ok || !first.IsOpen {
		return msgSeeHours
	}

	for _, weekday := range entities.AllWeekdays {
		day, ok := (*schedule)[weekday]
		if !ok || day != first {
			return msgSeeHours
		}
	}

	return fmt.Sprintf(displayFormat, FormatTime12Hour(first.Open), FormatTime12Hour(first.Close))
}

// FormatTime12Hour "13:00" -> "1:00 PM", "00:30" -> "12:30 AM".
// Строку не в формате HH:MM возвращает как есть.
func FormatTime12Hour(hhmm string) string {
	hours, minutes, ok := ParseClock(hhmm)
	if !ok {
		return hhmm
	}
	return formatClock(hours, minutes)
}

// ParseClock разбирает "HH:MM" в 24-часовом формате.
func ParseClock(hhmm string) (int, int, bool) {
	h, m, found := strings.Cut(hhmm, ":")
	if !found || len(h) != 2 || len(m) != 2 {
		return 0, 0, false
	}

	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, false
	}

	return hours, minutes, true
}

func formatClock(hours, minutes int) string {
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, period)
}
