package agenda

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// "Segunda: 8h00 às 13h00" / "Terça-feira: ❌". Accent-less spellings
	// occur in stored data, so both forms are accepted.
	dayLineRe = regexp.MustCompile(`(?i)^\s*(segunda|ter[çc]a|quarta|quinta|sexta|s[áa]bado|domingo)(?:-feira)?\s*:\s*(.+)$`)

	// "8h:00 às 13h00", "12 às 13h00" — hour mandatory, trailing "h" and
	// minutes optional.
	timeRangeRe = regexp.MustCompile(`(?i)(\d{1,2})h?:?(\d{2})?\s*às\s*(\d{1,2})h?:?(\d{2})?`)

	durationRe = regexp.MustCompile(`(?i)duração\s+d[ae]\s+consulta.*?(\d+)\s*minutos`)
	intervalRe = regexp.MustCompile(`(?i)intervalo\s+entre\s+pacientes.*?(\d+)\s*minutos`)
	lunchRe    = regexp.MustCompile(`(?i)intervalo\s+(?:para\s+o\s+)?almoço.*?(\d{1,2})h?:?(\d{2})?\s*às\s*(\d{1,2})h?:?(\d{2})?`)
)

var weekdayNames = map[string]time.Weekday{
	"segunda": time.Monday,
	"terça":   time.Tuesday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sábado":  time.Saturday,
	"sabado":  time.Saturday,
	"domingo": time.Sunday,
}

// Parse converts a free-text weekly schedule into its structured form.
//
// It never fails: unrecognized lines are ignored, malformed day lines
// leave the day closed and malformed directives keep the defaults. Lines
// are processed in order; the first occurrence of each directive wins,
// the last occurrence of a weekday line wins. Absence of the text itself
// (NULL column) must be handled by the caller before invoking Parse.
func Parse(text string) *WeeklySchedule {
	ws := &WeeklySchedule{
		Days: map[time.Weekday]DaySchedule{
			time.Monday:    {},
			time.Tuesday:   {},
			time.Wednesday: {},
			time.Thursday:  {},
			time.Friday:    {},
			time.Saturday:  {},
			time.Sunday:    {},
		},
		Config: Config{
			ConsultationMinutes: DefaultConsultationMinutes,
			IntervalMinutes:     DefaultIntervalMinutes,
		},
	}

	var haveDuration, haveInterval, haveLunch bool

	for _, line := range strings.Split(text, "\n") {
		if m := durationRe.FindStringSubmatch(line); m != nil {
			if !haveDuration {
				if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
					ws.Config.ConsultationMinutes = n
					haveDuration = true
				}
			}
			continue
		}

		if m := intervalRe.FindStringSubmatch(line); m != nil {
			if !haveInterval {
				if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
					ws.Config.IntervalMinutes = n
					haveInterval = true
				}
			}
			continue
		}

		if m := lunchRe.FindStringSubmatch(line); m != nil {
			if !haveLunch {
				ws.Config.Lunch = &LunchBreak{
					Start: timeOfDay(m[1], m[2]),
					End:   timeOfDay(m[3], m[4]),
				}
				haveLunch = true
			}
			continue
		}

		m := dayLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		weekday, ok := weekdayNames[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		rest := m[2]

		if isClosedMarker(rest) {
			ws.Days[weekday] = DaySchedule{}
			continue
		}

		tr := timeRangeRe.FindStringSubmatch(rest)
		if tr == nil {
			// No recognizable time range: the day stays closed.
			ws.Days[weekday] = DaySchedule{}
			continue
		}

		ws.Days[weekday] = DaySchedule{
			Open:  true,
			Start: timeOfDay(tr[1], tr[2]),
			End:   timeOfDay(tr[3], tr[4]),
		}
	}

	return ws
}

func isClosedMarker(rest string) bool {
	return strings.Contains(rest, "❌") || strings.Contains(strings.ToLower(rest), "fechado")
}

// timeOfDay builds a TimeOfDay from regex captures; minute may be empty.
func timeOfDay(hour, minute string) TimeOfDay {
	h, _ := strconv.Atoi(hour)
	m := 0
	if minute != "" {
		m, _ = strconv.Atoi(minute)
	}
	return TimeOfDay{Hour: h, Minute: m}
}
