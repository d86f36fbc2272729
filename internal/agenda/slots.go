package agenda

// GenerateSlots produces the ordered slot sequence for one day.
//
// Slots start at day.Start and advance by cfg.Step(); a slot is emitted
// while its full consultation still fits before day.End. Slots inside the
// lunch window are emitted but marked unavailable, so the sequence stays
// dense for timeline rendering. Closed days and inverted ranges yield an
// empty sequence, not an error.
func GenerateSlots(day DaySchedule, cfg Config) []Slot {
	if !day.Open {
		return nil
	}

	step := cfg.Step()
	if step < 1 {
		// Inputs are validated at parse time; this floor only guards the
		// loop against a hand-built config.
		step = 1
	}

	end := day.End.Minutes()
	var slots []Slot
	for cur := day.Start.Minutes(); cur+cfg.ConsultationMinutes <= end; cur += step {
		lunch := inLunchBreak(cfg.Lunch, cur)
		slots = append(slots, Slot{
			Time:       TimeOfDay{Hour: cur / 60, Minute: cur % 60},
			Available:  !lunch,
			LunchBreak: lunch,
		})
	}
	return slots
}

// inLunchBreak reports whether a slot start falls in [Start, End). A slot
// starting exactly at the lunch end is available again.
func inLunchBreak(lunch *LunchBreak, minutes int) bool {
	if lunch == nil {
		return false
	}
	return minutes >= lunch.Start.Minutes() && minutes < lunch.End.Minutes()
}
