package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SlotCatalog is the fixed set of bookable time labels a lawyer can offer.
var SlotCatalog = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// DefaultSlot is what a freshly enabled day starts with.
const DefaultSlot = "09:00"

// InCatalog reports whether the label is one of the bookable times.
func InCatalog(label string) bool {
	for _, s := range SlotCatalog {
		if s == label {
			return true
		}
	}
	return false
}

// WeeklyAvailability maps a day of week to the sorted set of time labels the
// lawyer offers on that day. A day with no labels is unavailable.
type WeeklyAvailability map[DayOfWeek][]string

// NewWeeklyAvailability returns an availability map with every day present
// and empty.
func NewWeeklyAvailability() WeeklyAvailability {
	w := make(WeeklyAvailability, 7)
	for d := Sunday; d <= Saturday; d++ {
		w[d] = []string{}
	}
	return w
}

// DayAvailable reports whether the day offers at least one slot.
func (w WeeklyAvailability) DayAvailable(day DayOfWeek) bool {
	return len(w[day]) > 0
}

// ToggleDay switches a whole day on or off. Enabling a day that has no slots
// seeds it with the default slot; disabling clears every slot on that day.
func (w WeeklyAvailability) ToggleDay(day DayOfWeek, on bool) {
	if !on {
		w[day] = []string{}
		return
	}
	if len(w[day]) == 0 {
		w[day] = []string{DefaultSlot}
	}
}

// ToggleSlot adds the label to the day's set if absent, removes it if
// present, and keeps the set sorted. Labels outside the catalog are rejected.
func (w WeeklyAvailability) ToggleSlot(day DayOfWeek, label string) error {
	if !InCatalog(label) {
		return fmt.Errorf("time %q is not in the slot catalog", label)
	}
	slots := w[day]
	for i, s := range slots {
		if s == label {
			w[day] = append(slots[:i], slots[i+1:]...)
			return nil
		}
	}
	slots = append(slots, label)
	sort.Strings(slots)
	w[day] = slots
	return nil
}

// FromTimeSlots folds persisted rows into the weekly map. Rows flagged
// unavailable are skipped.
func FromTimeSlots(slots []TimeSlot) WeeklyAvailability {
	w := NewWeeklyAvailability()
	for _, s := range slots {
		if !s.IsAvailable {
			continue
		}
		w[s.DayOfWeek] = append(w[s.DayOfWeek], s.StartTime)
	}
	for d := range w {
		sort.Strings(w[d])
	}
	return w
}

// TimeSlots expands the weekly map into rows for the given lawyer. Each label
// becomes a one-hour window.
func (w WeeklyAvailability) TimeSlots(lawyerID string) []TimeSlot {
	var out []TimeSlot
	for d := Sunday; d <= Saturday; d++ {
		for _, label := range w[d] {
			out = append(out, TimeSlot{
				LawyerID:    lawyerID,
				DayOfWeek:   d,
				StartTime:   label,
				EndTime:     hourAfter(label),
				IsAvailable: true,
			})
		}
	}
	return out
}

func hourAfter(label string) string {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return label
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return label
	}
	return fmt.Sprintf("%02d:%s", (h+1)%24, parts[1])
}
