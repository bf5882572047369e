package domain

// Slot is one fixed hourly window of the daily grid. Key is the programmatic
// name, Column the database column, Window the 24-hour label users may type,
// Display the 12-hour label shown in menus.
type Slot struct {
	Key       string
	Column    string
	Window    string
	Display   string
	StartHour int
}

// Slots returns the 16 windows of the tracking day, 08:00 through midnight.
func Slots() []Slot {
	return slots
}

var slots = []Slot{
	{Key: "S08_09", Column: "s08_09_min", Window: "08:00 - 09:00", Display: "08:00 AM - 09:00 AM", StartHour: 8},
	{Key: "S09_10", Column: "s09_10_min", Window: "09:00 - 10:00", Display: "09:00 AM - 10:00 AM", StartHour: 9},
	{Key: "S10_11", Column: "s10_11_min", Window: "10:00 - 11:00", Display: "10:00 AM - 11:00 AM", StartHour: 10},
	{Key: "S11_12", Column: "s11_12_min", Window: "11:00 - 12:00", Display: "11:00 AM - 12:00 PM", StartHour: 11},
	{Key: "S12_13", Column: "s12_13_min", Window: "12:00 - 13:00", Display: "12:00 PM - 01:00 PM", StartHour: 12},
	{Key: "S13_14", Column: "s13_14_min", Window: "13:00 - 14:00", Display: "01:00 PM - 02:00 PM", StartHour: 13},
	{Key: "S14_15", Column: "s14_15_min", Window: "14:00 - 15:00", Display: "02:00 PM - 03:00 PM", StartHour: 14},
	{Key: "S15_16", Column: "s15_16_min", Window: "15:00 - 16:00", Display: "03:00 PM - 04:00 PM", StartHour: 15},
	{Key: "S16_17", Column: "s16_17_min", Window: "16:00 - 17:00", Display: "04:00 PM - 05:00 PM", StartHour: 16},
	{Key: "S17_18", Column: "s17_18_min", Window: "17:00 - 18:00", Display: "05:00 PM - 06:00 PM", StartHour: 17},
	{Key: "S18_19", Column: "s18_19_min", Window: "18:00 - 19:00", Display: "06:00 PM - 07:00 PM", StartHour: 18},
	{Key: "S19_20", Column: "s19_20_min", Window: "19:00 - 20:00", Display: "07:00 PM - 08:00 PM", StartHour: 19},
	{Key: "S20_21", Column: "s20_21_min", Window: "20:00 - 21:00", Display: "08:00 PM - 09:00 PM", StartHour: 20},
	{Key: "S21_22", Column: "s21_22_min", Window: "21:00 - 22:00", Display: "09:00 PM - 10:00 PM", StartHour: 21},
	{Key: "S22_23", Column: "s22_23_min", Window: "22:00 - 23:00", Display: "10:00 PM - 11:00 PM", StartHour: 22},
	{Key: "S23_00", Column: "s23_00_min", Window: "23:00 - 00:00", Display: "11:00 PM - 12:00 AM", StartHour: 23},
}

// FindSlot resolves any of a slot's identifiers (key, 24-hour window, or
// display label).
func FindSlot(identifier string) (Slot, bool) {
	for _, slot := range slots {
		if slot.Key == identifier || slot.Window == identifier || slot.Display == identifier {
			return slot, true
		}
	}
	return Slot{}, false
}

// Shift groups four consecutive slots for the interactive picker.
type Shift struct {
	Name      string
	StartHour int
	EndHour   int
}

func Shifts() []Shift {
	return []Shift{
		{Name: "8 AM - 12 PM", StartHour: 8, EndHour: 12},
		{Name: "12 PM - 4 PM", StartHour: 12, EndHour: 16},
		{Name: "4 PM - 8 PM", StartHour: 16, EndHour: 20},
		{Name: "8 PM - 12 AM", StartHour: 20, EndHour: 24},
	}
}

// SlotsInShift returns the slots whose start hour falls inside the shift.
func SlotsInShift(shift Shift) []Slot {
	var group []Slot
	for _, slot := range slots {
		if slot.StartHour >= shift.StartHour && slot.StartHour < shift.EndHour {
			group = append(group, slot)
		}
	}
	return group
}
