package domain

// Occupancy limits accepted at the API boundary
const (
	MinAdultsPerRoom   = 1
	MaxGuestsPerRoom   = 20
	MaxRoomsPerBooking = 20
	MaxStayNights      = 365
	MaxGridDays        = 92
	MaxNotesLength     = 500
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Validation messages returned to the guest as-is
const (
	MsgMinStayTemplate   = "Minimum %d nights required"
	MsgCheckInDayBlocked = "Check-in not allowed on this day"
	MsgInvalidDateRange  = "Check-out date must be after check-in date"
	MsgRoomAlreadyBooked = "Room is already booked for the selected dates"
	MsgOccupancyExceeded = "Room cannot host the requested number of guests"
)
