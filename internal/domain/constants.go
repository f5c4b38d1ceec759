package domain

// Format constants for calendar dates and slot times
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Default values for newly created catalog entries
const (
	DefaultServiceIcon = "FaHandSparkles"
)

// DefaultAdminPassword is the bootstrap password for a lazily created
// instance. It is expected to be rotated by the owner right after setup.
const DefaultAdminPassword = "password"
