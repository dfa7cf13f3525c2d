package contacts

import "time"

// Contact is a vCard entry carrying a complete birth date, ready to seed the milestone page.
type Contact struct {
	// UID is a unique identifier (hash) used for stability in lists.
	UID string
	// Name is the display name (Formatted Name or Structured Name).
	Name string
	// BirthDate is the parsed civil date (UTC midnight).
	BirthDate time.Time
}
