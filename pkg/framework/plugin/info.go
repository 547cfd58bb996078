package plugin

import "fmt"

// Info contains processor metadata
type Info struct {
	ID       string // Unique identifier (e.g., "com.example.delay")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Category (e.g., "Fx|Delay")
}

// String returns "Name (ID)".
func (i Info) String() string {
	if i.ID == "" {
		return i.Name
	}
	return fmt.Sprintf("%s (%s)", i.Name, i.ID)
}

// label is the name used in errors and logs.
func (i Info) label() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}
