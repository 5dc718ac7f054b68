package constant

// Priority is shared by reminders and applications.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities high first. Unknown values rank last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Category groups reminders by what they are for.
type Category string

const (
	CategoryApplication Category = "application"
	CategoryTest        Category = "test"
	CategoryDocument    Category = "document"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryApplication, CategoryTest, CategoryDocument, CategoryOther:
		return true
	}
	return false
}
