package model

// ViewMode selects how the task board is rendered.
type ViewMode string

const (
	ViewList     ViewMode = "list"
	ViewKanban   ViewMode = "kanban"
	ViewCalendar ViewMode = "calendar"
	ViewGantt    ViewMode = "gantt"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewList, ViewKanban, ViewCalendar, ViewGantt:
		return true
	}
	return false
}
