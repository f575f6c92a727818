package goalboard

import "github.com/charmbracelet/bubbles/list"

// Filtering reports whether the embedded list is capturing input for its
// filter, so global shortcuts can stand down.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
