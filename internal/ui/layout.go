package ui

// Search grid sizing.
const (
	// CardMinWidth is the narrowest a result card may render.
	CardMinWidth = 30

	// GridMaxColumns caps the number of cards per row.
	GridMaxColumns = 4

	// CardHeight is the rendered height of a card including its border.
	CardHeight = 5
)

// DetailWrapWidth caps the description column on wide terminals.
const DetailWrapWidth = 100

// gridColumns returns how many cards fit side by side in width.
func gridColumns(width int) int {
	cols := width / CardMinWidth
	if cols < 1 {
		return 1
	}
	if cols > GridMaxColumns {
		return GridMaxColumns
	}
	return cols
}
