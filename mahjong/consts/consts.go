package consts

const (
	// Copies of each kind in the wall.
	Copies = 4
	// WallSize is the number of tiles in a freshly generated wall.
	WallSize = 34 * Copies
	// HandSize is the hand while waiting for a draw.
	HandSize = 13
	// MaxHandSize is the hand after a draw.
	MaxHandSize = HandSize + 1
	// MaxIndicators is the most dora indicators ever shown.
	MaxIndicators = 5
	// DiscardRowSize is the number of discards shown per row.
	DiscardRowSize = 6
	// HiddenIndicators are the face-down slots shown before the indicators.
	HiddenIndicators = 2
)
