package drafting

// DimStyle collects the metrics shared by dimension entities: where the
// extension lines start and end relative to the reference points and the
// baseline, how stacked dimension levels are spaced and how the quote text
// is placed and formatted. All lengths are in global (paper) space.
type DimStyle struct {
	// FromOffset is the gap between a reference point and the start of its
	// extension line.
	FromOffset float64

	// ToOffset is how far an extension line runs past the baseline.
	ToOffset float64

	// Beyond is how far the baseline extends past the extension lines on
	// dimensions with outside markers. Zero means 3 times MarkerSize.
	Beyond float64

	// BaselineSpacing is the distance between stacked baselines, combined
	// with the dimension level.
	BaselineSpacing float64

	// QuoteShift displaces the quote text from its anchor on the baseline,
	// in the rotated frame of the quote.
	QuoteShift Point

	// NumberFormat is the Sprintf verb formatting the measured value.
	NumberFormat string

	// MarkerSize scales the unit marker outlines onto the baseline.
	MarkerSize float64
}

// DefaultDimStyle returns a style with the stock metrics.
func DefaultDimStyle() *DimStyle {
	return &DimStyle{
		FromOffset:      6.0,
		ToOffset:        6.0,
		Beyond:          0.0,
		BaselineSpacing: 30.0,
		QuoteShift:      Point{0.0, -4.0},
		NumberFormat:    "%-.7g",
		MarkerSize:      10.0,
	}
}

// beyond returns the baseline overrun length, falling back to 3 times the
// marker size when not set explicitly.
func (s *DimStyle) beyond() float64 {
	if 0.0 < s.Beyond {
		return s.Beyond
	}
	return 3.0 * s.MarkerSize
}
