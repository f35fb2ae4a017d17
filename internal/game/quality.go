package game

// Quality is the accuracy tier of a single judgment. The numeric order is
// relied upon: None < Miss < Okay < Good < Perfect.
type Quality int8

const (
	None    Quality = -1
	Miss    Quality = 0
	Okay    Quality = 1
	Good    Quality = 2
	Perfect Quality = 3
)

// Qualities lists every judged tier, worst first.
var Qualities = [...]Quality{Miss, Okay, Good, Perfect}

func (q Quality) String() string {
	switch q {
	case None:
		return "NONE"
	case Miss:
		return "MISS"
	case Okay:
		return "OKAY"
	case Good:
		return "GOOD"
	case Perfect:
		return "PERFECT"
	}
	return "UNKNOWN"
}

// Hit reports whether q counts as a successful judgment.
func (q Quality) Hit() bool {
	return q > Miss
}
