package attendance

// Policy carries the workday constants every derivation depends on. It is
// built from configuration at startup and passed explicitly so the rules stay
// testable and regionally adjustable.
type Policy struct {
	StandardWorkMinutes int // nominal workday length, 480 by default
	WorkStartMinute     int // nominal start as minutes since midnight
	LateGraceMinutes    int // check-in later than start+grace is late
}

// LateThresholdMinute returns the minute-of-day after which a check-in counts
// as late. A check-in exactly on the threshold is on time.
func (p Policy) LateThresholdMinute() int {
	return p.WorkStartMinute + p.LateGraceMinutes
}
