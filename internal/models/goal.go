package models

type GoalStatusKind string

const (
	GoalBelowMinimum   GoalStatusKind = "below_minimum"
	GoalMinimumReached GoalStatusKind = "minimum_reached"
	GoalMaximumReached GoalStatusKind = "maximum_reached"
)

type GoalStatus struct {
	Kind GoalStatusKind `json:"kind"`
	// Remaining is the volume still needed to reach the minimum target.
	Remaining int `json:"remaining"`
}

// DailyGoal keeps Min < Max. Updates that would break the ordering are
// rejected, never clamped.
type DailyGoal struct {
	min int
	max int
}

func NewDailyGoal(minTarget, maxTarget int) (*DailyGoal, error) {
	if minTarget <= 0 || minTarget >= maxTarget {
		return nil, Reject("new goal", ReasonInvalidGoalOrdering, "min %d, max %d", minTarget, maxTarget)
	}
	return &DailyGoal{min: minTarget, max: maxTarget}, nil
}

func (g *DailyGoal) Min() int { return g.min }
func (g *DailyGoal) Max() int { return g.max }

func (g *DailyGoal) SetMin(v int) error {
	if v <= 0 || v >= g.max {
		return Reject("set min target", ReasonInvalidGoalOrdering, "%d must be below max %d", v, g.max)
	}
	g.min = v
	return nil
}

func (g *DailyGoal) SetMax(v int) error {
	if v <= g.min {
		return Reject("set max target", ReasonInvalidGoalOrdering, "%d must be above min %d", v, g.min)
	}
	g.max = v
	return nil
}

// Allows reports whether consumed+volume stays within the daily maximum.
func (g *DailyGoal) Allows(consumed, volume int) bool {
	return consumed+volume <= g.max
}

func (g *DailyGoal) Status(consumed int) GoalStatus {
	switch {
	case consumed >= g.max:
		return GoalStatus{Kind: GoalMaximumReached}
	case consumed >= g.min:
		return GoalStatus{Kind: GoalMinimumReached}
	default:
		return GoalStatus{Kind: GoalBelowMinimum, Remaining: g.min - consumed}
	}
}

// Progress is consumed as a rounded percentage of target. It is not capped at 100.
func Progress(consumed, target int) int {
	if target <= 0 {
		return 0
	}
	return roundHalfUp(float64(consumed) / float64(target) * 100)
}
