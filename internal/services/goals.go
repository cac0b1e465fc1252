package services

import (
	"iter"

	"github.com/shopspring/decimal"

	"finman/internal/core"
)

// GoalProgress is the read-only view of a goal returned by ListGoals.
type GoalProgress struct {
	Name            string
	ProgressPercent decimal.Decimal
	CurrentAmount   decimal.Decimal
	TargetAmount    decimal.Decimal
	TargetDate      core.Date
}

// GoalTracker owns the savings goals of one session. Not safe for concurrent use.
type GoalTracker struct {
	goals []core.Goal
}

func NewGoalTracker() *GoalTracker {
	return &GoalTracker{}
}

// AddGoal registers a goal with no progress. Income recorded before the goal
// existed is not credited to it.
func (g *GoalTracker) AddGoal(name string, target decimal.Decimal, targetDate core.Date) (core.Goal, error) {
	goal, err := core.NewGoal(name, target, targetDate)
	if err != nil {
		return core.Goal{}, err
	}
	g.goals = append(g.goals, goal)
	return goal, nil
}

// OnIncomeEvent credits amount to every goal currently tracked.
func (g *GoalTracker) OnIncomeEvent(amount decimal.Decimal) {
	for i := range g.goals {
		g.goals[i].CurrentAmount = g.goals[i].CurrentAmount.Add(amount)
	}
}

// ListGoals yields the goals in creation order. Each call starts a fresh
// iteration over the goals present at that moment.
func (g *GoalTracker) ListGoals() iter.Seq[GoalProgress] {
	snapshot := append([]core.Goal(nil), g.goals...)
	return func(yield func(GoalProgress) bool) {
		for _, goal := range snapshot {
			p := GoalProgress{
				Name:            goal.Name,
				ProgressPercent: goal.Progress(),
				CurrentAmount:   goal.CurrentAmount,
				TargetAmount:    goal.TargetAmount,
				TargetDate:      goal.TargetDate,
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of tracked goals.
func (g *GoalTracker) Len() int {
	return len(g.goals)
}
