package remote

import "strings"

// Step is one remote command with a short operator-facing name.
type Step struct {
	Name    string
	Command string
}

// Plan is an immutable ordered sequence of remote commands. Steps are joined
// with a sequential-AND so the first failing step aborts the rest.
type Plan struct {
	steps []Step
}

// NewPlan builds a Plan from steps, copying them so callers can't mutate it.
func NewPlan(steps ...Step) Plan {
	copied := make([]Step, len(steps))
	copy(copied, steps)
	return Plan{steps: copied}
}

// Steps returns a copy of the plan's steps in order.
func (p Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps.
func (p Plan) Len() int {
	return len(p.steps)
}

// Join returns the single command line for the whole plan.
func (p Plan) Join() string {
	commands := make([]string, len(p.steps))
	for i, s := range p.steps {
		commands[i] = s.Command
	}
	return strings.Join(commands, " && ")
}

// ProductionLoggingPlan is the fixed setup sequence for live analytics
// logging on the production host: check, enable, exclude the bot owner's
// own user ID from analytics, check again, confirm.
func ProductionLoggingPlan() Plan {
	return NewPlan(
		Step{Name: "status-before", Command: "node scripts/prod/live-logging.js status"},
		Step{Name: "enable", Command: "node scripts/prod/live-logging.js on"},
		Step{Name: "exclude-owner", Command: "node scripts/prod/live-logging.js exclude 391415444084490240"},
		Step{Name: "status-after", Command: "node scripts/prod/live-logging.js status"},
		Step{Name: "confirm", Command: "echo 'Live analytics logging configured'"},
	)
}
