package doctor

import "time"

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check.
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run() *CheckResult
}

// Runner executes diagnostic checks and aggregates their results.
type Runner struct {
	checks []Check
}

// NewRunner creates a runner for checks, run in the given order.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all registered checks and returns a report.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		report.add(check.Run())
	}

	return report
}

// Fix runs every check that implements Fixer and has fixable issues.
// Run must have been called first.
func (r *Runner) Fix() []FixResult {
	var results []FixResult
	for _, check := range r.checks {
		if f, ok := check.(Fixer); ok && f.CanFix() {
			results = append(results, f.Fix()...)
		}
	}
	return results
}

// Report aggregates all check results with timing and summary.
type Report struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary"`
}

func (r *Report) add(result *CheckResult) {
	r.Results = append(r.Results, result)

	switch result.Status {
	case SeverityPass:
		r.Summary.Passed++
	case SeverityInfo:
		r.Summary.Info++
	case SeverityWarning:
		r.Summary.Warnings++
	case SeverityError:
		r.Summary.Errors++
	}
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
