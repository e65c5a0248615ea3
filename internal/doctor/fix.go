package doctor

import (
	"fmt"
	"os"

	"github.com/thoreinstein/devagents/internal/errors"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run().
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file that was targeted for fixing.
	Path string `json:"path"`

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool `json:"fixed"`

	// Description explains what was fixed or why it couldn't be fixed.
	Description string `json:"description"`

	// Error contains the error if the fix failed.
	Error error `json:"-"`
}

// modeIssue is a file whose permission bits should be want.
type modeIssue struct {
	Path string
	Have os.FileMode
	Want os.FileMode
}

// permissionFixer chmods files found by a check. It is embedded in checks
// that look at file modes.
type permissionFixer struct {
	issues []modeIssue
}

// CanFix returns true if there are any permission issues.
func (f *permissionFixer) CanFix() bool {
	return len(f.issues) > 0
}

// Fix applies the wanted mode to every recorded file.
func (f *permissionFixer) Fix() []FixResult {
	results := make([]FixResult, 0, len(f.issues))
	for _, issue := range f.issues {
		result := FixResult{Path: issue.Path}
		if err := os.Chmod(issue.Path, issue.Want); err != nil {
			result.Description = fmt.Sprintf("failed to chmod %04o: %v", issue.Want, err)
			result.Error = errors.Wrapf(err, "chmod %04o %s", issue.Want, issue.Path)
		} else {
			result.Fixed = true
			result.Description = fmt.Sprintf("chmod %04o (was %04o)", issue.Want, issue.Have)
		}
		results = append(results, result)
	}
	return results
}

func (f *permissionFixer) setIssues(issues []modeIssue) {
	f.issues = issues
}
