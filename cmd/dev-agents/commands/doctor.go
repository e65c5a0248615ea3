package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/devagents/internal/doctor"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/paths"
	"github.com/thoreinstein/devagents/internal/ui"
)

var (
	doctorGlobal bool
	doctorFix    bool
	doctorJSON   bool
)

func init() {
	doctorCmd.Flags().BoolVarP(&doctorGlobal, "global", "g", false, "Check the global directory instead of this project")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair file permissions")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check an installation for problems",
	Long: `Check the installed commands, settings.json, script permissions and the
credentials file. Exits with status 1 when a check reports an error.

--fix makes scripts executable and the credentials file private.`,
	Example: `  dev-agents doctor
  dev-agents doctor --global
  dev-agents doctor --fix

  See Also: dev-agents init, dev-agents mcp`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// doctorOutput is the JSON form of a doctor run.
type doctorOutput struct {
	*doctor.Report
	Fixes []doctor.FixResult `json:"fixes,omitempty"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	target, err := resolveTarget(doctorGlobal)
	if err != nil {
		return err
	}

	credPath := currentConfig().CredentialsFile
	if credPath == "" {
		if credPath, err = paths.DefaultCredentialsPath(); err != nil {
			return errors.NewInstallError(err, "")
		}
	}

	runner := doctor.NewRunner(
		doctor.NewCommandsCheck(target),
		doctor.NewSettingsCheck(target),
		doctor.NewScriptsCheck(target),
		doctor.NewCredentialsCheck(credPath),
	)
	report := runner.Run()

	var fixes []doctor.FixResult
	if doctorFix {
		fixes = runner.Fix()
		if len(fixes) > 0 {
			// Re-run so the report reflects the repaired state.
			report = runner.Run()
		}
	}

	if doctorJSON {
		if err := writeDoctorJSON(cmd.OutOrStdout(), doctorOutput{Report: report, Fixes: fixes}); err != nil {
			return err
		}
	} else {
		writeDoctorText(ui.New(cmd.OutOrStdout()), report, fixes)
	}

	if report.HasErrors() {
		return errors.NewExitError(errors.Newf("%d check(s) failed", report.Summary.Errors), errors.ExitFailure)
	}
	return nil
}

func writeDoctorJSON(w io.Writer, out doctorOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding JSON report")
}

func writeDoctorText(out *ui.Printer, report *doctor.Report, fixes []doctor.FixResult) {
	for _, fix := range fixes {
		if fix.Fixed {
			out.Succeed(fmt.Sprintf("Fixed %s: %s", fix.Path, fix.Description))
		} else {
			out.Fail(fmt.Sprintf("Could not fix %s: %s", fix.Path, fix.Description))
		}
	}
	if len(fixes) > 0 {
		out.Println()
	}

	for _, r := range report.Results {
		line := fmt.Sprintf("%s: %s", r.Name, r.Message)
		switch r.Status {
		case doctor.SeverityPass:
			out.Succeed(line)
		case doctor.SeverityInfo:
			out.Start(line)
		case doctor.SeverityWarning:
			out.Warn(line)
		case doctor.SeverityError:
			out.Fail(line)
		}
		if r.FixHint != "" && r.Status != doctor.SeverityPass {
			out.Dim("    " + r.FixHint)
		}
	}

	out.Println()
	s := report.Summary
	out.Printf("%d passed, %d info, %d warning(s), %d error(s)\n", s.Passed, s.Info, s.Warnings, s.Errors)
}
