package automation

import (
	"context"
	"fmt"

	oerrors "github.com/uvforge/cli/internal/errors"
	"github.com/uvforge/cli/internal/output"
	"github.com/uvforge/cli/internal/prompt"
)

// Mode selects how the automation plan is executed.
type Mode int

const (
	// ModeDisabled runs nothing.
	ModeDisabled Mode = iota

	// ModeDryRun prints every step without executing any command.
	ModeDryRun

	// ModeLive executes the plan, halting on the first failure.
	ModeLive
)

// Options configures an automation run.
type Options struct {
	// Mode selects disabled, dry-run, or live execution.
	Mode Mode

	// Dir is the generated project directory; every command runs there.
	Dir string

	// Context is the resolved template context.
	Context *prompt.Context

	// Runner executes external commands. Defaults to the real runner.
	Runner CommandRunner
}

// StepResult records one step's outcome.
type StepResult struct {
	Step   Step
	Status string
}

// Run executes the automation plan for a generated project.
//
// Disabled mode returns immediately. Dry-run mode prints the plan and runs
// nothing, not even the preflight checks. Live mode validates the
// environment first, then executes the steps in order and stops at the
// first failing command.
func Run(ctx context.Context, opts Options) ([]StepResult, error) {
	if opts.Mode == ModeDisabled {
		return nil, nil
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewRealRunner()
	}

	steps := Plan(opts.Context, opts.Dir)

	if opts.Mode == ModeDryRun {
		results := make([]StepResult, 0, len(steps))
		for _, step := range steps {
			output.Println(output.FormatStepLine(step.Description, output.StatusDryRun))
			output.Debug("dry-run step", "command", step.Command())
			results = append(results, StepResult{Step: step, Status: output.StatusDryRun})
		}
		return results, nil
	}

	if err := Preflight(ctx, runner, opts.Context, opts.Dir); err != nil {
		return nil, err
	}

	var results []StepResult
	for _, step := range steps {
		var status string
		spinErr := output.RunWithSpinner(ctx, func() error {
			var stepErr error
			status, stepErr = runStep(ctx, runner, step, opts.Dir)
			return stepErr
		}, output.WithTitle(step.Description+"..."))

		results = append(results, StepResult{Step: step, Status: status})
		output.Println(output.FormatStepLine(step.Description, status))
		if spinErr != nil {
			return results, spinErr
		}
	}

	return results, nil
}

// runStep evaluates the step's condition and executes its command.
func runStep(ctx context.Context, r CommandRunner, step Step, dir string) (string, error) {
	if step.Condition != nil {
		keep, err := step.Condition(ctx, r, dir)
		if err != nil {
			return output.StatusFailed, stepError(step, err.Error())
		}
		if !keep {
			return output.StatusSkipped, nil
		}
	}

	output.Debug("running step", "command", step.Command())

	res, err := r.Run(ctx, step.Name, step.Args, RunOpts{Dir: dir})
	if err != nil {
		return output.StatusFailed, stepError(step, err.Error())
	}

	if res.ExitCode != 0 {
		if step.TolerateFailure != nil && step.TolerateFailure(res) {
			output.Debug("tolerated step failure", "command", step.Command(), "stderr", res.Stderr)
			return output.StatusDone, nil
		}
		detail := res.Stderr
		if detail == "" {
			detail = res.Stdout
		}
		return output.StatusFailed, stepError(step,
			fmt.Sprintf("exited with code %d: %s", res.ExitCode, detail))
	}

	return output.StatusDone, nil
}

func stepError(step Step, detail string) error {
	return &oerrors.DetailError{
		Type:    "automation step failed",
		Message: fmt.Sprintf("%s (%s): %s", step.Description, step.Command(), detail),
		Hint:    "Fix the reported problem and re-run the remaining commands by hand, or re-run with --dry-run to inspect the plan.",
		Cause:   oerrors.ErrAutomation,
	}
}
