package cmd

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uvforge/cli/internal/automation"
)

// toolRunner answers the doctor's external tool checks from canned results.
type toolRunner struct {
	calls   []string
	lookups []string
	results map[string]automation.CmdResult
	missing map[string]bool
}

func (r *toolRunner) Run(_ context.Context, name string, args []string, _ automation.RunOpts) (automation.CmdResult, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, line)
	if res, ok := r.results[line]; ok {
		return res, nil
	}
	return automation.CmdResult{}, nil
}

func (r *toolRunner) LookPath(name string) (string, error) {
	r.lookups = append(r.lookups, name)
	if r.missing[name] {
		return "", exec.ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

func withDoctorRunner(t *testing.T, stub *toolRunner) {
	t.Helper()
	orig := doctorRunner
	doctorRunner = stub
	t.Cleanup(func() { doctorRunner = orig })
}

func TestDoctorReportsGitIdentity(t *testing.T) {
	stub := &toolRunner{results: map[string]automation.CmdResult{
		"git config --get user.name":  {Stdout: "Ada Lovelace\n"},
		"git config --get user.email": {Stdout: "ada@example.com\n"},
		"gh auth status":              {},
	}}
	withDoctorRunner(t, stub)

	// uv availability depends on the host; only the git/gh checks matter here.
	_ = execute(t, "doctor")

	assert.Contains(t, stub.calls, "git config --get user.name")
	assert.Contains(t, stub.calls, "git config --get user.email")
	assert.Contains(t, stub.calls, "gh auth status")
}

func TestDoctorSkipsToolChecksWhenMissing(t *testing.T) {
	stub := &toolRunner{missing: map[string]bool{"git": true, "gh": true}}
	withDoctorRunner(t, stub)

	_ = execute(t, "doctor")

	// Nothing was run against absent tools, and each tool was resolved once.
	assert.Empty(t, stub.calls)
	assert.Equal(t, []string{"git", "gh"}, stub.lookups)
}
