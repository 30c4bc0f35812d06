package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/uvforge/cli/internal/errors"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphenated", "My-App", "my_app"},
		{"already clean", "myapp", "myapp"},
		{"dots and spaces", "my.cool app", "my_cool_app"},
		{"digits kept", "app2go", "app2go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.in))
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	assert.NoError(t, ValidateProjectName("my-app"))
	assert.NoError(t, ValidateProjectName("MyApp2"))

	for _, bad := range []string{"my_app", "1app", "a", "my app", ""} {
		err := ValidateProjectName(bad)
		assert.Error(t, err, bad)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	}
}

func TestValidateProjectSlug(t *testing.T) {
	assert.NoError(t, ValidateProjectSlug("my_app"))
	assert.NoError(t, ValidateProjectSlug("_private"))

	for _, bad := range []string{"my-app", "2app", "x", ""} {
		assert.Error(t, ValidateProjectSlug(bad), bad)
	}
}

func TestResolveDefaults(t *testing.T) {
	ctx, err := Resolve(Answers{OptProjectName: "my-app"})
	require.NoError(t, err)

	assert.Equal(t, "my-app", ctx.ProjectName)
	assert.Equal(t, "my_app", ctx.ProjectSlug)
	assert.Equal(t, LicenseMIT, ctx.License)
	assert.Equal(t, LayoutSrc, ctx.Layout)
	assert.Equal(t, "3.13", ctx.PythonVersion)
	assert.Equal(t, ProtocolSSH, ctx.GitProtocol)
	assert.True(t, ctx.IncludeGithubActions)
	assert.True(t, ctx.MkDocs)
	assert.False(t, ctx.Devcontainer)
	assert.False(t, ctx.PublishToPyPI)
}

func TestResolveExplicitSlugWins(t *testing.T) {
	ctx, err := Resolve(Answers{
		OptProjectName: "my-app",
		OptProjectSlug: "custom_name",
	})
	require.NoError(t, err)

	assert.Equal(t, "custom_name", ctx.ProjectSlug)
}

func TestResolveRejectsUnknownOption(t *testing.T) {
	_, err := Resolve(Answers{
		OptProjectName: "my-app",
		"no_such_knob": "y",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "no_such_knob")
}

func TestResolveRejectsBadChoice(t *testing.T) {
	_, err := Resolve(Answers{
		OptProjectName: "my-app",
		OptLayout:      "nested",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flat, src")
}

func TestResolveRejectsBadBool(t *testing.T) {
	_, err := Resolve(Answers{
		OptProjectName: "my-app",
		OptMkDocs:      "maybe",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestResolveBoolVariants(t *testing.T) {
	for _, yes := range []string{"y", "yes", "true", "1", "Y"} {
		ctx, err := Resolve(Answers{OptProjectName: "my-app", OptDevcontainer: yes})
		require.NoError(t, err, yes)
		assert.True(t, ctx.Devcontainer, yes)
	}
	for _, no := range []string{"n", "no", "false", "0", "N"} {
		ctx, err := Resolve(Answers{OptProjectName: "my-app", OptGithubActions: no})
		require.NoError(t, err, no)
		assert.False(t, ctx.IncludeGithubActions, no)
	}
}

func TestResolveRequiresProjectName(t *testing.T) {
	_, err := Resolve(Answers{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name is required")
}

func TestAnswersMerge(t *testing.T) {
	a := Answers{OptAuthor: "Config Author", OptLicense: LicenseMIT}
	a.Merge(Answers{OptAuthor: "Flag Author", OptEmail: "a@b.c", OptLayout: ""})

	assert.Equal(t, "Flag Author", a[OptAuthor])
	assert.Equal(t, "a@b.c", a[OptEmail])
	assert.Equal(t, LicenseMIT, a[OptLicense])
	_, ok := a[OptLayout]
	assert.False(t, ok)
}

func TestRepoURL(t *testing.T) {
	ctx := &Context{ProjectName: "my-app", GithubHandle: "ada", GitProtocol: ProtocolSSH}
	assert.Equal(t, "git@github.com:ada/my-app.git", ctx.RepoURL())

	ctx.GitProtocol = ProtocolHTTPS
	assert.Equal(t, "https://github.com/ada/my-app.git", ctx.RepoURL())
}

func TestLookup(t *testing.T) {
	opt, ok := Lookup(OptLicense)
	require.True(t, ok)
	assert.Equal(t, KindChoice, opt.Kind)
	assert.Contains(t, opt.Choices, LicenseApache)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
