package usecase_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/epdisplay/release/pkg/domain/model"
	"github.com/epdisplay/release/pkg/infra/cargo"
	"github.com/epdisplay/release/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// mockGit implements interfaces.GitClient. Query behavior is configured via
// func fields; mutating operations are recorded in Mutations.
type mockGit struct {
	statusFunc    func() (string, error)
	branchFunc    func() (string, error)
	tagExistsFunc func(tag string) (bool, error)
	tagInfoFunc   func(tag string) (*model.TagInfo, error)
	prevTagFunc   func(ref string) (string, error)
	summariesFunc func(from, to string) ([]string, error)
	pushTagHook   func()

	Mutations []string
}

func (m *mockGit) CurrentBranch(ctx context.Context) (string, error) {
	if m.branchFunc != nil {
		return m.branchFunc()
	}
	return "main", nil
}

func (m *mockGit) Status(ctx context.Context) (string, error) {
	if m.statusFunc != nil {
		return m.statusFunc()
	}
	return "", nil
}

func (m *mockGit) TagExists(ctx context.Context, tag string) (bool, error) {
	if m.tagExistsFunc != nil {
		return m.tagExistsFunc(tag)
	}
	return false, nil
}

func (m *mockGit) TagInfo(ctx context.Context, tag string) (*model.TagInfo, error) {
	if m.tagInfoFunc != nil {
		return m.tagInfoFunc(tag)
	}
	return &model.TagInfo{Name: tag, Commit: "deadbeef", CreatedAt: "2026-01-01 00:00:00 +0000"}, nil
}

func (m *mockGit) PreviousTag(ctx context.Context, ref string) (string, error) {
	if m.prevTagFunc != nil {
		return m.prevTagFunc(ref)
	}
	return "", nil
}

func (m *mockGit) CommitSummaries(ctx context.Context, from, to string) ([]string, error) {
	if m.summariesFunc != nil {
		return m.summariesFunc(from, to)
	}
	return nil, nil
}

func (m *mockGit) RemoteURL(ctx context.Context, remote string) (string, error) {
	return "https://github.com/epdisplay/epaper-display.git", nil
}

func (m *mockGit) Add(ctx context.Context, paths ...string) error {
	m.Mutations = append(m.Mutations, "add "+fmt.Sprint(paths))
	return nil
}

func (m *mockGit) Commit(ctx context.Context, message string) error {
	m.Mutations = append(m.Mutations, "commit "+message)
	return nil
}

func (m *mockGit) CreateTag(ctx context.Context, tag, message string) error {
	m.Mutations = append(m.Mutations, "tag "+tag)
	return nil
}

func (m *mockGit) PushBranch(ctx context.Context, remote, branch string) error {
	m.Mutations = append(m.Mutations, "push-branch "+remote+" "+branch)
	return nil
}

func (m *mockGit) PushTag(ctx context.Context, remote, tag string) error {
	m.Mutations = append(m.Mutations, "push-tag "+remote+" "+tag)
	if m.pushTagHook != nil {
		m.pushTagHook()
	}
	return nil
}

type mockBuilder struct {
	buildFunc func(target string) error
	Targets   []string
}

func (m *mockBuilder) Build(ctx context.Context, target string) error {
	m.Targets = append(m.Targets, target)
	if m.buildFunc != nil {
		return m.buildFunc(target)
	}
	return nil
}

type mockHosting struct {
	createFunc func(draft *model.ReleaseDraft) error
	Drafts     []*model.ReleaseDraft
}

func (m *mockHosting) CreateRelease(ctx context.Context, draft *model.ReleaseDraft) error {
	m.Drafts = append(m.Drafts, draft)
	if m.createFunc != nil {
		return m.createFunc(draft)
	}
	return nil
}

type mockPrompter struct {
	answer  bool
	Prompts []string
}

func (m *mockPrompter) Confirm(prompt string) (bool, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.answer, nil
}

// testEnv is a throwaway project directory with a manifest and the default
// test asset set, plus mocks wired into a Release use case.
type testEnv struct {
	dir      string
	project  *model.Project
	git      *mockGit
	builder  *mockBuilder
	hosting  *mockHosting
	prompter *mockPrompter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	manifest := filepath.Join(dir, "Cargo.toml")
	writeFile(t, manifest, "[package]\nname = \"epaper-display\"\nversion = \"1.0.0\"\n")
	writeFile(t, filepath.Join(dir, "Cargo.lock"), "# lock\n")

	assets := []string{
		filepath.Join(dir, "epaper-display"),
		filepath.Join(dir, "install.sh"),
	}
	for _, a := range assets {
		writeFile(t, a, "content of "+filepath.Base(a))
	}

	project := &model.Project{
		Manifest:   manifest,
		Lockfile:   filepath.Join(dir, "Cargo.lock"),
		ReleaseDir: filepath.Join(dir, "release"),
		Assets:     assets,
	}
	project.Normalize()

	return &testEnv{
		dir:      dir,
		project:  project,
		git:      &mockGit{},
		builder:  &mockBuilder{},
		hosting:  &mockHosting{},
		prompter: &mockPrompter{},
	}
}

func (e *testEnv) usecase(options ...usecase.Option) *usecase.Release {
	opts := append([]usecase.Option{
		usecase.WithLookPath(func(name string) (string, error) {
			return "/usr/bin/" + name, nil
		}),
	}, options...)

	return usecase.NewRelease(
		e.project,
		e.git,
		cargo.NewManifest(e.project.Manifest),
		e.builder,
		e.hosting,
		e.prompter,
		opts...,
	)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
