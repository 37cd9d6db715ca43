// Package fixtures loads the tuple-space scenario corpus under
// testdata/scenarios and offers a way to snapshot it into a local git
// history, so the corpus can be diffed and rolled back offline the way
// a collaborator would any other versioned test data.
//
// Scenarios live in billy.Filesystem-addressed directories, each built
// from a small set of conventionally named files, loaded and sorted by
// name.
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/chroot"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const fixturesAuthorName = "fixtures"
const fixturesAuthorEmail = "fixtures@localhost"

// Scenario is one fixture: a human-readable description, an ordered
// list of operations to issue against a Space, and the expected
// outcome of the final operation.
type Scenario struct {
	Name        string
	Description string
	Ops         []string
	Expect      string
	IsError     bool
}

func readFile(fs billy.Filesystem, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func exists(fs billy.Filesystem, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func loadScenario(dir billy.Filesystem, name string) (Scenario, error) {
	description, err := readFile(dir, "===")
	if err != nil && !os.IsNotExist(err) {
		return Scenario{}, fmt.Errorf("loading description: %w", err)
	}
	opsRaw, err := readFile(dir, "ops")
	if err != nil && !os.IsNotExist(err) {
		return Scenario{}, fmt.Errorf("loading ops: %w", err)
	}
	expect, err := readFile(dir, "expect")
	if err != nil && !os.IsNotExist(err) {
		return Scenario{}, fmt.Errorf("loading expect: %w", err)
	}
	return Scenario{
		Name:        name,
		Description: strings.TrimSpace(description),
		Ops:         splitNonEmptyLines(opsRaw),
		Expect:      strings.TrimSpace(expect),
		IsError:     exists(dir, "error"),
	}, nil
}

func splitNonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// LoadScenario reads a single scenario directory from the local
// filesystem.
func LoadScenario(path string) (Scenario, error) {
	if _, err := os.Stat(path); err != nil {
		return Scenario{}, err
	}
	return loadScenario(osfs.New(path), filepath.Base(path))
}

func loadScenarios(dir billy.Filesystem) ([]Scenario, error) {
	entries, err := dir.ReadDir("/")
	if err != nil {
		return nil, err
	}
	var scenarios []Scenario
	for _, info := range entries {
		if !info.IsDir() {
			continue
		}
		scenario, err := loadScenario(chroot.New(dir, info.Name()), info.Name())
		if err != nil {
			return nil, fmt.Errorf("loading scenario %v: %w", info.Name(), err)
		}
		scenarios = append(scenarios, scenario)
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios, nil
}

// LoadScenarios reads every scenario directory under path, sorted by
// name: scenario directories are numbered, so this is also execution
// order.
func LoadScenarios(path string) ([]Scenario, error) {
	return loadScenarios(osfs.New(path))
}

// Snapshot commits the current contents of dir to a local git
// repository rooted at dir, creating the repository on first use. This
// gives the fixture corpus a local, offline history to diff and roll
// back against. It returns the new commit's hash.
func Snapshot(dir, message string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err == git.ErrRepositoryNotExists {
		repo, err = git.PlainInit(dir, false)
	}
	if err != nil {
		return "", fmt.Errorf("opening snapshot repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("loading worktree: %w", err)
	}
	if _, err := wt.Add("."); err != nil {
		return "", fmt.Errorf("staging scenarios: %w", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: fixturesAuthorName, Email: fixturesAuthorEmail, When: time.Now()},
	})
	if err != nil {
		return "", fmt.Errorf("committing snapshot: %w", err)
	}
	return hash.String(), nil
}
