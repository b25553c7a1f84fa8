package templaterepo

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// RepoDirEnv overrides the template collection root when set, even to "".
const RepoDirEnv = "GITIGNORE_REPO_DIR"

// defaultRepoDirFromHome is where the collection is cloned by default, relative to $HOME.
var defaultRepoDirFromHome = filepath.Join(".local", "share", "gitignore")

// RepoLocator resolves the template collection root from the environment or the home directory.
type RepoLocator struct {
	platform ports.Platform
}

// NewRepoLocator creates a new RepoLocator.
// It panics if platform is nil.
func NewRepoLocator(platform ports.Platform) ports.RepoLocator {
	if platform == nil {
		panic("platform cannot be nil")
	}
	return &RepoLocator{platform: platform}
}

// DefaultRepoDir returns <home>/.local/share/gitignore, or "" when the home directory is unknown.
func DefaultRepoDir(platform ports.Platform) string {
	home, err := platform.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, defaultRepoDirFromHome)
}

// Candidate returns the path that Locate will check, without checking it.
func (l *RepoLocator) Candidate() string {
	if dir, ok := l.platform.LookupEnv(RepoDirEnv); ok {
		return dir
	}
	return DefaultRepoDir(l.platform)
}

// Locate implements the ports.RepoLocator interface.
// The candidate must exist and be a directory.
func (l *RepoLocator) Locate() (string, error) {
	dir := l.Candidate()
	slog.Debug("gitignore repository candidate", "dir", dir)

	if dir == "" {
		return "", fmt.Errorf("%w: repository path is empty (check %s and the home directory)", template.ErrRepoNotFound, RepoDirEnv)
	}
	info, err := l.platform.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", template.ErrRepoNotFound, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", template.ErrRepoNotFound, dir)
	}
	return dir, nil
}
