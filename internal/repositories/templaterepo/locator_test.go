package templaterepo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/ign/internal/adapters/platform"
	"github.com/AntonioJCosta/ign/internal/core/domain/template"
	"github.com/AntonioJCosta/ign/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepoLocator_PanicsOnNilPlatform(t *testing.T) {
	assert.PanicsWithValue(t, "platform cannot be nil", func() {
		_ = NewRepoLocator(nil)
	})
}

func TestDefaultRepoDir(t *testing.T) {
	t.Run("home known", func(t *testing.T) {
		p := &testutil.MockPlatform{Home: "/home/alice"}
		assert.Equal(t, filepath.Join("/home/alice", ".local", "share", "gitignore"), DefaultRepoDir(p))
	})

	t.Run("home unknown", func(t *testing.T) {
		p := &testutil.MockPlatform{HomeErr: errors.New("no home")}
		assert.Equal(t, "", DefaultRepoDir(p))
	})
}

func TestRepoLocator_Locate(t *testing.T) {
	home := "/home/alice"
	defaultDir := filepath.Join(home, ".local", "share", "gitignore")

	tests := []struct {
		name      string
		platform  *testutil.MockPlatform
		wantDir   string
		wantErr   bool
		errSubstr string
	}{
		{
			name: "default directory exists",
			platform: &testutil.MockPlatform{
				Home: home,
				Dirs: map[string]bool{defaultDir: true},
			},
			wantDir: defaultDir,
		},
		{
			name: "override takes precedence over existing default",
			platform: &testutil.MockPlatform{
				Home: home,
				Env:  map[string]string{RepoDirEnv: "/srv/gitignore"},
				Dirs: map[string]bool{defaultDir: true, "/srv/gitignore": true},
			},
			wantDir: "/srv/gitignore",
		},
		{
			name: "override to missing path is not found even when default exists",
			platform: &testutil.MockPlatform{
				Home: home,
				Env:  map[string]string{RepoDirEnv: "/does/not/exist"},
				Dirs: map[string]bool{defaultDir: true},
			},
			wantErr:   true,
			errSubstr: "/does/not/exist",
		},
		{
			name: "empty override is used verbatim",
			platform: &testutil.MockPlatform{
				Home: home,
				Env:  map[string]string{RepoDirEnv: ""},
				Dirs: map[string]bool{defaultDir: true},
			},
			wantErr:   true,
			errSubstr: RepoDirEnv,
		},
		{
			name: "default missing",
			platform: &testutil.MockPlatform{
				Home: home,
			},
			wantErr:   true,
			errSubstr: defaultDir,
		},
		{
			name: "home unknown and no override",
			platform: &testutil.MockPlatform{
				HomeErr: errors.New("$HOME is not defined"),
			},
			wantErr:   true,
			errSubstr: "path is empty",
		},
		{
			name: "path exists but is a file",
			platform: &testutil.MockPlatform{
				Env:  map[string]string{RepoDirEnv: "/srv/gitignore"},
				Dirs: map[string]bool{"/srv/gitignore": false},
			},
			wantErr:   true,
			errSubstr: "is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := NewRepoLocator(tt.platform).Locate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, template.ErrRepoNotFound)
				assert.Contains(t, err.Error(), tt.errSubstr)
				assert.Empty(t, dir)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestRepoLocator_LocateOnDisk(t *testing.T) {
	home := t.TempDir()
	defaultDir := filepath.Join(home, ".local", "share", "gitignore")
	require.NoError(t, os.MkdirAll(defaultDir, 0755))

	p := &testutil.MockPlatform{
		Home:            home,
		StatFunc:        platform.NewOSPlatform().Stat,
		LookupEnvFunc:   os.LookupEnv,
		UserHomeDirFunc: func() (string, error) { return home, nil },
	}
	locator := NewRepoLocator(p)

	t.Run("falls back to default when override unset", func(t *testing.T) {
		// t.Setenv registers the restore; Unsetenv then removes it for this subtest.
		t.Setenv(RepoDirEnv, "")
		require.NoError(t, os.Unsetenv(RepoDirEnv))

		dir, err := locator.Locate()
		require.NoError(t, err)
		assert.Equal(t, defaultDir, dir)
	})

	t.Run("override to missing path", func(t *testing.T) {
		t.Setenv(RepoDirEnv, filepath.Join(home, "nope"))

		_, err := locator.Locate()
		assert.ErrorIs(t, err, template.ErrRepoNotFound)
	})
}
