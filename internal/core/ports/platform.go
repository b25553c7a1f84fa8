package ports

import "io/fs"

/*
Platform abstracts the host services needed to locate the template collection.
This is a driven port, implemented by an OS adapter and faked in tests.
*/
type Platform interface {
	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)
	// LookupEnv retrieves an environment variable, reporting whether it is set.
	LookupEnv(key string) (string, bool)
	// Stat returns file info for path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
}
