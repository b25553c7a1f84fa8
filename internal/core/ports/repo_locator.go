package ports

// RepoLocator finds the root directory of the local template collection.
type RepoLocator interface {
	// Locate returns the collection root, or an error wrapping template.ErrRepoNotFound.
	Locate() (string, error)
}
