package ports

import "github.com/AntonioJCosta/ign/internal/core/domain/filetype"

// AliasProvider defines the interface for sourcing the filetype alias table.
type AliasProvider interface {
	// GetAliases loads the token -> filetype aliases.
	GetAliases() ([]filetype.Alias, error)
}
