package aliastable

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/ign/internal/core/domain/filetype"
	"github.com/AntonioJCosta/ign/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed default_aliases.yaml
var embeddedAliases []byte

// YAMLProvider implements the AliasProvider interface by decoding the
// alias table embedded in the binary.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider.
func NewYAMLProvider() ports.AliasProvider {
	return &YAMLProvider{}
}

// GetAliases decodes the embedded alias table.
// Empty content yields an empty list and no error.
func (p *YAMLProvider) GetAliases() ([]filetype.Alias, error) {
	aliases := []filetype.Alias{}
	if len(embeddedAliases) == 0 {
		return aliases, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(embeddedAliases))
	decoder.KnownFields(true)

	if err := decoder.Decode(&aliases); err != nil {
		// A document with only comments decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return []filetype.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal embedded filetype aliases: %w", err)
	}

	for i, a := range aliases {
		if a.Token == "" || a.Filetype == "" {
			return nil, fmt.Errorf("embedded filetype alias #%d is incomplete (token %q, filetype %q)", i+1, a.Token, a.Filetype)
		}
	}
	return aliases, nil
}

// LoadTable decodes the aliases from provider into an immutable table.
func LoadTable(provider ports.AliasProvider) (filetype.AliasTable, error) {
	aliases, err := provider.GetAliases()
	if err != nil {
		return filetype.AliasTable{}, err
	}
	return filetype.NewAliasTable(aliases), nil
}
