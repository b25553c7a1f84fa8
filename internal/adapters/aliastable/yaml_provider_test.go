package aliastable

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/ign/internal/core/domain/filetype"
	"github.com/AntonioJCosta/ign/internal/core/testutil"
)

func TestNewYAMLProvider(t *testing.T) {
	provider := NewYAMLProvider()
	if provider == nil {
		t.Fatal("NewYAMLProvider() returned nil")
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
}

func TestYAMLProvider_DefaultTable(t *testing.T) {
	aliases, err := NewYAMLProvider().GetAliases()
	if err != nil {
		t.Fatalf("GetAliases() unexpected error: %v", err)
	}
	table := filetype.NewAliasTable(aliases)

	want := map[string]string{
		"hs":    "haskell",
		"pl":    "perl",
		"py":    "python",
		"rb":    "ruby",
		"rs":    "rust",
		"latex": "tex",
	}
	if n := len(table.Aliases()); n != len(want) {
		t.Errorf("default table has %d aliases, want %d", n, len(want))
	}
	for token, name := range want {
		if got := table.Resolve(token); got != name {
			t.Errorf("Resolve(%q) = %q, want %q", token, got, name)
		}
	}
}

func TestYAMLProvider_GetAliases(t *testing.T) {
	original := embeddedAliases

	tests := []struct {
		name                string
		content             []byte
		wantAliases         []filetype.Alias
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "nil content",
			content:     nil,
			wantAliases: []filetype.Alias{},
		},
		{
			name:        "empty list",
			content:     []byte(`[]`),
			wantAliases: []filetype.Alias{},
		},
		{
			name:        "comments only",
			content:     []byte("# nothing here\n"),
			wantAliases: []filetype.Alias{},
		},
		{
			name: "valid aliases",
			content: []byte(`
- token: js
  filetype: node
- token: cpp
  filetype: c++
`),
			wantAliases: []filetype.Alias{
				{Token: "js", Filetype: "node"},
				{Token: "cpp", Filetype: "c++"},
			},
		},
		{
			name: "unknown field",
			content: []byte(`
- token: js
  filetype: node
  description: "rejected with KnownFields"
`),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal embedded filetype aliases",
		},
		{
			name:                "not a list",
			content:             []byte(`token: js filetype: node`),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal embedded filetype aliases",
		},
		{
			name: "missing filetype",
			content: []byte(`
- token: js
`),
			wantErr:             true,
			wantErrorMsgSnippet: "is incomplete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embeddedAliases = tt.content
			t.Cleanup(func() {
				embeddedAliases = original
			})

			aliases, err := NewYAMLProvider().GetAliases()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetAliases() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetAliases() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if aliases != nil {
					t.Errorf("GetAliases() expected nil aliases on error, got %#v", aliases)
				}
				return
			}
			if !reflect.DeepEqual(aliases, tt.wantAliases) {
				t.Errorf("GetAliases() = %#v, want %#v", aliases, tt.wantAliases)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	t.Run("builds table from provider", func(t *testing.T) {
		provider := &testutil.MockAliasProvider{
			GetAliasesFunc: func() ([]filetype.Alias, error) {
				return []filetype.Alias{{Token: "tf", Filetype: "terraform"}}, nil
			},
		}
		table, err := LoadTable(provider)
		if err != nil {
			t.Fatalf("LoadTable() unexpected error: %v", err)
		}
		if got := table.Resolve("tf"); got != "terraform" {
			t.Errorf("Resolve(tf) = %q, want terraform", got)
		}
	})

	t.Run("propagates provider error", func(t *testing.T) {
		providerErr := errors.New("broken table")
		provider := &testutil.MockAliasProvider{
			GetAliasesFunc: func() ([]filetype.Alias, error) { return nil, providerErr },
		}
		if _, err := LoadTable(provider); !errors.Is(err, providerErr) {
			t.Errorf("LoadTable() error = %v, want %v", err, providerErr)
		}
	})
}
