package platform

import (
	"io/fs"
	"os"

	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// OSPlatform implements the Platform interface using the operating system.
type OSPlatform struct{}

// NewOSPlatform creates a new OSPlatform.
func NewOSPlatform() ports.Platform {
	return &OSPlatform{}
}

// UserHomeDir returns the home directory following the host platform's convention.
func (p *OSPlatform) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// LookupEnv implements the ports.Platform interface.
func (p *OSPlatform) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Stat implements the ports.Platform interface.
func (p *OSPlatform) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
