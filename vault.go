package ashf

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/absfs/absfs"
	"github.com/google/uuid"
)

// artifactExt is the filename extension for stored payload artifacts
const artifactExt = ".ashf"

// Vault stores protected payload artifacts on any absfs filesystem under
// uuid-named files. It is a convenience layer over the core operations:
// the payload bytes remain the interchange format and can be moved in
// and out of a vault freely.
type Vault struct {
	fs        absfs.FileSystem
	root      string
	protector *Protector
}

// NewVault creates a vault rooted at dir on the given filesystem. The
// directory is created if it does not exist.
func NewVault(fs absfs.FileSystem, dir string, protector *Protector) (*Vault, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if protector == nil {
		return nil, fmt.Errorf("protector cannot be nil")
	}
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault root: %w", err)
	}
	return &Vault{
		fs:        fs,
		root:      dir,
		protector: protector,
	}, nil
}

// Store writes payload bytes as a new artifact and returns its id
func (v *Vault) Store(payload []byte) (string, error) {
	if err := ValidateBuffer(payload, "payload", MinPayloadSize); err != nil {
		return "", err
	}

	id := uuid.NewString()
	file, err := v.fs.OpenFile(v.artifactPath(id), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create artifact: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(payload); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return id, nil
}

// Load reads the payload bytes of an artifact
func (v *Vault) Load(id string) ([]byte, error) {
	file, err := v.fs.Open(v.artifactPath(id))
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact %s: %w", id, err)
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", id, err)
	}
	return payload, nil
}

// Delete removes an artifact
func (v *Vault) Delete(id string) error {
	return v.fs.Remove(v.artifactPath(id))
}

// List returns the ids of all stored artifacts, sorted
func (v *Vault) List() ([]string, error) {
	dir, err := v.fs.Open(v.root)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault root: %w", err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault root: %w", err)
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasSuffix(name, artifactExt) {
			ids = append(ids, strings.TrimSuffix(name, artifactExt))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Seal protects plaintext under secret and stores the resulting artifact,
// returning its id
func (v *Vault) Seal(secret, plaintext []byte) (string, error) {
	payload, err := v.protector.Protect(secret, plaintext)
	if err != nil {
		return "", err
	}
	return v.Store(payload)
}

// Open loads an artifact and unprotects it under secret
func (v *Vault) Open(secret []byte, id string) ([]byte, error) {
	payload, err := v.Load(id)
	if err != nil {
		return nil, err
	}
	return v.protector.Unprotect(secret, payload)
}

func (v *Vault) artifactPath(id string) string {
	return path.Join(v.root, id+artifactExt)
}
