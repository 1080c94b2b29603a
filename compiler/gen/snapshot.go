package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/filterql/schema/field"
)

// Snapshot maps model base names to the digest of their last generated
// inputs.
type Snapshot map[string]string

// Cache persists snapshots between generator runs. Generate loads once
// up front and stores once after a successful pass.
type Cache interface {
	// Load returns the previous snapshot, or an empty one when no
	// snapshot exists yet.
	Load() (Snapshot, error)
	// Store replaces the snapshot.
	Store(Snapshot) error
}

// FileCache returns a Cache backed by one msgpack-encoded file.
func FileCache(path string) Cache {
	return &fileCache{path: path}
}

type fileCache struct {
	path string
}

func (c *fileCache) Load() (Snapshot, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	if snap == nil {
		snap = Snapshot{}
	}
	return snap, nil
}

func (c *fileCache) Store(snap Snapshot) error {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// MemoryCache returns an in-process Cache for tests and for
// long-running processes that regenerate on schema edits.
func MemoryCache() Cache {
	return &memCache{}
}

type memCache struct {
	mu   sync.Mutex
	snap Snapshot
}

func (c *memCache) Load() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(Snapshot, len(c.snap))
	for k, v := range c.snap {
		out[k] = v
	}
	return out, nil
}

func (c *memCache) Store(snap Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = make(Snapshot, len(snap))
	for k, v := range snap {
		c.snap[k] = v
	}
	return nil
}

// snapshotInput is the msgpack payload digested per model: the model's
// name and fields plus every config knob that shapes its output.
type snapshotInput struct {
	Name     string
	Fields   []field.Spec
	Reuse    bool
	Header   string
	Package  string
	Date     string
	DateTime string
	Meta     string
}

// digest hashes one model's generation inputs.
func (g *Generator) digest(t *Type) (string, error) {
	in := snapshotInput{
		Name:     t.Name,
		Fields:   t.model.Fields(),
		Reuse:    g.reuse(t),
		Header:   g.cfg.Header,
		Package:  g.cfg.Package,
		Date:     g.cfg.DateAlias,
		DateTime: g.cfg.DateTimeAlias,
		Meta:     g.cfg.MetaType,
	}
	data, err := msgpack.Marshal(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
