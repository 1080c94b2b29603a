package gen

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/tools/imports"
)

// Writer lands generated artifacts under one directory and tracks what
// it wrote. It is safe for use from parallel generation workers.
type Writer struct {
	dir string

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics summarizes one generation pass.
type WriterMetrics struct {
	FilesWritten  int
	ModelsSkipped int
	TotalBytes    int64
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Metrics returns a copy of the collected metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// reset clears the metrics at the start of a pass.
func (w *Writer) reset() {
	w.mu.Lock()
	w.metrics = WriterMetrics{}
	w.mu.Unlock()
}

// modelSkipped records a model skipped by the snapshot check.
func (w *Writer) modelSkipped() {
	w.mu.Lock()
	w.metrics.ModelsSkipped++
	w.mu.Unlock()
}

// WriteGo formats Go source with goimports and writes it under the
// writer's directory. On a format failure the raw source lands next to
// the target with an .error suffix so the broken output can be
// inspected.
func (w *Writer) WriteGo(name string, src []byte) error {
	full := filepath.Join(w.dir, name)
	formatted, err := imports.Process(full, src, nil)
	if err != nil {
		debugPath := full + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, src, 0o644)
		return NewGenerationError("format", name, "unformatted source written to "+debugPath, err)
	}
	return w.write(name, formatted)
}

// WriteText writes a non-Go artifact verbatim.
func (w *Writer) WriteText(name string, data []byte) error {
	return w.write(name, data)
}

func (w *Writer) write(name string, data []byte) error {
	full := filepath.Join(w.dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return NewGenerationError("write", name, "create directory", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return NewGenerationError("write", name, "write file", err)
	}
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(data))
	w.mu.Unlock()
	return nil
}
