package polysandbox

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Snapshot queues a labeled PNG of the next rendered frame. The file is
// written to SnapshotDir by the next Pump as <frame>_<label>.png.
func (r *RasterSurface) Snapshot(label string) {
	r.snapshotQueue = append(r.snapshotQueue, label)
}

// flushSnapshots writes every queued label against the current frame.
func (r *RasterSurface) flushSnapshots() error {
	if len(r.snapshotQueue) == 0 {
		return nil
	}
	defer func() { r.snapshotQueue = r.snapshotQueue[:0] }()

	if err := os.MkdirAll(r.SnapshotDir, 0o755); err != nil {
		return fmt.Errorf("snapshot: mkdir %s: %w", r.SnapshotDir, err)
	}
	for _, label := range r.snapshotQueue {
		path := filepath.Join(r.SnapshotDir, fmt.Sprintf("%06d_%s.png", r.frames, sanitizeLabel(label)))
		if err := writePNG(path, r.frame); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	return nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
