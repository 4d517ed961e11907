package artifact

import (
	"compress/gzip"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"text2crisis.com/drc/logger"
)

// Save writes doc as gzip-compressed JSON. The document layout is owned by
// the caller; this layer only guarantees a load round-trip.
func Save(filePath string, doc any) error {
	fdlLogger := logger.NewLogger("ArtifactStore")

	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create artifact file: %s", filePath)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode artifact")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "failed to flush artifact")
	}

	fdlLogger.Info().Str("file_path", filePath).Msg("Saved model artifact")
	return nil
}

// Load reads a document written by Save into doc.
func Load(filePath string, doc any) error {
	f, err := os.Open(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open artifact file: %s", filePath)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrap(err, "artifact is not gzip-compressed")
	}
	defer zr.Close()

	if err := json.NewDecoder(zr).Decode(doc); err != nil {
		return errors.Wrap(err, "failed to decode artifact")
	}
	return nil
}
