package snapshot

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
)

// Artifact describes a file found outside the archive tree, such as a fresh
// download waiting to be filed.
type Artifact struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// FromFileInfo constructs an Artifact from a file path and os.FileInfo.
func FromFileInfo(path string, info os.FileInfo) Artifact {
	return Artifact{
		Name:    filepath.Base(path),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}
}

// Timestamp decodes the snapshot time embedded in the artifact name.
func (a Artifact) Timestamp() (time.Time, error) {
	return naming.Decode(a.Name)
}

// Kind classifies the artifact by extension.
func (a Artifact) Kind() (naming.Kind, bool) {
	return naming.KindOf(a.Name)
}
