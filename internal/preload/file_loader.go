package preload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/vitrine/internal/media"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// FileLoader warms local media files by sniffing their content type. Sources
// with a URL scheme are not fetched; they are reported as loaded because
// fetching remote assets is the host's business.
type FileLoader struct {
	// Root resolves relative sources, usually the catalog document's
	// directory.
	Root string
}

// Load checks that the file behind item exists and that its content matches
// the declared variant.
func (l FileLoader) Load(ctx context.Context, index int, item media.Descriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	source := media.SourceOf(item)
	if source == "" || isRemote(source) {
		return nil
	}

	path := source
	if !filepath.IsAbs(path) && l.Root != "" {
		path = filepath.Join(l.Root, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return vitrineerrors.NewLoadError(index, source, err)
	}
	if info.IsDir() {
		return vitrineerrors.NewLoadError(index, source, fmt.Errorf("%s is a directory", path))
	}

	var check kindCheck
	media.Visit(index, item, &check)
	if check.prefix == "" {
		return nil
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return vitrineerrors.NewLoadError(index, source, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !matchesPrefix(mtype, check.prefix) {
		return vitrineerrors.NewLoadError(index, source, &vitrineerrors.KindMismatchError{
			Declared: item.Kind().String(),
			Detected: mtype.String(),
		})
	}
	return nil
}

// kindCheck maps each variant to the MIME family its content must belong to.
type kindCheck struct {
	prefix string
}

func (k *kindCheck) VisitImage(int, media.Image)       { k.prefix = "image/" }
func (k *kindCheck) VisitVideo(int, media.Video)       { k.prefix = "video/" }
func (k *kindCheck) VisitMap(int, media.Map)           { k.prefix = "" }
func (k *kindCheck) VisitEmbedded(int, media.Embedded) { k.prefix = "" }

func matchesPrefix(mtype *mimetype.MIME, prefix string) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), prefix) {
			return true
		}
	}
	return false
}

func isRemote(source string) bool {
	i := strings.Index(source, ":")
	if i <= 1 {
		// "C:" style drive letters are single characters.
		return false
	}
	scheme := source[:i]
	for _, r := range scheme {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}
