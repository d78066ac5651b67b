package container

import (
	"fmt"
	"os"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	exifundefined "github.com/dsoprea/go-exif/v3/undefined"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"

	"github.com/satishvudata98/filemetadata-modifier/internal/commentlog"
	"github.com/satishvudata98/filemetadata-modifier/internal/models"
)

// TagImageAdapter stores the comment log in embedded EXIF tags of
// JPEG-family images. Reads are best-effort: third-party EXIF data is
// unreliable, so any extraction failure produces the fallback record
// instead of failing the request.
//
// The log is written into both IFD0 ImageDescription and the Exif IFD
// UserComment tag so that downstream readers agree on the content.
//
// GIF files are routed through this adapter as well; their container
// cannot carry EXIF, so writes fail at the parser. That limitation is
// inherited from the formats, not worked around here.
type TagImageAdapter struct {
	now Clock
}

// NewTagImageAdapter creates a tag-based image adapter using the given
// clock for new comment timestamps.
func NewTagImageAdapter(now Clock) *TagImageAdapter {
	return &TagImageAdapter{now: now}
}

func (a *TagImageAdapter) Read(path string) (*models.Metadata, error) {
	tags, err := flatTags(path)
	if err != nil {
		return fallbackRecord("image"), nil
	}
	return record("image", tags["ImageDescription"], tags["Artist"], commentText(tags)), nil
}

func (a *TagImageAdapter) AppendComment(path, text string) error {
	return a.update(path, func(raw string) (string, error) {
		return commentlog.Append(raw, text, a.now()), nil
	})
}

func (a *TagImageAdapter) EditComment(path string, index int, text string) error {
	return a.update(path, func(raw string) (string, error) {
		return commentlog.EditAt(raw, index, text)
	})
}

func (a *TagImageAdapter) update(path string, change func(raw string) (string, error)) error {
	// Existing tags are read best-effort; an unreadable container starts
	// a fresh log.
	existing := ""
	if tags, err := flatTags(path); err == nil {
		existing = commentText(tags)
	}

	updated, err := change(existing)
	if err != nil {
		return err
	}
	return writeComment(path, updated)
}

// commentText picks the stored log out of the flat tag view, preferring
// UserComment over ImageDescription.
func commentText(tags map[string]string) string {
	if v := tags["UserComment"]; v != "" {
		return v
	}
	return tags["ImageDescription"]
}

// flatTags extracts the embedded EXIF block as a flat tag-name to value
// map.
func flatTags(path string) (map[string]string, error) {
	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return nil, fmt.Errorf("extracting tags from %s: %w", path, err)
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding tags from %s: %w", path, err)
	}

	tags := make(map[string]string, len(entries))
	for _, entry := range entries {
		switch v := entry.Value.(type) {
		case string:
			tags[entry.TagName] = v
		case exifundefined.Tag9286UserComment:
			tags[entry.TagName] = string(v.EncodingBytes)
		default:
			if _, seen := tags[entry.TagName]; !seen {
				tags[entry.TagName] = entry.FormattedFirst
			}
		}
	}
	return tags, nil
}

// writeComment re-encodes the image with the updated log in both tag
// slots, writing to a temporary file first and renaming it over the
// original in a single step so a crash cannot leave the file missing.
func writeComment(path, comment string) error {
	parser := jpegstructure.NewJpegMediaParser()
	intfc, err := parser.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	segments := intfc.(*jpegstructure.SegmentList)

	rootIb, err := segments.ConstructExifBuilder()
	if err != nil {
		// No EXIF block yet; start one.
		mapping, err := exifcommon.NewIfdMappingWithStandard()
		if err != nil {
			return err
		}
		rootIb = exif.NewIfdBuilder(mapping, exif.NewTagIndex(),
			exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	}

	ifd0, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return err
	}
	if err := ifd0.SetStandardWithName("ImageDescription", comment); err != nil {
		return err
	}

	exifIfd, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD/Exif")
	if err != nil {
		return err
	}
	userComment := exifundefined.Tag9286UserComment{
		EncodingType:  exifundefined.TagUndefinedType_9286_UserComment_Encoding_ASCII,
		EncodingBytes: []byte(comment),
	}
	if err := exifIfd.SetStandardWithName("UserComment", userComment); err != nil {
		return err
	}

	if err := segments.SetExif(rootIb); err != nil {
		return fmt.Errorf("rebuilding tags for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := segments.Write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
