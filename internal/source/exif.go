package source

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"lrcollect/internal/apperr"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/datekey"
)

// CaptureTimeFunc returns the capture time of the image at path.
type CaptureTimeFunc func(path string) (time.Time, error)

// ExifChecker compares photo capture dates with the date key of their folder.
type ExifChecker struct {
	captureTime CaptureTimeFunc
}

// NewExifChecker creates an ExifChecker reading EXIF DateTimeOriginal.
func NewExifChecker() *ExifChecker {
	return &ExifChecker{captureTime: exifCaptureTime}
}

// Check emits an exif-date-mismatch warning for every JPEG in folder whose
// capture year (and month, when the key has one) differs from the folder's
// date key. Files without readable EXIF data are ignored. Mismatches never
// exclude a file from its collection.
func (c *ExifChecker) Check(ctx context.Context, folder Folder, warnings *apperr.Warnings) {
	logger := contextutil.LoggerFromContext(ctx)

	year, month, ok := expectedDate(folder.DateKey)
	if !ok {
		return
	}

	for _, file := range folder.Files {
		if !isJPEG(file.Name) {
			continue
		}
		taken, err := c.captureTime(file.Path)
		if err != nil {
			logger.DebugContext(ctx, "no capture date", "path", file.Path, "error", err)
			continue
		}
		if taken.Year() != year || (month != 0 && int(taken.Month()) != month) {
			warnings.Add(ctx, logger, apperr.WarnExifDateMismatch, file.Path,
				fmt.Sprintf("capture date %s does not match folder date %q", taken.Format("2006-01-02"), folder.DateKey))
		}
	}
}

// expectedDate interprets a date key as a year with an optional month.
func expectedDate(key string) (year, month int, ok bool) {
	tokens := datekey.Tokens(key)
	if len(tokens) == 0 || len(tokens[0]) != 4 {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(tokens[0])
	if len(tokens) > 1 && len(tokens[1]) == 2 {
		if m, _ := strconv.Atoi(tokens[1]); m >= 1 && m <= 12 {
			month = m
		}
	}
	return year, month, true
}

func isJPEG(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg")
}

// exifCaptureTime extracts the capture date from a photo's EXIF metadata.
func exifCaptureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}
