// Package converter renders PDF pages into thumbnail images with an external
// GraphicsMagick process.
package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/MKhiriev/dspace-utils/internal/logger"
)

//go:generate mockgen -source=converter.go -destination=../mock/converter_mock.go -package=mock

// ThumbnailGeometry is the bounding box of generated thumbnails.
const ThumbnailGeometry = "160x160"

// ErrConversion is matched by every [ConversionError].
var ErrConversion = errors.New("image conversion failed")

// ConversionError reports a converter run that exited non-zero. Stderr holds
// the tool's standard error unchanged.
type ConversionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
}

// Is makes errors.Is(err, ErrConversion) hold for every ConversionError.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ImageConverter renders one page of a document into an image file.
type ImageConverter interface {
	// Thumbnail renders the zero-based page of src into dst.
	Thumbnail(ctx context.Context, src string, page int, dst string) error
}

// GraphicsMagick runs "gm convert".
type GraphicsMagick struct {
	binary string
	logger *logger.Logger
}

// NewGraphicsMagick returns a converter invoking binary (usually "gm").
func NewGraphicsMagick(binary string, logger *logger.Logger) *GraphicsMagick {
	if binary == "" {
		binary = "gm"
	}
	return &GraphicsMagick{binary: binary, logger: logger}
}

// Args returns the command line arguments used to render page of src.
func (g *GraphicsMagick) Args(src string, page int, dst string) []string {
	return []string{
		"convert",
		"-thumbnail", ThumbnailGeometry,
		"-flatten",
		src + "[" + strconv.Itoa(page) + "]",
		dst,
	}
}

// Thumbnail implements [ImageConverter]. A non-zero exit yields a
// *[ConversionError] carrying the captured standard error; a binary that
// cannot be started is reported as a plain error.
func (g *GraphicsMagick) Thumbnail(ctx context.Context, src string, page int, dst string) error {
	if page < 0 {
		return fmt.Errorf("negative page %d", page)
	}

	args := g.Args(src, page, dst)
	cmd := exec.CommandContext(ctx, g.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	g.logger.Debug().Str("binary", g.binary).Strs("args", args).Msg("running converter")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ConversionError{
			Command:  g.binary + " " + strings.Join(args, " "),
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr.String(),
		}
	}

	return fmt.Errorf("error running %s: %w", g.binary, err)
}
