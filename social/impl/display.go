package impl

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/minotor-team/socialsim/social"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// NewFileImageDisplayer returns a displayer that reads image references as
// file paths and reports the format and the size of the image.
func NewFileImageDisplayer() social.ImageDisplayer {
	return fileImageDisplayer{}
}

type fileImageDisplayer struct{}

func (fileImageDisplayer) Display(reference string) error {
	f, err := os.Open(reference)
	if err != nil {
		return xerrors.Errorf("failed to open image %s: %w", reference, err)
	}
	defer f.Close()

	conf, format, err := image.DecodeConfig(f)
	if err != nil {
		return xerrors.Errorf("failed to decode image %s: %w", reference, err)
	}

	log.Info().
		Str("image", reference).
		Str("format", format).
		Int("width", conf.Width).
		Int("height", conf.Height).
		Msg("displaying image")
	return nil
}

// logImageDisplayer is used when no displayer is configured.
type logImageDisplayer struct{}

func (logImageDisplayer) Display(reference string) error {
	log.Info().Str("image", reference).Msg("displaying image")
	return nil
}
