package display

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/pkg/errors"
)

// LoadImage decodes the image asset at path from assets.
func LoadImage(assets fs.FS, path string) (image.Image, error) {
	if assets == nil {
		return nil, errors.Wrapf(ErrAssetMissing, "load %s: no asset filesystem", path)
	}
	f, err := assets.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, errors.Wrapf(ErrAssetMissing, "load %s", path)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}
