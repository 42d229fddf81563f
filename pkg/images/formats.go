package images

import (
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// This file widens the set of codecs image.Decode (used throughout
// loader.go) can handle, beyond the three stdlib formats blank-imported
// above in loader.go (gif, jpeg, png). shape-outside: url(...) values are
// not restricted to any particular format, so a raster shape image
// authored as BMP or WebP decodes the same way a PNG or JPEG does.
