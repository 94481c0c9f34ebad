package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/tmo"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errUnsupportedChannels = errors.New("unsupported channel count")

type Texture struct {
	// holds the ID of the texture object, used for all texture operations to reference to this particular texture
	ID uint32
	// width and height of loaded image in pixels
	Width, Height int32
	// 3 (RGB) or 4 (RGBA), decided by the decoded pixels: an alpha channel
	// that is fully opaque is dropped
	Channels int
}

// textureImage is decoded pixel data ready for upload: tightly packed rows,
// bottom row first, Channels bytes per pixel.
type textureImage struct {
	width, height int
	channels      int
	pix           []byte
}

// newTexture decodes the image at path and uploads it with the given wrap mode.
func newTexture(b backend, path string, wrap int32) (*Texture, error) {
	textureFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer textureFile.Close()

	img, err := decodeTexture(textureFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture file [%s]: %w", path, err)
	}

	return &Texture{
		ID:       b.newTexture2D(img, wrap),
		Width:    int32(img.width),
		Height:   int32(img.height),
		Channels: img.channels,
	}, nil
}

// decodeTexture decodes any registered image format and flips it so row 0 is
// the bottom of the image, which is where texture coordinate v=0 samples.
func decodeTexture(r io.Reader) (*textureImage, error) {
	decoded, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	// Radiance files carry float radiance; bring them into displayable 8-bit range
	if hdrImage, ok := decoded.(hdr.Image); ok {
		decoded = tmo.NewDefaultReinhard05(hdrImage).Perform()
	}

	channels := channelCount(decoded)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: image has %d channel(s)", errUnsupportedChannels, channels)
	}

	bounds := decoded.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), decoded, bounds.Min, draw.Src)

	pixelData := make([]byte, width*height*channels)
	index := 0
	for y := height - 1; y >= 0; y-- {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			copy(pixelData[index:index+channels], row[x*4:x*4+channels])
			index += channels
		}
	}

	return &textureImage{
		width:    width,
		height:   height,
		channels: channels,
		pix:      pixelData,
	}, nil
}

// channelCount reports how many channels the decoded image carries: gray images
// have one, images that are fully opaque have three, everything else four.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

func (tex *Texture) destroy(b backend) {
	if tex.ID == 0 {
		return
	}
	b.deleteTexture(tex.ID)
	tex.ID = 0
}
