package mimetypes

import (
	"testing"

	"chat-mock/domain"
	"chat-mock/errors"
	"github.com/stretchr/testify/require"
)

// Minimal valid magic bytes per format.
var (
	gifHeader = []byte("GIF89a")
	pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
)

func TestDetectAttachmentType_GIF(t *testing.T) {
	req := require.New(t)
	mt, detected, err := DetectAttachmentType(gifHeader)
	req.NoError(err)
	req.Equal(domain.TypeGIF, mt)
	req.Equal(ImageGIF, detected)
}

func TestDetectAttachmentType_PNGBecomesImage(t *testing.T) {
	req := require.New(t)
	mt, detected, err := DetectAttachmentType(pngHeader)
	req.NoError(err)
	req.Equal(domain.TypeImage, mt)
	req.Equal(ImagePNG, detected)
}

func TestDetectAttachmentType_RejectsText(t *testing.T) {
	_, _, err := DetectAttachmentType([]byte("just some plain text"))
	require.ErrorIs(t, err, errors.ErrUnsupportedAttachment)
}
