// Package mimetypes classifies attachment payloads by sniffing magic bytes.
package mimetypes

import (
	"strings"

	"chat-mock/domain"
	"chat-mock/errors"
	"github.com/gabriel-vasile/mimetype"
)

const (
	ImageGIF = "image/gif"
	ImagePNG = "image/png"
)

// DetectAttachmentType maps raw upload bytes to a message type.
// GIF payloads become TypeGIF, any other image becomes TypeImage, and
// everything else is rejected.
func DetectAttachmentType(data []byte) (domain.MessageType, string, error) {
	mt := mimetype.Detect(data)
	detected := mt.String()

	switch {
	case detected == ImageGIF:
		return domain.TypeGIF, detected, nil
	case strings.HasPrefix(detected, "image/"):
		return domain.TypeImage, detected, nil
	default:
		return "", detected, errors.ErrUnsupportedAttachment
	}
}
