package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxPhotoBytes bounds photos read from disk. The whole roster is one
// stored value, so a single oversized image slows every write.
const maxPhotoBytes = 5 << 20

// readPhoto loads an image file and returns it as a data URI, the form
// photos are stored in.
func readPhoto(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxPhotoBytes {
		return "", fmt.Errorf("%s is %d bytes, limit is %d", path, info.Size(), maxPhotoBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s is empty", path)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s is not an image (detected %s)", path, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
