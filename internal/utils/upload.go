package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUploadedImage validates an uploaded image and stores it under dir with
// a generated filename. Returns the public path of the stored file.
func SaveUploadedImage(c *fiber.Ctx, file *multipart.FileHeader, dir string, maxSize int64) (string, error) {
	if file.Size > maxSize {
		return "", fmt.Errorf("file size exceeds maximum of %dMB", maxSize/1024/1024)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", fmt.Errorf("invalid file type %q", ext)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}
