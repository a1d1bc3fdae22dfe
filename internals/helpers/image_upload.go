package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
)

// Images wider than this get downscaled before re-encoding.
const maxImageWidth = 1600

// UploadImage decodes a multipart image, downsizes it when oversized,
// re-encodes it as webp and pushes it to the storage bucket. Returns the
// public URL.
func UploadImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	base := strings.TrimSuffix(fileHeader.Filename, "."+extOf(fileHeader.Filename))
	filename := GenerateUniqueFilename(folder, base+".webp")

	if err := uploadToStorage("image", filename, "image/webp", buf); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		configs.StorageURL, url.PathEscape(filename)), nil
}

func extOf(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[i+1:]
	}
	return ""
}

func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func uploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	if configs.StorageURL == "" || configs.StorageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL or STORAGE_SERVICE_ROLE_KEY not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.StorageURL, bucket, filename)
	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteStoredImage removes a previously uploaded object given its public URL.
func DeleteStoredImage(publicURL string) error {
	bucket, path, err := extractStoragePath(publicURL)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.StorageURL, bucket, path)
	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func extractStoragePath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("not a public storage object URL")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("cannot extract bucket and path")
	}
	return pathParts[0], pathParts[1], nil
}
