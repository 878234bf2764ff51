package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// Storage archives rendered calendar exports and returns a URL the caller
// can hand back to the user.
type Storage interface {
	SaveExport(name string, contents []byte) (string, error)
}

type LocalStorage struct {
	exportDir string
	baseURL   string
}

type SpacesStorage struct {
	client   *s3.S3
	bucket   string
	cdnURL   string
	endpoint string
}

func NewLocalStorage(exportDir, baseURL string) *LocalStorage {
	return &LocalStorage{exportDir: exportDir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client:   s3.New(sess),
		bucket:   bucket,
		cdnURL:   cdnURL,
		endpoint: endpoint,
	}, nil
}

// normalizeFilename creates a unique, normalized filename without spaces.
func normalizeFilename(original string) string {
	ext := filepath.Ext(original)
	baseName := strings.TrimSuffix(original, ext)

	baseName = strings.ReplaceAll(baseName, " ", "_")

	reg := regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	baseName = reg.ReplaceAllString(baseName, "")

	if baseName == "" {
		baseName = "export"
	}
	if ext == "" {
		ext = ".html"
	}

	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s%s", baseName, timestamp, ext)
}

func (ls *LocalStorage) SaveExport(name string, contents []byte) (string, error) {
	filename := normalizeFilename(name)
	log.Debug().Str("original", name).Str("normalized", filename).Msg("export filename normalized")

	if err := os.MkdirAll(ls.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(ls.exportDir, filename)
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}

	if ls.baseURL == "" {
		return path, nil
	}
	return fmt.Sprintf("%s/%s", ls.baseURL, filename), nil
}

func (ss *SpacesStorage) SaveExport(name string, contents []byte) (string, error) {
	filename := normalizeFilename(name)
	key := fmt.Sprintf("exports/%s", filename)

	_, err := ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contents),
		ContentType: aws.String(contentType(filename)),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload export to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	cdnURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(ss.cdnURL, "/"), key)
	return cdnURL, nil
}

func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	case ".ics":
		return "text/calendar"
	default:
		return "application/octet-stream"
	}
}
