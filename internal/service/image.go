package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var validImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type imageService struct {
	logger     *zap.Logger
	httpClient *http.Client
}

func newImageService(logger *zap.Logger) Image {
	return &imageService{
		logger:     logger,
		httpClient: &http.Client{},
	}
}

// Upload forwards the file to the external CDN and returns its public URL.
func (s *imageService) Upload(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", ErrFileMustBeImage
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := validImageExtensions[ext]; !ok {
		return "", ErrFileMustHaveAValidExtension
	}

	endpoint := "/upload"
	url := viper.GetString("cdn.origin") + endpoint

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fileWriter, err := writer.CreateFormFile("file", fileHeader.Filename)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create file part for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		s.logger.Sugar().Errorf("failed to copy file content for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.WriteField("path", "blog-images"); err != nil {
		s.logger.Sugar().Errorf("failed to write path field for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.Close(); err != nil {
		s.logger.Sugar().Errorf("failed to close writer for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("type", "IMAGE")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to do CDN request: %s", err.Error())
		return "", ErrInternal
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from CDN: %s", err.Error())
		return "", ErrInternal
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]interface{}
		if err := json.Unmarshal(body, &bodyJSON); err != nil {
			s.logger.Sugar().Errorf("failed to decode error response from CDN: %s", err.Error())
		} else {
			s.logger.Sugar().Errorf("ERROR from CDN endpoint(%s), code(%d), details: %s", endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return "", ErrFailedToUploadImageToCDN
	}

	return string(body), nil
}
