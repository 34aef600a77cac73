// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package edit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"platefront/internal/media"
)

// apiError decodes the server's error envelope.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeAPIError(resp *http.Response) error {
	var envelope apiError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		return fmt.Errorf("edit: server returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("edit: %s: %s", envelope.Error.Code, envelope.Error.Message)
}

// HTTPSaver persists field edits through the content endpoint
// (PATCH /api/websites/{id}/content). It implements Saver.
type HTTPSaver struct {
	BaseURL   string
	WebsiteID uuid.UUID
	Client    *http.Client
}

// NewHTTPSaver creates a saver for one website. baseURL is the API origin
// without a trailing slash, e.g. "https://app.platefront.dev".
func NewHTTPSaver(baseURL string, websiteID uuid.UUID, client *http.Client) *HTTPSaver {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSaver{BaseURL: baseURL, WebsiteID: websiteID, Client: client}
}

// Save sends one field update. Any non-200 response is an error; the
// session rolls the field back on error, so the server stays the source
// of truth for confirmed values.
func (s *HTTPSaver) Save(ctx context.Context, fieldPath, value string) error {
	payload, err := json.Marshal(map[string]string{
		"field_path": fieldPath,
		"value":      value,
	})
	if err != nil {
		return fmt.Errorf("edit: encode save: %w", err)
	}

	url := fmt.Sprintf("%s/api/websites/%s/content", s.BaseURL, s.WebsiteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("edit: build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("edit: save request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

// UploadResult is the server's response to a media upload.
type UploadResult struct {
	ImageID  uuid.UUID `json:"image_id"`
	URL      string    `json:"url"`
	ThumbURL string    `json:"thumb_url"`
}

// HTTPUploader posts images to the media endpoint (POST /api/media) as
// multipart form data, reporting byte-level progress while the request
// body streams.
type HTTPUploader struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPUploader creates an uploader against the API origin.
func NewHTTPUploader(baseURL string, client *http.Client) *HTTPUploader {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &HTTPUploader{BaseURL: baseURL, Client: client}
}

// Upload streams one file. size is the file length in bytes (used for
// progress percentages); onProgress may be nil.
func (u *HTTPUploader) Upload(ctx context.Context, filename, imageType string, file io.Reader, size int64, onProgress func(read, total int64)) (*UploadResult, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, media.NewProgressReader(file, size, onProgress)); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := form.WriteField("image_type", imageType); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.BaseURL+"/api/media", pr)
	if err != nil {
		return nil, fmt.Errorf("edit: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("edit: upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("edit: decode upload response: %w", err)
	}
	return &result, nil
}
