// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"platefront/internal/media"
	"platefront/internal/middleware"
	"platefront/internal/models"
)

// multipartFormOverhead is slack added on top of the file size limit for
// the multipart framing and the image_type field.
const multipartFormOverhead = 1 << 20

// uploadResponse is the payload for a successful media upload.
type uploadResponse struct {
	ImageID  uuid.UUID `json:"image_id"`
	URL      string    `json:"url"`
	ThumbURL string    `json:"thumb_url"`
}

// UploadMedia handles POST /api/media. The multipart body carries the file
// and an optional image_type field (hero, menu_item, logo, general). The
// upload is validated and enhanced, the responsive variant set is derived,
// and everything lands in object storage before the metadata is committed.
func (a *API) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "storage_unavailable",
			"object storage is not configured")
		return
	}
	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes+multipartFormOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, media.ErrTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "request is not valid multipart form data")
		return
	}

	imageType := models.ImageType(r.FormValue("image_type"))
	if imageType == "" {
		imageType = models.ImageTypeGeneral
	}
	if !models.ValidImageType(imageType) {
		writeError(w, http.StatusUnprocessableEntity, "invalid_image_type",
			"image_type must be one of hero, menu_item, logo, general")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		// A mid-stream read failure is a broken upload, not a size
		// violation; the size ceiling is enforced by MaxBytesReader above
		// and by media.Process below.
		writeError(w, http.StatusBadRequest, "invalid_request", "the uploaded file could not be read")
		return
	}

	processed, err := media.Process(data, imageType, a.maxUploadBytes)
	if err != nil {
		respondError(w, err)
		return
	}

	fileID := uuid.New()
	originalKey := fmt.Sprintf("media/%s/%s.jpg", sess.OperatorID, fileID)

	ctx := r.Context()
	if err := a.storage.Upload(ctx, originalKey, processed.ContentType,
		bytes.NewReader(processed.Data), int64(len(processed.Data))); err != nil {
		respondError(w, fmt.Errorf("upload original: %w", err))
		return
	}

	variantKey := func(name string) string {
		return fmt.Sprintf("media/%s/%s_%s.jpg", sess.OperatorID, fileID, name)
	}
	for _, v := range processed.Variants {
		if err := a.storage.Upload(ctx, variantKey(v.Name), v.ContentType,
			bytes.NewReader(v.Data), int64(len(v.Data))); err != nil {
			respondError(w, fmt.Errorf("upload variant %s: %w", v.Name, err))
			return
		}
	}

	created, err := a.media.Create(&models.Media{
		OwnerID:      sess.OperatorID,
		Type:         imageType,
		Filename:     fileID.String() + ".jpg",
		OriginalName: header.Filename,
		ContentType:  processed.ContentType,
		SizeBytes:    int64(len(processed.Data)),
		Bucket:       a.storage.Bucket(),
		S3Key:        originalKey,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	rows := make([]models.MediaVariant, 0, len(processed.Variants))
	for _, v := range processed.Variants {
		rows = append(rows, models.MediaVariant{
			MediaID:     created.ID,
			Name:        v.Name,
			Width:       v.Width,
			Height:      v.Height,
			S3Key:       variantKey(v.Name),
			ContentType: v.ContentType,
			SizeBytes:   int64(len(v.Data)),
		})
	}
	if err := a.variants.CreateBatch(rows); err != nil {
		respondError(w, err)
		return
	}

	thumbURL := a.storage.FileURL(originalKey)
	for _, row := range rows {
		if row.Name == "thumb" {
			thumbURL = a.storage.FileURL(row.S3Key)
			break
		}
	}

	slog.Info("media uploaded", "media_id", created.ID, "type", imageType,
		"size_bytes", created.SizeBytes, "variants", len(rows))
	writeJSON(w, http.StatusCreated, uploadResponse{
		ImageID:  created.ID,
		URL:      a.storage.FileURL(originalKey),
		ThumbURL: thumbURL,
	})
}

// mediaView is one media item in list responses, with resolved URLs.
type mediaView struct {
	models.Media
	URL      string            `json:"url"`
	Variants map[string]string `json:"variants"`
}

// ListMedia handles GET /api/media?type=&limit=&offset=.
func (a *API) ListMedia(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	imageType := models.ImageType(r.URL.Query().Get("type"))
	if imageType != "" && !models.ValidImageType(imageType) {
		writeError(w, http.StatusUnprocessableEntity, "invalid_image_type",
			"type must be one of hero, menu_item, logo, general")
		return
	}
	limit := queryInt(r, "limit", 50)
	if limit > 100 {
		limit = 100
	}
	offset := queryInt(r, "offset", 0)

	items, err := a.media.ListByOwner(sess.OperatorID, imageType, limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]mediaView, 0, len(items))
	for _, m := range items {
		view := mediaView{Media: m, Variants: map[string]string{}}
		if a.storage != nil {
			view.URL = a.storage.FileURL(m.S3Key)
			variants, err := a.variants.FindByMediaID(m.ID)
			if err != nil {
				respondError(w, err)
				return
			}
			for _, v := range variants {
				view.Variants[v.Name] = a.storage.FileURL(v.S3Key)
			}
		}
		views = append(views, view)
	}
	writeJSON(w, http.StatusOK, map[string]any{"media": views})
}

// DeleteMedia handles DELETE /api/media/{mediaID}, removing the metadata
// rows and the stored objects. Object deletion is best-effort: an orphaned
// S3 object is preferable to a metadata row pointing at nothing.
func (a *API) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "mediaID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "media_not_found", "no media with that ID exists")
		return
	}
	m, err := a.media.FindByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if m == nil || m.OwnerID != sess.OperatorID {
		writeError(w, http.StatusNotFound, "media_not_found", "no media with that ID exists")
		return
	}

	variants, err := a.variants.DeleteByMediaID(m.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	if _, err := a.media.Delete(m.ID); err != nil {
		respondError(w, err)
		return
	}

	if a.storage != nil {
		keys := []string{m.S3Key}
		for _, v := range variants {
			keys = append(keys, v.S3Key)
		}
		if err := a.storage.DeleteAll(r.Context(), keys); err != nil {
			slog.Warn("delete media objects", "media_id", m.ID, "error", err)
		}
	}

	slog.Info("media deleted", "media_id", m.ID)
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an integer query parameter, falling back on absent or
// malformed values. Negative values fall back too.
func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
