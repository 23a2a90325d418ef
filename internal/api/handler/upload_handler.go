package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/core/ports"
)

// 5 MB of decoded image data.
const maxImageBytes = 5 << 20

// UploadHandler accepts base64 data-URL images and stores them in the media
// store, returning the stable URL the product record keeps.
type UploadHandler struct {
	media ports.MediaStore
}

func NewUploadHandler(media ports.MediaStore) *UploadHandler {
	return &UploadHandler{media: media}
}

type uploadImageRequest struct {
	Image string `json:"image" validate:"required"`
}

type uploadImageData struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type uploadImageResponse struct {
	Success bool            `json:"success"`
	Data    uploadImageData `json:"data"`
}

// UploadImage handles POST /v1/uploads/image.
//
// @Summary      Upload a product image
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadImageRequest  true  "Base64 data URL"
// @Success      200   {object}  uploadImageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/uploads/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	var req uploadImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contentType, data, err := decodeDataURL(req.Image)
	if err != nil {
		return err
	}

	key, url, err := h.media.UploadImage(c.Request().Context(), data, contentType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadImageResponse{
		Success: true,
		Data:    uploadImageData{Key: key, URL: url},
	})
}

// decodeDataURL parses a "data:image/<fmt>;base64,<payload>" URL and returns
// the MIME type and the decoded bytes.
func decodeDataURL(raw string) (string, []byte, error) {
	if !strings.HasPrefix(raw, "data:image/") {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "image must be a base64 data URL")
	}

	meta, payload, found := strings.Cut(raw, ",")
	if !found {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "malformed data URL")
	}

	contentType := strings.TrimPrefix(meta, "data:")
	contentType = strings.TrimSuffix(contentType, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "invalid base64 payload")
	}
	if len(data) == 0 {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "image payload is empty")
	}
	if len(data) > maxImageBytes {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "image exceeds the 5MB limit")
	}

	return contentType, data, nil
}
