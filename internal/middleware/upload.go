package middleware

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/pkg/response"
)

const maxUploadBytes = 10 << 20

// ReadImageUpload pulls the named multipart file from the request and returns
// its bytes. Non-image uploads are rejected. A missing file is not an error;
// callers treat (nil, true) as "no image attached".
func ReadImageUpload(c *gin.Context, field string) ([]byte, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, true
		}
		response.BadRequest(c, err.Error())
		return nil, false
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image") {
		response.BadRequest(c, "You may only upload images")
		return nil, false
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "Image is too large")
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalError(c, err)
		return nil, false
	}
	return data, true
}
