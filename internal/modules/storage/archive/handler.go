package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	grp := api.Group("/archive", authMW)
	grp.GET("/export", h.export)
	grp.POST("/import", h.importLegacy)
}

// GET /api/archive/export
func (h *Handler) export(c *gin.Context) {
	var buf bytes.Buffer
	if err := WriteExport(h.db, &buf); err != nil {
		response.InternalError(c, err)
		return
	}

	filename := ExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
	h.logger.Info("archive exported", zap.String("filename", filename))
}

// POST /api/archive/import
func (h *Handler) importLegacy(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		response.BadRequest(c, "invalid zip file")
		return
	}

	if err := ImportLegacyDump(h.db, zr); err != nil {
		h.logger.Warn("legacy import failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"imported": true})
}
