package archive

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/linkup-social/core/internal/models"
	"gorm.io/gorm"
)

// tableDump pairs a ZIP entry name with the slice it serializes.
type tableDump struct {
	name string
	load func(db *gorm.DB) (interface{}, error)
}

var dumps = []tableDump{
	{"users.json", func(db *gorm.DB) (interface{}, error) {
		var rows []models.UserModel
		return rows, db.Find(&rows).Error
	}},
	{"posts.json", func(db *gorm.DB) (interface{}, error) {
		var rows []models.PostModel
		return rows, db.Find(&rows).Error
	}},
	{"comments.json", func(db *gorm.DB) (interface{}, error) {
		var rows []models.CommentModel
		return rows, db.Find(&rows).Error
	}},
	{"conversations.json", func(db *gorm.DB) (interface{}, error) {
		var rows []models.ConversationModel
		return rows, db.Preload("Members").Find(&rows).Error
	}},
	{"messages.json", func(db *gorm.DB) (interface{}, error) {
		var rows []models.MessageModel
		return rows, db.Find(&rows).Error
	}},
}

// ExportFilename returns the timestamped name for a fresh export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("linkup-export-%s.zip", now.Format("20060102-150405"))
}

// WriteExport streams a ZIP of every table as a JSON array.
func WriteExport(db *gorm.DB, w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, d := range dumps {
		rows, err := d.load(db)
		if err != nil {
			return fmt.Errorf("dump %s: %w", d.name, err)
		}
		f, err := zw.Create(d.name)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode %s: %w", d.name, err)
		}
	}
	return zw.Close()
}
