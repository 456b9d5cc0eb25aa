package frontend

import (
	"os"
	"path/filepath"

	"codeberg.org/sqlai/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// serves the single-page frontend from dir
func IndexHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(dir, indexFile)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			errors.NotFound(c, "frontend")
			return
		}

		c.File(path)
	}
}
