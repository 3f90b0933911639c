package http

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/document"
)

// processUploadReq reads the multipart file and the metadata form fields.
func (h *handler) processUploadReq(c *gin.Context) (document.UploadInput, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return document.UploadInput{}, errMissingFile
	}
	if h.maxSize > 0 && fh.Size > h.maxSize {
		return document.UploadInput{}, document.ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return document.UploadInput{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return document.UploadInput{}, fmt.Errorf("read upload: %w", err)
	}

	var coefficient float64
	if raw := strings.TrimSpace(c.PostForm("module_coefficient")); raw != "" {
		coefficient, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return document.UploadInput{}, errBadCoefficient
		}
	}

	return document.UploadInput{
		Name:    fh.Filename,
		Content: content,
		Metadata: document.Metadata{
			NewTaskDescription: c.PostForm("new_task_description"),
			ConfidenceLevel:    c.PostForm("confidence_level"),
			ModuleCoefficient:  coefficient,
			TaskDeadline:       c.PostForm("task_deadline"),
		},
	}, nil
}
