package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"property-service/internal/service"
)

type ImageHandler struct {
	Svc *service.ImageService
}

func (h *ImageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/properties/upload", h.UploadImage)
	rg.POST("/upload", h.UploadImage)
	rg.GET("/images/*key", h.DownloadImage)
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일이 없습니다."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer file.Close()

	url, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *ImageHandler) DownloadImage(c *gin.Context) {
	rc, contentType, err := h.Svc.Open(c.Request.Context(), c.Param("key"))
	if errors.Is(err, service.ErrImageNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		_ = c.Error(err)
	}
}
