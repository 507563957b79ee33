package rest

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/application/services"
	"fileshare-api/internal/domain/upload"
	dto "fileshare-api/internal/interface/api/rest/dto/upload"
)

// multipartMemory caps how much of the form gin keeps in memory; the
// rest spills to temp files.
const multipartMemory = 32 << 20

type UploadController struct {
	uploadService ports.UploadService
	logger        *zap.Logger
}

func NewUploadController(
	r *gin.Engine,
	uploadService ports.UploadService,
	logger *zap.Logger,
) *UploadController {
	uc := &UploadController{
		uploadService: uploadService,
		logger:        logger,
	}

	r.POST(RouteUpload, uc.UploadHandler)
	r.GET(RouteMeta, uc.GetMetadataHandler)
	r.GET(RouteDownload, uc.DownloadHandler)

	return uc
}

func (uc *UploadController) UploadHandler(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			abortWithError(c, http.StatusRequestEntityTooLarge, "File size exceeds the limit of 25MB.")
			return
		}
		abortWithError(c, http.StatusBadRequest, "Request must be a valid multipart form.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		abortWithError(c, http.StatusBadRequest, "Request must be a valid multipart form.")
		return
	}
	text := c.PostForm("text")

	res, err := uc.uploadService.Upload(c.Request.Context(), fh, text)
	if err != nil {
		uc.writeServiceError(c, err, "Upload() error")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadResponse(*res))
}

func (uc *UploadController) GetMetadataHandler(c *gin.Context) {
	meta, err := uc.uploadService.GetMetadata(c.Request.Context(), c.Param("short_id"))
	if err != nil {
		uc.writeServiceError(c, err, "GetMetadata() error")
		return
	}

	c.JSON(http.StatusOK, dto.ToMetadataResponse(*meta))
}

func (uc *UploadController) DownloadHandler(c *gin.Context) {
	res, err := uc.uploadService.Download(c.Request.Context(), c.Param("short_id"))
	if err != nil {
		uc.writeServiceError(c, err, "Download() error")
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	c.Header("Content-Length", strconv.FormatInt(res.ContentLength, 10))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

func (uc *UploadController) writeServiceError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPayloadTooLarge):
		abortWithError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, services.ErrUnsupportedMediaType):
		abortWithError(c, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, upload.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "File not found or has expired.")
	default:
		uc.logger.Error(logMsg, zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}
