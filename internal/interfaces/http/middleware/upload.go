package middleware

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/docker/go-units"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	attachmentUsecases "tag/internal/application/attachment/usecases"
	"tag/internal/domain/attachment"
	"tag/internal/shared/config"
	"tag/internal/shared/constants"
	"tag/internal/shared/logger"
	"tag/internal/shared/utils"
)

const (
	UploadField = "files"

	defaultMaxFileSize = "5MiB"
	defaultMaxFiles    = 5
	// room for multipart boundaries and headers on top of the file bytes
	multipartOverhead = 1 << 20
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// FileSaver writes uploads to disk.
type FileSaver interface {
	attachment.FileStore
	Save(originalName string, r io.Reader) (name, path string, err error)
}

type uploadError struct {
	status  int
	message string
}

func (e *uploadError) Error() string { return e.message }

// UploadMiddleware parses the multipart "files" field, validates every file
// and writes it to storage before the handler runs. A request answered with an
// error status, whether rejected here or downstream, leaves no file behind.
type UploadMiddleware struct {
	files       FileSaver
	cleaner     *attachmentUsecases.FileCleaner
	maxFileSize int64
	maxFiles    int
	logger      logger.Interface
}

func NewUploadMiddleware(files FileSaver, cfg config.UploadConfig, log logger.Interface) (*UploadMiddleware, error) {
	humanSize := cfg.MaxFileSize
	if humanSize == "" {
		humanSize = defaultMaxFileSize
	}
	maxFileSize, err := units.RAMInBytes(humanSize)
	if err != nil || maxFileSize <= 0 {
		return nil, fmt.Errorf("invalid upload max_file_size %q", humanSize)
	}

	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = defaultMaxFiles
	}

	return &UploadMiddleware{
		files:       files,
		cleaner:     attachmentUsecases.NewFileCleaner(files, log),
		maxFileSize: maxFileSize,
		maxFiles:    maxFiles,
		logger:      log,
	}, nil
}

func (m *UploadMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxFileSize*int64(m.maxFiles)+multipartOverhead)

		reader, err := c.Request.MultipartReader()
		if err != nil {
			m.reject(c, m.parseError(err))
			return
		}

		stored, err := m.store(reader)
		if err != nil {
			m.cleaner.Remove(stored)
			m.reject(c, err)
			return
		}

		c.Set(constants.ContextKeyUploads, stored)
		c.Next()

		// Files only survive a successful response; Remove tolerates files the
		// use case already deleted.
		if c.Writer.Status() >= http.StatusBadRequest {
			m.cleaner.Remove(stored)
		}
	}
}

// store reads the parts one at a time. The file count is checked when the
// part past the limit starts, before its bytes are read, so at most maxFiles
// files count against the body cap.
func (m *UploadMiddleware) store(reader *multipart.Reader) ([]attachment.StoredFile, error) {
	stored := make([]attachment.StoredFile, 0, m.maxFiles)
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			return stored, nil
		}
		if err != nil {
			return stored, m.parseError(err)
		}

		if p.FileName() == "" {
			p.Close()
			continue
		}
		if p.FormName() != UploadField {
			p.Close()
			return stored, &uploadError{http.StatusBadRequest, "Champ de fichier inattendu."}
		}
		if len(stored) == m.maxFiles {
			p.Close()
			return stored, &uploadError{http.StatusBadRequest, fmt.Sprintf("Trop de fichiers. Maximum %d fichiers autorisés.", m.maxFiles)}
		}

		file, err := m.storeOne(p)
		p.Close()
		if err != nil {
			return stored, err
		}
		stored = append(stored, file)
	}
}

func (m *UploadMiddleware) storeOne(p *multipart.Part) (attachment.StoredFile, error) {
	filename := p.FileName()

	declared := normalizeMediaType(p.Header.Get("Content-Type"))
	if !allowedUploadTypes[declared] {
		return attachment.StoredFile{}, unsupportedType(filename)
	}

	data, err := io.ReadAll(io.LimitReader(p, m.maxFileSize+1))
	if err != nil {
		return attachment.StoredFile{}, m.parseError(err)
	}
	if int64(len(data)) > m.maxFileSize {
		return attachment.StoredFile{}, m.tooLarge()
	}

	if !allowedUploadTypes[normalizeMediaType(mimetype.Detect(data).String())] {
		return attachment.StoredFile{}, unsupportedType(filename)
	}

	name, path, err := m.files.Save(filename, bytes.NewReader(data))
	if err != nil {
		return attachment.StoredFile{}, err
	}

	return attachment.StoredFile{
		OriginalName: filename,
		StoredName:   name,
		Path:         path,
	}, nil
}

func (m *UploadMiddleware) parseError(err error) error {
	var maxBytes *http.MaxBytesError
	if stderrors.As(err, &maxBytes) || strings.Contains(err.Error(), "request body too large") {
		return m.tooLarge()
	}
	if stderrors.Is(err, http.ErrNotMultipart) || stderrors.Is(err, http.ErrMissingBoundary) {
		return &uploadError{http.StatusBadRequest, "Requête multipart attendue."}
	}
	return &uploadError{http.StatusBadRequest, err.Error()}
}

func (m *UploadMiddleware) tooLarge() error {
	return &uploadError{
		http.StatusRequestEntityTooLarge,
		fmt.Sprintf("Fichier trop volumineux. Taille maximale : %s.", units.BytesSize(float64(m.maxFileSize))),
	}
}

func (m *UploadMiddleware) reject(c *gin.Context, err error) {
	var ue *uploadError
	if !stderrors.As(err, &ue) {
		m.logger.Errorw("failed to store upload", "error", err)
		ue = &uploadError{http.StatusBadRequest, err.Error()}
	}
	utils.ErrorResponse(c, ue.status, ue.message)
	c.Abort()
}

func unsupportedType(filename string) error {
	return &uploadError{
		http.StatusBadRequest,
		fmt.Sprintf("Type de fichier non autorisé : %s. Formats acceptés : JPEG, PNG, PDF.", filename),
	}
}

// normalizeMediaType drops parameters and maps the image/jpg alias.
func normalizeMediaType(value string) string {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		mediaType = strings.TrimSpace(value)
	}
	mediaType = strings.ToLower(mediaType)
	if mediaType == "image/jpg" {
		return "image/jpeg"
	}
	return mediaType
}

// UploadedFiles returns what the upload middleware stored for this request.
func UploadedFiles(c *gin.Context) []attachment.StoredFile {
	v, ok := c.Get(constants.ContextKeyUploads)
	if !ok {
		return nil
	}
	files, _ := v.([]attachment.StoredFile)
	return files
}
