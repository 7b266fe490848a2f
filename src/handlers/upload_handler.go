package handlers

import (
	"net/http"
	"strconv"

	"github.com/username/fundfolio/src/config"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
	"github.com/username/fundfolio/src/security/validation"
	"github.com/username/fundfolio/src/session"
	"github.com/username/fundfolio/src/views"
)

type UploadHandler struct {
	sessions *session.Manager
}

func NewUploadHandler(sessions *session.Manager) *UploadHandler {
	return &UploadHandler{sessions: sessions}
}

type uploadPageData struct {
	CSRFToken string
	Funds     []models.Fund
	FundID    int64
	Status    views.UploadStatus
	Uploading bool
}

// HandleUploadPage renders the document upload screen.
func (h *UploadHandler) HandleUploadPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	sess.Upload.LoadFunds(r.Context())
	render(w, "upload", uploadPageData{
		CSRFToken: EnsureCSRFToken(w, r, config.Cfg.CSRFAuthKey),
		Funds:     sess.Upload.Funds,
		FundID:    sess.Upload.FundID,
		Status:    sess.Upload.Status,
		Uploading: sess.Upload.Uploading,
	})
}

// HandleUpload submits a PDF for the selected fund. Missing fund or file, or
// a file that fails the PDF checks, yields the error status without a
// backend call.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large",
			"error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		sess.Upload.Status = views.UploadError
		http.Redirect(w, r, "/upload", http.StatusSeeOther)
		return
	}

	if fundID, err := strconv.ParseInt(r.FormValue("fund_id"), 10, 64); err == nil {
		sess.Upload.SelectFund(fundID)
	} else {
		sess.Upload.SelectFund(0)
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		// No file chosen: the view rejects the attempt locally.
		sess.Upload.Upload(r.Context(), nil, "")
		http.Redirect(w, r, "/upload", http.StatusSeeOther)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		sess.Upload.Status = views.UploadError
		http.Redirect(w, r, "/upload", http.StatusSeeOther)
		return
	}

	if err := validation.ValidateFilename(fileHeader.Filename); err != nil {
		logger.L.Warn("Rejected non-PDF upload", "filename", fileHeader.Filename, "error", err)
		sess.Upload.Status = views.UploadError
		http.Redirect(w, r, "/upload", http.StatusSeeOther)
		return
	}
	if clientType := fileHeader.Header.Get("Content-Type"); clientType != "" {
		if err := validation.ValidateClientContentType(clientType); err != nil {
			sess.Upload.Status = views.UploadError
			http.Redirect(w, r, "/upload", http.StatusSeeOther)
			return
		}
	}
	if err := validation.ValidatePDFMagicBytes(file); err != nil {
		logger.L.Warn("PDF magic byte check failed", "filename", fileHeader.Filename, "error", err)
		sess.Upload.Status = views.UploadError
		http.Redirect(w, r, "/upload", http.StatusSeeOther)
		return
	}

	sess.Upload.Upload(r.Context(), file, fileHeader.Filename)
	http.Redirect(w, r, "/upload", http.StatusSeeOther)
}
