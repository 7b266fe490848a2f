package views

import (
	"context"
	"io"

	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
)

// UploadStatus is the tri-state outcome marker of the upload screen. It is
// sticky until the next upload attempt.
type UploadStatus string

const (
	UploadIdle    UploadStatus = "idle"
	UploadSuccess UploadStatus = "success"
	UploadError   UploadStatus = "error"
)

// UploadView owns the document upload screen: the fund selector, the chosen
// file name, the in-progress flag and the sticky status.
type UploadView struct {
	api fundapi.Service

	Funds     []models.Fund
	FundID    int64
	FileName  string
	Uploading bool
	Status    UploadStatus
}

func NewUploadView(api fundapi.Service) *UploadView {
	return &UploadView{api: api, Status: UploadIdle}
}

// LoadFunds fills the fund selector. Failures leave it empty.
func (v *UploadView) LoadFunds(ctx context.Context) {
	funds, err := v.api.ListFunds(ctx)
	if err != nil {
		logger.L.Warn("Failed to fetch funds for upload view", "error", err)
		return
	}
	v.Funds = funds
}

// SelectFund records the chosen target fund. Zero means none selected.
func (v *UploadView) SelectFund(fundID int64) {
	v.FundID = fundID
}

// Upload submits the document. Without both a fund and a file the status
// goes straight to error and no network call is made. On success the
// selected file is cleared.
func (v *UploadView) Upload(ctx context.Context, file io.Reader, filename string) {
	if file == nil || filename == "" || v.FundID == 0 {
		v.Status = UploadError
		return
	}

	v.Uploading = true
	v.Status = UploadIdle
	v.FileName = filename

	_, err := v.api.UploadDocument(ctx, file, filename, v.FundID)
	v.Uploading = false
	if err != nil {
		logger.L.Warn("Document upload failed", "fundID", v.FundID, "filename", filename, "error", err)
		v.Status = UploadError
		return
	}

	v.FileName = ""
	v.Status = UploadSuccess
}
