package views

import (
	"context"
	"fmt"

	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
)

// DocumentsView lists uploaded documents and their parsing status.
type DocumentsView struct {
	api fundapi.Service

	Documents    []models.Document
	FundID       *int64
	Notification string
}

func NewDocumentsView(api fundapi.Service) *DocumentsView {
	return &DocumentsView{api: api, Documents: []models.Document{}}
}

// Load fetches the documents, optionally scoped to one fund.
func (v *DocumentsView) Load(ctx context.Context, fundID *int64) {
	v.FundID = fundID
	docs, err := v.api.ListDocuments(ctx, fundID)
	if err != nil {
		logger.L.Warn("Failed to list documents", "error", err)
		v.Documents = []models.Document{}
		v.Notification = "Failed to fetch document data."
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}
	v.Documents = docs
}

// Delete removes a document on the backend and from the local list.
func (v *DocumentsView) Delete(ctx context.Context, documentID int64) {
	if _, err := v.api.DeleteDocument(ctx, documentID); err != nil {
		logger.L.Warn("Failed to delete document", "documentID", documentID, "error", err)
		v.Notification = "Failed to delete the document."
		return
	}

	kept := v.Documents[:0]
	for _, d := range v.Documents {
		if d.ID != documentID {
			kept = append(kept, d)
		}
	}
	v.Documents = kept
	v.Notification = fmt.Sprintf("Document %d deleted successfully.", documentID)
}

// ClearNotification dismisses the current notification.
func (v *DocumentsView) ClearNotification() {
	v.Notification = ""
}
