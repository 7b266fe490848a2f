package views

import (
	"context"
	"errors"
	"testing"

	"github.com/username/fundfolio/src/models"
)

func TestDocumentsLoadScopedToFund(t *testing.T) {
	var receivedScope *int64
	api := &stubAPI{
		listDocuments: func(ctx context.Context, fundID *int64) ([]models.Document, error) {
			receivedScope = fundID
			return []models.Document{{ID: 1, FileName: "q1.pdf", ParsingStatus: "completed"}}, nil
		},
	}
	v := NewDocumentsView(api)
	scope := int64(6)
	v.Load(context.Background(), &scope)

	if receivedScope == nil || *receivedScope != 6 {
		t.Fatalf("expected fund scope 6, got %v", receivedScope)
	}
	if len(v.Documents) != 1 || v.Documents[0].FileName != "q1.pdf" {
		t.Fatalf("unexpected documents: %+v", v.Documents)
	}
}

func TestDocumentsLoadFailure(t *testing.T) {
	api := &stubAPI{
		listDocuments: func(ctx context.Context, fundID *int64) ([]models.Document, error) {
			return nil, errors.New("backend down")
		},
	}
	v := NewDocumentsView(api)
	v.Load(context.Background(), nil)

	if len(v.Documents) != 0 {
		t.Fatalf("expected empty list on failure")
	}
	if v.Notification == "" {
		t.Fatalf("expected a failure notification")
	}
}

func TestDocumentsDeleteRemovesLocally(t *testing.T) {
	api := &stubAPI{
		deleteDocument: func(ctx context.Context, documentID int64) (*models.DeleteResult, error) {
			return &models.DeleteResult{Message: "ok"}, nil
		},
	}
	v := NewDocumentsView(api)
	v.Documents = []models.Document{{ID: 1}, {ID: 2}}

	v.Delete(context.Background(), 1)

	if len(v.Documents) != 1 || v.Documents[0].ID != 2 {
		t.Fatalf("expected document 1 removed, got %+v", v.Documents)
	}
}

func TestDocumentsDeleteFailureKeepsList(t *testing.T) {
	api := &stubAPI{
		deleteDocument: func(ctx context.Context, documentID int64) (*models.DeleteResult, error) {
			return nil, errors.New("backend down")
		},
	}
	v := NewDocumentsView(api)
	v.Documents = []models.Document{{ID: 1}}

	v.Delete(context.Background(), 1)

	if len(v.Documents) != 1 {
		t.Fatalf("failed delete must leave the list unchanged")
	}
	if v.Notification == "" {
		t.Fatalf("expected a failure notification")
	}
}
