package views

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/username/fundfolio/src/models"
)

func TestUploadWithoutFundNeverCallsBackend(t *testing.T) {
	called := false
	api := &stubAPI{
		uploadDocument: func(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
			called = true
			return &models.UploadResult{}, nil
		},
	}
	v := NewUploadView(api)

	v.Upload(context.Background(), strings.NewReader("%PDF-"), "report.pdf")

	if called {
		t.Fatalf("upload without a selected fund must not reach the backend")
	}
	if v.Status != UploadError {
		t.Fatalf("expected error status, got %q", v.Status)
	}
}

func TestUploadWithoutFileNeverCallsBackend(t *testing.T) {
	called := false
	api := &stubAPI{
		uploadDocument: func(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
			called = true
			return &models.UploadResult{}, nil
		},
	}
	v := NewUploadView(api)
	v.SelectFund(1)

	v.Upload(context.Background(), nil, "")

	if called {
		t.Fatalf("upload without a file must not reach the backend")
	}
	if v.Status != UploadError {
		t.Fatalf("expected error status, got %q", v.Status)
	}
}

func TestUploadSuccessClearsFile(t *testing.T) {
	api := &stubAPI{
		uploadDocument: func(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
			if fundID != 2 || filename != "report.pdf" {
				t.Fatalf("unexpected upload args: fund=%d file=%q", fundID, filename)
			}
			return &models.UploadResult{DocumentID: 1, Status: "pending"}, nil
		},
	}
	v := NewUploadView(api)
	v.SelectFund(2)

	v.Upload(context.Background(), strings.NewReader("%PDF-"), "report.pdf")

	if v.Status != UploadSuccess {
		t.Fatalf("expected success status, got %q", v.Status)
	}
	if v.FileName != "" {
		t.Fatalf("successful upload must clear the selected file")
	}
	if v.Uploading {
		t.Fatalf("uploading flag must clear")
	}
}

func TestUploadFailureStatusIsSticky(t *testing.T) {
	api := &stubAPI{
		uploadDocument: func(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
			return nil, errors.New("backend rejected the file")
		},
	}
	v := NewUploadView(api)
	v.SelectFund(2)

	v.Upload(context.Background(), strings.NewReader("%PDF-"), "report.pdf")
	if v.Status != UploadError {
		t.Fatalf("expected error status, got %q", v.Status)
	}

	// Status stays until the next attempt.
	if v.Status != UploadError {
		t.Fatalf("status must be sticky")
	}

	// Next attempt resets and may succeed.
	api.uploadDocument = func(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
		return &models.UploadResult{}, nil
	}
	v.Upload(context.Background(), strings.NewReader("%PDF-"), "report.pdf")
	if v.Status != UploadSuccess {
		t.Fatalf("expected success on retry, got %q", v.Status)
	}
}
