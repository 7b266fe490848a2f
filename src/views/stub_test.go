package views

import (
	"context"
	"errors"
	"io"

	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/models"
)

// stubAPI implements fundapi.Service with overridable functions so each test
// controls exactly the calls its view makes. Unset operations fail.
type stubAPI struct {
	listFunds           func(ctx context.Context) ([]models.Fund, error)
	getFund             func(ctx context.Context, id int64) (*models.Fund, error)
	createFund          func(ctx context.Context, payload fundapi.CreateFundPayload) (*models.Fund, error)
	deleteFund          func(ctx context.Context, id int64) (*models.DeleteResult, error)
	uploadDocument      func(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error)
	getFundMetrics      func(ctx context.Context, fundID int64) (*models.MetricsResponse, error)
	getAllTransactions  func(ctx context.Context, fundID int64) ([]models.Transaction, error)
	getFundTransactions func(ctx context.Context, fundID int64, txType string, page, limit int) (*models.TransactionPage, error)
	sendChatMessage     func(ctx context.Context, query string, fundID *int64) (*models.ChatReply, error)
	listDocuments       func(ctx context.Context, fundID *int64) ([]models.Document, error)
	getDocumentStatus   func(ctx context.Context, documentID int64) (*models.DocumentStatus, error)
	deleteDocument      func(ctx context.Context, documentID int64) (*models.DeleteResult, error)
}

var errStubUnset = errors.New("stub operation not configured")

func (s *stubAPI) ListFunds(ctx context.Context) ([]models.Fund, error) {
	if s.listFunds == nil {
		return nil, errStubUnset
	}
	return s.listFunds(ctx)
}

func (s *stubAPI) GetFund(ctx context.Context, id int64) (*models.Fund, error) {
	if s.getFund == nil {
		return nil, errStubUnset
	}
	return s.getFund(ctx, id)
}

func (s *stubAPI) CreateFund(ctx context.Context, payload fundapi.CreateFundPayload) (*models.Fund, error) {
	if s.createFund == nil {
		return nil, errStubUnset
	}
	return s.createFund(ctx, payload)
}

func (s *stubAPI) DeleteFund(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if s.deleteFund == nil {
		return nil, errStubUnset
	}
	return s.deleteFund(ctx, id)
}

func (s *stubAPI) UploadDocument(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
	if s.uploadDocument == nil {
		return nil, errStubUnset
	}
	return s.uploadDocument(ctx, file, filename, fundID)
}

func (s *stubAPI) GetFundMetrics(ctx context.Context, fundID int64) (*models.MetricsResponse, error) {
	if s.getFundMetrics == nil {
		return nil, errStubUnset
	}
	return s.getFundMetrics(ctx, fundID)
}

func (s *stubAPI) GetAllTransactions(ctx context.Context, fundID int64) ([]models.Transaction, error) {
	if s.getAllTransactions == nil {
		return nil, errStubUnset
	}
	return s.getAllTransactions(ctx, fundID)
}

func (s *stubAPI) GetFundTransactions(ctx context.Context, fundID int64, txType string, page, limit int) (*models.TransactionPage, error) {
	if s.getFundTransactions == nil {
		return nil, errStubUnset
	}
	return s.getFundTransactions(ctx, fundID, txType, page, limit)
}

func (s *stubAPI) SendChatMessage(ctx context.Context, query string, fundID *int64) (*models.ChatReply, error) {
	if s.sendChatMessage == nil {
		return nil, errStubUnset
	}
	return s.sendChatMessage(ctx, query, fundID)
}

func (s *stubAPI) ListDocuments(ctx context.Context, fundID *int64) ([]models.Document, error) {
	if s.listDocuments == nil {
		return nil, errStubUnset
	}
	return s.listDocuments(ctx, fundID)
}

func (s *stubAPI) GetDocumentStatus(ctx context.Context, documentID int64) (*models.DocumentStatus, error) {
	if s.getDocumentStatus == nil {
		return nil, errStubUnset
	}
	return s.getDocumentStatus(ctx, documentID)
}

func (s *stubAPI) DeleteDocument(ctx context.Context, documentID int64) (*models.DeleteResult, error) {
	if s.deleteDocument == nil {
		return nil, errStubUnset
	}
	return s.deleteDocument(ctx, documentID)
}
