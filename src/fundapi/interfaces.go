package fundapi

import (
	"context"
	"io"

	"github.com/username/fundfolio/src/models"
)

// Service is the surface of the analysis backend the dashboard depends on.
// Every call is one-shot: no retries, no caching, no client-side timeout.
// Callers own loading-state and error-state presentation.
type Service interface {
	ListFunds(ctx context.Context) ([]models.Fund, error)
	GetFund(ctx context.Context, id int64) (*models.Fund, error)
	CreateFund(ctx context.Context, payload CreateFundPayload) (*models.Fund, error)
	DeleteFund(ctx context.Context, id int64) (*models.DeleteResult, error)
	UploadDocument(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error)
	GetFundMetrics(ctx context.Context, fundID int64) (*models.MetricsResponse, error)
	GetAllTransactions(ctx context.Context, fundID int64) ([]models.Transaction, error)
	GetFundTransactions(ctx context.Context, fundID int64, txType string, page, limit int) (*models.TransactionPage, error)
	SendChatMessage(ctx context.Context, query string, fundID *int64) (*models.ChatReply, error)
	ListDocuments(ctx context.Context, fundID *int64) ([]models.Document, error)
	GetDocumentStatus(ctx context.Context, documentID int64) (*models.DocumentStatus, error)
	DeleteDocument(ctx context.Context, documentID int64) (*models.DeleteResult, error)
}

// CreateFundPayload is the body of POST /funds. Optional fields are omitted
// when blank.
type CreateFundPayload struct {
	Name        string  `json:"name"`
	GPName      *string `json:"gp_name,omitempty"`
	FundType    *string `json:"fund_type,omitempty"`
	VintageYear *int    `json:"vintage_year,omitempty"`
}
