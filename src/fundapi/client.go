package fundapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
	"golang.org/x/net/publicsuffix"
)

// APIError carries a non-2xx backend response. Message is the raw response
// body when present, or a generic fallback when the body was empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Service talking to the backend rooted at baseURL
// (e.g. "http://localhost:8000/api"). The underlying http.Client carries a
// cookie jar but deliberately no timeout: every call is one-shot and the
// caller decides how long to wait via its context.
func New(baseURL string) (Service, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
	}, nil
}

// do performs one request and decodes the JSON body into result (when result
// is non-nil). Any non-2xx status becomes an *APIError with the body text.
func (c *client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to backend failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		if readErr != nil || msg == "" {
			msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		logger.L.Warn("Backend returned non-success status",
			"method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

func (c *client) getJSON(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *client) postJSON(ctx context.Context, path string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *client) deleteJSON(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

func (c *client) ListFunds(ctx context.Context) ([]models.Fund, error) {
	var funds []models.Fund
	if err := c.getJSON(ctx, "/funds", &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

func (c *client) GetFund(ctx context.Context, id int64) (*models.Fund, error) {
	var fund models.Fund
	if err := c.getJSON(ctx, fmt.Sprintf("/funds/%d", id), &fund); err != nil {
		return nil, err
	}
	return &fund, nil
}

func (c *client) CreateFund(ctx context.Context, payload CreateFundPayload) (*models.Fund, error) {
	var fund models.Fund
	if err := c.postJSON(ctx, "/funds", payload, &fund); err != nil {
		return nil, err
	}
	return &fund, nil
}

func (c *client) DeleteFund(ctx context.Context, id int64) (*models.DeleteResult, error) {
	var result models.DeleteResult
	if err := c.deleteJSON(ctx, fmt.Sprintf("/funds/%d", id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) UploadDocument(ctx context.Context, file io.Reader, filename string, fundID int64) (*models.UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart file field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file into multipart body: %w", err)
	}
	if err := writer.WriteField("fund_id", strconv.FormatInt(fundID, 10)); err != nil {
		return nil, fmt.Errorf("failed to write fund_id field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result models.UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) GetFundMetrics(ctx context.Context, fundID int64) (*models.MetricsResponse, error) {
	var resp models.MetricsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/funds/%d/metrics", fundID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAllTransactions fetches every transaction of a fund. A response whose
// "transactions" field is not an array is treated as empty rather than as an
// error.
func (c *client) GetAllTransactions(ctx context.Context, fundID int64) ([]models.Transaction, error) {
	var raw struct {
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/funds/%d/transactions/all", fundID), &raw); err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if len(raw.Transactions) > 0 {
		if err := json.Unmarshal(raw.Transactions, &transactions); err != nil {
			logger.L.Warn("Invalid transaction data format, treating as empty",
				"fundID", fundID, "error", err)
			return []models.Transaction{}, nil
		}
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

func (c *client) GetFundTransactions(ctx context.Context, fundID int64, txType string, page, limit int) (*models.TransactionPage, error) {
	params := url.Values{}
	if txType != "" {
		params.Set("transaction_type", txType)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var result models.TransactionPage
	path := fmt.Sprintf("/funds/%d/transactions?%s", fundID, params.Encode())
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) SendChatMessage(ctx context.Context, query string, fundID *int64) (*models.ChatReply, error) {
	payload := struct {
		Query  string `json:"query"`
		FundID *int64 `json:"fund_id,omitempty"`
	}{Query: query, FundID: fundID}

	var reply models.ChatReply
	if err := c.postJSON(ctx, "/chat/query", payload, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *client) ListDocuments(ctx context.Context, fundID *int64) ([]models.Document, error) {
	path := "/documents"
	if fundID != nil {
		path = fmt.Sprintf("/documents?fund_id=%d", *fundID)
	}
	var docs []models.Document
	if err := c.getJSON(ctx, path, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *client) GetDocumentStatus(ctx context.Context, documentID int64) (*models.DocumentStatus, error) {
	var status models.DocumentStatus
	if err := c.getJSON(ctx, fmt.Sprintf("/documents/%d/status", documentID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *client) DeleteDocument(ctx context.Context, documentID int64) (*models.DeleteResult, error) {
	var result models.DeleteResult
	if err := c.deleteJSON(ctx, fmt.Sprintf("/documents/%d", documentID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
