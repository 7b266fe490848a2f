package models

// TransactionSource is the closed set of category tags the backend attaches
// to a transaction. Anything else is ignored by the dashboard.
type TransactionSource string

const (
	SourceCapitalCall  TransactionSource = "capital_call"
	SourceDistribution TransactionSource = "distribution"
	SourceAdjustment   TransactionSource = "adjustment"
)

// Fund is a fund record as served by the backend. The optional fields are
// pointers so blank values are omitted from create payloads.
type Fund struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	GPName      *string `json:"gp_name,omitempty"`
	FundType    *string `json:"fund_type,omitempty"`
	VintageYear *int    `json:"vintage_year,omitempty"`
}

// Transaction is read-only from the dashboard's perspective.
type Transaction struct {
	ID          int64             `json:"id"`
	Date        string            `json:"date"`
	Type        string            `json:"type"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Source      TransactionSource `json:"source"`
}

// CashflowEvent is one dated cash-flow entry inside a metrics bundle.
type CashflowEvent struct {
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Metrics holds the scalar ratios the backend computes per fund.
type Metrics struct {
	IRR float64 `json:"IRR"`
	PIC float64 `json:"PIC"`
	DPI float64 `json:"DPI"`
}

// MetricsResponse is the payload of GET /funds/{id}/metrics.
type MetricsResponse struct {
	Metrics       Metrics         `json:"metrics"`
	CapitalCalls  []CashflowEvent `json:"capital_calls"`
	Distributions []CashflowEvent `json:"distributions"`
	Adjustments   []CashflowEvent `json:"adjustments"`
}

// ChartPoint is one point of the cumulative cashflow series. The series only
// exists for the lifetime of a detail-view render and is never persisted.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ChatSender identifies who authored a chat message.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one entry of the in-memory chat log.
type ChatMessage struct {
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}

// ChatReply is the payload of POST /chat/query. The backend answers either in
// "answer" or, on degraded paths, in "message".
type ChatReply struct {
	Answer  string `json:"answer"`
	Message string `json:"message"`
}

// UploadResult is the payload of POST /documents/upload.
type UploadResult struct {
	DocumentID int64  `json:"document_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// DeleteResult is the confirmation payload of DELETE endpoints.
type DeleteResult struct {
	Message string `json:"message"`
}

// Document describes an uploaded report and its parsing state.
type Document struct {
	ID            int64  `json:"id"`
	FundID        *int64 `json:"fund_id"`
	FileName      string `json:"file_name"`
	ParsingStatus string `json:"parsing_status"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// DocumentStatus is the payload of GET /documents/{id}/status.
type DocumentStatus struct {
	DocumentID   int64  `json:"document_id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// TransactionPage is one page of the per-type transaction listing.
type TransactionPage struct {
	Items []Transaction `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}
