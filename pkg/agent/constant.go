package agent

import "time"

const (
	// DefaultAPIURL is the locally running analysis agent.
	DefaultAPIURL = "http://localhost:8000"

	// RunPath is the multipart analysis endpoint.
	RunPath = "/run"

	// DefaultTimeout bounds one analysis call.
	DefaultTimeout = 10 * time.Second

	// DateLayout is the date format of task_deadline and current_date.
	DateLayout = "2006-01-02"

	// PDFContentType is the content type of the file part.
	PDFContentType = "application/pdf"

	// Multipart field names.
	fieldFile      = "file"
	fieldOtherData = "other_data"
)

// Confidence levels accepted in the metadata envelope.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)
