package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrMissingDocument = errors.New("missing document payload")
	ErrInvalidDocument = errors.New("invalid document payload")
)

// ParseInvoiceRequest is the document-parse payload. PDFData carries the
// page image or single-page PDF as a base64 data URL (the shape browser
// FileReader.readAsDataURL produces); a bare base64 string is also accepted.
type ParseInvoiceRequest struct {
	PDFData  string `json:"pdfData" binding:"required"`
	FileName string `json:"fileName"`
}

// DecodeDocument strips the data-URL prefix, if any, and decodes the base64
// payload into raw document bytes.
func (r ParseInvoiceRequest) DecodeDocument() ([]byte, error) {
	data := strings.TrimSpace(r.PDFData)
	if data == "" {
		return nil, ErrMissingDocument
	}

	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, ",")
		if idx < 0 {
			return nil, ErrInvalidDocument
		}
		data = data[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, ErrInvalidDocument
	}
	if len(decoded) == 0 {
		return nil, ErrMissingDocument
	}
	return decoded, nil
}

// CategorizeRequest is the categorization-only payload used for issuers the
// user already tracks: no document, just the issuer name and whatever loose
// fields the caller already has.
type CategorizeRequest struct {
	Issuer       string                 `json:"issuer" binding:"required"`
	ParsedFields map[string]interface{} `json:"parsedFields"`
}
