// Package payment builds the UPI payment hand-off: the upi:// URI, its QR
// code image, and the session state carried between checkout and the
// payment confirmation step.
package payment

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultNote is the transaction note attached to every payment request.
const DefaultNote = "Restaurant Order"

// URI builds the upi://pay request string for the given payee and amount.
// All parameters are percent-encoded and the amount carries two decimals.
func URI(payeeID, payeeName string, amount float64, note string) string {
	if note == "" {
		note = DefaultNote
	}
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=%s",
		escape(payeeID),
		escape(payeeName),
		escape(fmt.Sprintf("%.2f", amount)),
		escape(note),
	)
}

// QRCodePNG renders the payment URI as a PNG of the given pixel size, using
// the highest error-correction level so worn screens still scan.
func QRCodePNG(uri string, size int) ([]byte, error) {
	png, err := qrcode.Encode(uri, qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment QR code: %w", err)
	}
	return png, nil
}

// escape percent-encodes like encodeURIComponent: spaces become %20, not +.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
