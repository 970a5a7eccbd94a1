package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderCertificatePDF produces the single-page landscape A4 certificate:
// bordered frame, heading, student name, course title, issue date and a
// signature placeholder. The layout is fixed.
func RenderCertificatePDF(studentName, courseTitle string, issuedOn time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	// Frame
	pdf.SetLineWidth(6)
	pdf.SetDrawColor(0, 198, 255) // #00C6FF
	pdf.Rect(40, 40, width-80, height-80, "D")

	centered := func(y float64, text string) {
		pdf.Text((width-pdf.GetStringWidth(text))/2, y, text)
	}

	pdf.SetFont("Helvetica", "B", 36)
	pdf.SetTextColor(0, 198, 255)
	centered(100, "Certificate of Completion")

	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(0, 0, 0)
	centered(160, "This is to certify that")

	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(0, 0, 139) // dark blue
	centered(210, studentName)

	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(0, 0, 0)
	centered(260, "has successfully completed the course")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0, 114, 255) // #0072ff
	centered(310, courseTitle)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(128, 128, 128)
	centered(370, "Issued on: "+issuedOn.Format("02 January 2006"))

	pdf.SetFont("Helvetica", "I", 12)
	pdf.Text(100, height-80, "Signature:")
	pdf.SetLineWidth(1)
	pdf.Line(160, height-82, 300, height-82)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CertificateFileName derives a stable, collision-safe file name from the
// natural key. The raw course title never reaches the filesystem; it is
// slugged and suffixed with a hash of (student, course).
func CertificateFileName(studentID, courseID uint, courseTitle string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%d", studentID, courseID)))
	return fmt.Sprintf("%s-%s.pdf", Slugify(courseTitle), hex.EncodeToString(sum[:5]))
}

// Slugify lowercases and reduces a string to hyphen-separated alphanumeric
// runs, capped at 40 characters.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		if b.Len() >= 40 {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "certificate"
	}
	return slug
}
