package extraction

import (
	"archive/zip"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Result carries the extracted text and the page count used by the
// format scorer. PageCount is always at least 1.
type Result struct {
	Text      string
	PageCount int
}

// docxLinesPerPage is the rough line density used to estimate page counts
// for DOCX files, which carry no page metadata in document.xml.
const docxLinesPerPage = 30

// SupportedExtension reports whether ext (including the dot, any case) is
// a resume format this package can extract.
func SupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}

// Extract dispatches on the file extension and returns the document's
// plain text and page count. The text keeps line breaks so downstream
// line-oriented heuristics still work.
func Extract(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return nil, &UnsupportedFormatError{Extension: filepath.Ext(path)}
	}
}

// extractPDF concatenates the plain text of every page. Pages that fail to
// decode are skipped rather than failing the whole document.
func extractPDF(path string) (*Result, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	defer f.Close()

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if pageCount < 1 {
		pageCount = 1
	}
	return &Result{Text: strings.TrimSpace(sb.String()), PageCount: pageCount}, nil
}

// extractDOCX reads word/document.xml from the zip container, converts
// paragraph boundaries to newlines and strips the remaining markup. The
// page count is estimated from line density since DOCX has none.
func extractDOCX(path string) (*Result, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &ReadError{Path: path, Cause: err}
		}
		docXML, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ReadError{Path: path, Cause: err}
		}
		return docxResult(docXML), nil
	}
	return nil, &ReadError{Path: path, Cause: errMissingDocumentXML}
}

var (
	xmlTags            = regexp.MustCompile(`<[^>]+>`)
	horizontalSpaceRun = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// docxResult converts raw document.xml bytes into extracted text plus an
// estimated page count.
func docxResult(docXML []byte) *Result {
	content := string(docXML)
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTags.ReplaceAllString(content, " ")
	content = collapseSpaces(content)

	lineCount := 0
	for _, ln := range strings.Split(content, "\n") {
		if strings.TrimSpace(ln) != "" {
			lineCount++
		}
	}
	pageCount := (lineCount + docxLinesPerPage - 1) / docxLinesPerPage
	if pageCount < 1 {
		pageCount = 1
	}
	return &Result{Text: content, PageCount: pageCount}
}

// collapseSpaces squeezes horizontal whitespace runs but preserves line
// breaks, which the signal extractor relies on.
func collapseSpaces(s string) string {
	s = horizontalSpaceRun.ReplaceAllString(s, " ")
	var lines []string
	for _, ln := range strings.Split(s, "\n") {
		lines = append(lines, strings.TrimSpace(ln))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var errMissingDocumentXML = &missingPartError{part: "word/document.xml"}

type missingPartError struct {
	part string
}

func (e *missingPartError) Error() string {
	return "no " + e.part + " found in archive"
}
