package scoring

// EmptyInputError indicates the extracted document text was empty or
// whitespace-only, so there is nothing to score. It is distinct from an
// extraction failure: the file was readable but carried no content.
type EmptyInputError struct {
	FileName string
}

func (e *EmptyInputError) Error() string {
	if e.FileName != "" {
		return "no scorable text extracted from " + e.FileName
	}
	return "no scorable text in document"
}
