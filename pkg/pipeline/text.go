package pipeline

import (
	"os"

	"injala/certguard/pkg/coi"
)

// ReadDocument sources the text of one ingested document. Files that
// cannot be read come back tagged ExtractionError so the rest of the
// pipeline can mark them errored instead of dropping them.
func ReadDocument(info coi.DocumentInfo) *coi.RawDocument {
	doc := &coi.RawDocument{
		FileName: info.FileName,
		FilePath: info.FilePath,
		Source:   info.Source,
	}

	data, err := os.ReadFile(info.FilePath)
	if err != nil {
		doc.ExtractionMethod = coi.ExtractionError
		doc.Error = "text extraction failed: " + err.Error()
		return doc
	}

	doc.ExtractedText = string(data)
	doc.ExtractionMethod = coi.ExtractionDirect
	doc.TextLength = len(doc.ExtractedText)
	return doc
}
