package extract

// Entity labels consumed from recognizers. Other labels are ignored.
const (
	LabelOrganization = "ORG"
	LabelDate         = "DATE"
	LabelMoney        = "MONEY"
)

// Entity is a labeled text span produced by an entity recognizer.
type Entity struct {
	// Label is the entity class (e.g. "ORG", "DATE", "MONEY").
	Label string

	// Text is the matched span.
	Text string
}

// Recognizer supplies labeled entity spans for a document's text. It is
// an optional collaborator: the extractor works without one, and a
// recognizer failure degrades silently to omission of the informational
// fields rather than failing extraction.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// NopRecognizer is a Recognizer that returns no entities. Tests inject
// it to verify that extraction is unaffected by recognizer absence.
type NopRecognizer struct{}

// Recognize implements Recognizer.
func (NopRecognizer) Recognize(string) ([]Entity, error) { return nil, nil }
