package internal

type RunStatus string

const (
	RunOK     RunStatus = "ok"
	RunFailed RunStatus = "failed"
)

type TemplateName string

const (
	TemplateISBN TemplateName = "ISBN"
	TemplateEAN  TemplateName = "EAN"
)

// RunRecord is one row of the comparison run ledger.
type RunRecord struct {
	ID            string
	File1         string
	File2         string
	ExclusionFile *string
	Currency      string
	Template1     *TemplateName
	Template2     *TemplateName
	Rows1         int
	Rows2         int
	Excluded      int
	NewItems      int
	InactiveItems int
	Status        RunStatus
	Error         *string
	DurationMs    int64
	CreatedAt     string
}
