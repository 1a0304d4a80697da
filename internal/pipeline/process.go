package pipeline

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"catalogdiff/internal"
	"catalogdiff/internal/util"
)

// RunStore persists the outcome of comparison runs.
type RunStore interface {
	InsertRun(rec internal.RunRecord) error
}

type InputFile struct {
	Name string
	Data []byte
}

func (f InputFile) Format() Format { return FormatFromName(f.Name) }

type RunInput struct {
	File1      InputFile
	File2      InputFile
	Exclusions *InputFile
	Currency   string
}

type Outputs struct {
	RunID      string
	Cleaned1   Cleaned
	Cleaned2   Cleaned
	Comparison ComparisonResult
	Excluded   int
	Duration   time.Duration

	Cleaned1XLSX      []byte
	Cleaned2XLSX      []byte
	NewItemsXLSX      []byte
	InactiveItemsXLSX []byte
}

// Files lists the four workbooks in archive order: cleaned first, then comparison.
func (o Outputs) Files() []OutputFile {
	return []OutputFile{
		{Path: CleanedFile1Path, Data: o.Cleaned1XLSX},
		{Path: CleanedFile2Path, Data: o.Cleaned2XLSX},
		{Path: NewItemsPath, Data: o.NewItemsXLSX},
		{Path: InactiveItemsPath, Data: o.InactiveItemsXLSX},
	}
}

type Service struct {
	store  RunStore
	logger *slog.Logger
}

// NewService wires a Service. store may be nil to skip the run ledger.
func NewService(store RunStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Run cleans both files against one shared exclusion set, diffs them and
// encodes the four result workbooks. A failure on either primary file
// aborts the run with a *FileError and no outputs.
func (s *Service) Run(in RunInput) (Outputs, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID)
	log.Info("comparison started", "file1", in.File1.Name, "file2", in.File2.Name, "currency", in.Currency)

	rec := internal.RunRecord{
		ID:       runID,
		File1:    in.File1.Name,
		File2:    in.File2.Name,
		Currency: in.Currency,
	}
	if in.Exclusions != nil {
		rec.ExclusionFile = util.StringPtr(in.Exclusions.Name)
	}

	out, err := s.run(in, &rec, log)
	elapsed := time.Since(start)
	rec.DurationMs = elapsed.Milliseconds()
	if err != nil {
		rec.Status = internal.RunFailed
		rec.Error = util.StringPtr(err.Error())
		log.Error("comparison failed", "error", err, "duration_ms", rec.DurationMs)
		s.record(rec, log)
		return Outputs{}, err
	}

	out.RunID = runID
	out.Duration = elapsed
	rec.Status = internal.RunOK
	log.Info("comparison finished",
		"new_items", rec.NewItems,
		"inactive_items", rec.InactiveItems,
		"excluded", rec.Excluded,
		"duration_ms", rec.DurationMs,
	)
	s.record(rec, log)
	return out, nil
}

func (s *Service) run(in RunInput, rec *internal.RunRecord, log *slog.Logger) (Outputs, error) {
	var exclusions ExclusionSet
	if in.Exclusions != nil {
		set, err := LoadExclusions(in.Exclusions.Data)
		if err != nil {
			log.Error("ignoring exclusion file", "file", in.Exclusions.Name, "error", err)
		}
		exclusions = set
		rec.Excluded = set.Len()
	}

	var clean1, clean2 Cleaned
	var err1, err2 error
	var g errgroup.Group
	g.Go(func() error {
		clean1, err1 = CleanFile(in.File1.Data, in.File1.Format(), in.Currency, exclusions)
		return fileError(in.File1.Name, err1)
	})
	g.Go(func() error {
		clean2, err2 = CleanFile(in.File2.Data, in.File2.Format(), in.Currency, exclusions)
		return fileError(in.File2.Name, err2)
	})
	waitErr := g.Wait()

	var tmpl1, tmpl2 internal.TemplateName
	if err1 == nil {
		tmpl1 = clean1.Template.Name()
		rec.Template1, rec.Rows1 = &tmpl1, clean1.Table.Rows()
		log.Debug("file cleaned", "file", in.File1.Name, "template", tmpl1, "rows", clean1.Table.Rows(), "source_rows", clean1.SourceRows)
	}
	if err2 == nil {
		tmpl2 = clean2.Template.Name()
		rec.Template2, rec.Rows2 = &tmpl2, clean2.Table.Rows()
		log.Debug("file cleaned", "file", in.File2.Name, "template", tmpl2, "rows", clean2.Table.Rows(), "source_rows", clean2.SourceRows)
	}
	if waitErr != nil {
		// Wait reports whichever file failed first in time; file 1 wins when both did.
		if err1 != nil {
			return Outputs{}, fileError(in.File1.Name, err1)
		}
		return Outputs{}, waitErr
	}

	if clean1.Template != clean2.Template {
		log.Warn("files use different templates, keys are compared positionally", "template1", tmpl1, "template2", tmpl2)
	}

	cmp := Compare(clean1.Table, clean2.Table)
	rec.NewItems, rec.InactiveItems = cmp.NewItems.Rows(), cmp.InactiveItems.Rows()

	var err error
	out := Outputs{Cleaned1: clean1, Cleaned2: clean2, Comparison: cmp, Excluded: exclusions.Len()}
	if out.Cleaned1XLSX, err = ExportXLSX(clean1.Table); err != nil {
		return Outputs{}, err
	}
	if out.Cleaned2XLSX, err = ExportXLSX(clean2.Table); err != nil {
		return Outputs{}, err
	}
	if out.NewItemsXLSX, err = ExportXLSX(cmp.NewItems); err != nil {
		return Outputs{}, err
	}
	if out.InactiveItemsXLSX, err = ExportXLSX(cmp.InactiveItems); err != nil {
		return Outputs{}, err
	}
	return out, nil
}

func (s *Service) record(rec internal.RunRecord, log *slog.Logger) {
	if s.store == nil {
		return
	}
	if err := s.store.InsertRun(rec); err != nil {
		log.Warn("run ledger write failed", "error", err)
	}
}
