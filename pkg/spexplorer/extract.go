package spexplorer

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/parser"
)

// Extract opens a workbook and extracts its structured document. The
// returned error is an *ExtractError whose kind the batch runner can
// act on; all heuristic ambiguity is absorbed into confidence scores
// and raw fallbacks instead.
func Extract(path string, identity models.ClientIdentity, opts Options) (*models.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &ExtractError{Path: path, Kind: FailureOther, Err: ErrFileNotFound}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewExtractError(path, err)
	}
	defer f.Close()

	return ExtractFile(f, path, identity, opts)
}

// ExtractFile extracts the structured document from an already-opened
// workbook. It performs no I/O beyond reading the workbook's cell,
// merge, and style data; each call owns its own grids and sections, so
// concurrent calls on independent workbooks need no coordination.
func ExtractFile(f *excelize.File, path string, identity models.ClientIdentity, opts Options) (*models.Document, error) {
	logger := opts.logger()
	weights := opts.weights()

	doc := &models.Document{
		ClientID:   identity.ClientID,
		ClientName: identity.ClientName,
		Country:    identity.Country,
		Product:    identity.Product,
		FileInfo:   fileInfo(path, identity),
		Processing: models.ProcessingMeta{
			ProcessedAt:  time.Now().UTC(),
			ExtractionID: uuid.NewString(),
			Status:       "success",
		},
	}

	sectionSeq := 0
	for _, sheetName := range f.GetSheetList() {
		sheet := &models.Sheet{SheetName: sheetName, Sections: []*models.Section{}}
		doc.Sheets = append(doc.Sheets, sheet)

		raw, err := parser.ReadSheet(f, sheetName, opts.ShouldIncludeFormatting())
		if err != nil {
			warn(doc, logger, sheetName, fmt.Sprintf("unreadable sheet: %v", err))
			continue
		}

		grid, warnings := parser.BuildGrid(raw.Cells, raw.Merges)
		for _, w := range warnings {
			warn(doc, logger, sheetName, w)
		}

		analyzer := parser.NewAnalyzer(weights, keptMerges(raw.Merges, grid), raw.Formats)
		for _, span := range parser.Segment(grid) {
			cls := analyzer.Classify(grid, span)
			section := analyzer.BuildSection(grid, span, cls)
			section.SectionID = fmt.Sprintf("section_%d", sectionSeq)
			sectionSeq++
			sheet.Sections = append(sheet.Sections, section)
		}
	}

	doc.PatternSignature = parser.Signature(doc)
	return doc, nil
}

// fileInfo builds workbook provenance from the path and the upstream
// identity.
func fileInfo(path string, identity models.ClientIdentity) models.FileInfo {
	info := models.FileInfo{
		FilePath:    path,
		Filename:    identity.Filename,
		IsLatest:    identity.IsLatest,
		FormVariant: identity.FormVariant,
	}
	if !identity.ExtractedDate.IsZero() {
		info.ExtractedDate = identity.ExtractedDate.Format(time.RFC3339)
	}
	return info
}

// keptMerges filters out the ranges the grid builder dropped so the
// classifier never reasons about invalid merges.
func keptMerges(merges []models.MergeRange, g *parser.Grid) []models.MergeRange {
	kept := make([]models.MergeRange, 0, len(merges))
	for _, m := range merges {
		if m.Valid(g.Rows(), g.Cols()) {
			kept = append(kept, m)
		}
	}
	return kept
}

// warn records a locally-degraded condition on the document and logs it.
func warn(doc *models.Document, logger *zap.Logger, sheetName, message string) {
	logger.Warn("extraction degraded",
		zap.String("sheet", sheetName),
		zap.String("warning", message))
	doc.Processing.Warnings = append(doc.Processing.Warnings,
		fmt.Sprintf("%s: %s", sheetName, message))
}
