package spexplorer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/output"
)

// buildWorkbook writes a three-sheet workbook: a key-value sheet, a
// bold-headed table sheet, and a merged complex-header sheet. Values
// vary with the seed while the structure stays fixed.
func buildWorkbook(t *testing.T, path, clientName string, amount int) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	// Sheet1: key-value pairs.
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", clientName)
	f.SetCellValue("Sheet1", "A2", "Country")
	f.SetCellValue("Sheet1", "B2", "USA")

	// Transactions: bold header row plus data rows.
	_, err := f.NewSheet("Transactions")
	require.NoError(t, err)
	f.SetCellValue("Transactions", "A1", "Date")
	f.SetCellValue("Transactions", "B1", "Amount")
	f.SetCellValue("Transactions", "C1", "Currency")
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Transactions", "A1", "C1", bold))
	f.SetCellValue("Transactions", "A2", "2026-01-02")
	f.SetCellValue("Transactions", "B2", amount)
	f.SetCellValue("Transactions", "C2", "USD")
	f.SetCellValue("Transactions", "A3", "2026-01-03")
	f.SetCellValue("Transactions", "B3", amount*2)
	f.SetCellValue("Transactions", "C3", "EUR")

	// Breakdown: paired merges over a second header row.
	_, err = f.NewSheet("Breakdown")
	require.NoError(t, err)
	f.SetCellValue("Breakdown", "A1", "Category A")
	f.SetCellValue("Breakdown", "C1", "Category B")
	require.NoError(t, f.MergeCell("Breakdown", "A1", "B1"))
	require.NoError(t, f.MergeCell("Breakdown", "C1", "D1"))
	f.SetCellValue("Breakdown", "A2", "Field1")
	f.SetCellValue("Breakdown", "B2", "Field2")
	f.SetCellValue("Breakdown", "C2", "Field3")
	f.SetCellValue("Breakdown", "D2", "Field4")
	for col, v := range []int{10, 20, 30, 40} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		f.SetCellValue("Breakdown", cell, v*amount)
	}

	// Empty: no cells at all.
	_, err = f.NewSheet("Empty")
	require.NoError(t, err)

	require.NoError(t, f.SaveAs(path))
}

func testIdentity() models.ClientIdentity {
	return models.ClientIdentity{
		ClientID:      "us-acme-retail",
		ClientName:    "Acme",
		Country:       "USA",
		Product:       "retail",
		Filename:      "acme.xlsx",
		ExtractedDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		IsLatest:      true,
		FormVariant:   "PSCAF",
	}
}

func TestExtractEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acme.xlsx")
	buildWorkbook(t, path, "Acme", 100)

	doc, err := Extract(path, testIdentity(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "us-acme-retail", doc.ClientID)
	assert.Equal(t, "acme.xlsx", doc.FileInfo.Filename)
	assert.True(t, doc.FileInfo.IsLatest)
	assert.Equal(t, "PSCAF", doc.FileInfo.FormVariant)
	assert.Equal(t, "success", doc.Processing.Status)
	assert.NotEmpty(t, doc.Processing.ExtractionID)
	assert.NotEmpty(t, doc.PatternSignature)

	require.Len(t, doc.Sheets, 4)

	// Sheet1 -> one key_value section.
	kv := doc.Sheets[0]
	require.Len(t, kv.Sections, 1)
	assert.Equal(t, "section_0", kv.Sections[0].SectionID)
	assert.Equal(t, models.SectionKeyValue, kv.Sections[0].Type)
	assert.GreaterOrEqual(t, kv.Sections[0].Confidence, 0.9)
	name, _ := kv.Sections[0].Data.Get("Name")
	assert.Equal(t, "Acme", name)
	country, _ := kv.Sections[0].Data.Get("Country")
	assert.Equal(t, "USA", country)

	// Transactions -> one table section with 3 headers and 2 records.
	tbl := doc.Sheets[1]
	require.Len(t, tbl.Sections, 1)
	assert.Equal(t, "section_1", tbl.Sections[0].SectionID)
	assert.Equal(t, models.SectionTable, tbl.Sections[0].Type)
	assert.Equal(t, []string{"Date", "Amount", "Currency"}, tbl.Sections[0].Headers)
	require.Len(t, tbl.Sections[0].Rows, 2)
	require.NotNil(t, tbl.Sections[0].HeaderFormatting)
	assert.True(t, tbl.Sections[0].HeaderFormatting.Bold)
	amount, _ := tbl.Sections[0].Rows[0].Get("Amount")
	assert.Equal(t, int64(100), amount)

	// Breakdown -> one complex_header section with flattened names.
	cx := doc.Sheets[2]
	require.Len(t, cx.Sections, 1)
	assert.Equal(t, models.SectionComplexHeader, cx.Sections[0].Type)
	require.NotNil(t, cx.Sections[0].HeaderStructure)
	assert.Equal(t, 2, cx.Sections[0].HeaderStructure.Levels)
	assert.Equal(t, []string{
		"Category_A_Field1",
		"Category_A_Field2",
		"Category_B_Field3",
		"Category_B_Field4",
	}, cx.Sections[0].HeaderStructure.FinalColumns)

	// Empty sheet -> zero sections, not a failure.
	assert.Empty(t, doc.Sheets[3].Sections)
}

func TestExtractSignatureInvariantAcrossDataValues(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.xlsx")
	pathB := filepath.Join(dir, "b.xlsx")
	buildWorkbook(t, pathA, "Acme", 100)
	buildWorkbook(t, pathB, "Globex", 7)

	docA, err := Extract(pathA, testIdentity(), DefaultOptions())
	require.NoError(t, err)
	docB, err := Extract(pathB, testIdentity(), DefaultOptions())
	require.NoError(t, err)

	// Same template, different data values: identical fingerprint.
	assert.Equal(t, docA.PatternSignature, docB.PatternSignature)
}

func TestExtractSignatureChangesWithStructure(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.xlsx")
	pathB := filepath.Join(dir, "b.xlsx")
	buildWorkbook(t, pathA, "Acme", 100)
	buildWorkbook(t, pathB, "Acme", 100)

	// Add one column to the table template of the second workbook.
	f, err := excelize.OpenFile(pathB)
	require.NoError(t, err)
	f.SetCellValue("Transactions", "D1", "Status")
	f.SetCellValue("Transactions", "D2", "settled")
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	docA, err := Extract(pathA, testIdentity(), DefaultOptions())
	require.NoError(t, err)
	docB, err := Extract(pathB, testIdentity(), DefaultOptions())
	require.NoError(t, err)

	assert.NotEqual(t, docA.PatternSignature, docB.PatternSignature)
}

func TestExtractRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acme.xlsx")
	buildWorkbook(t, path, "Acme", 100)

	doc, err := Extract(path, testIdentity(), DefaultOptions())
	require.NoError(t, err)

	first, err := output.ToJSON(doc, false)
	require.NoError(t, err)

	restored, err := output.FromJSON(first)
	require.NoError(t, err)

	second, err := output.ToJSON(restored, false)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestExtractWithoutFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acme.xlsx")
	buildWorkbook(t, path, "Acme", 100)

	includeFormatting := false
	opts := DefaultOptions()
	opts.IncludeFormatting = &includeFormatting

	doc, err := Extract(path, testIdentity(), opts)
	require.NoError(t, err)

	// Still a table: the unique-string header bonus alone carries it.
	tbl := doc.Sheets[1]
	require.Len(t, tbl.Sections, 1)
	assert.Equal(t, models.SectionTable, tbl.Sections[0].Type)
	assert.Nil(t, tbl.Sections[0].HeaderFormatting)
}
