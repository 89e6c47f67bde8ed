package parser

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

// Signature hashes the document's structural shape into one digest.
// One tuple of (sheet name, section type, section header, sorted field
// names) is emitted per section in document order, so documents built
// from the same template hash identically regardless of data values,
// while any structural change produces a different digest. Collision
// resistance beyond exact-match grouping is not required.
func Signature(doc *models.Document) string {
	var tuples []string
	for _, sheet := range doc.Sheets {
		for _, sec := range sheet.Sections {
			fields := append([]string(nil), sec.FieldNames()...)
			sort.Strings(fields)
			tuples = append(tuples, strings.Join([]string{
				sheet.SheetName,
				string(sec.Type),
				sec.Header,
				strings.Join(fields, ","),
			}, "|"))
		}
	}
	sum := md5.Sum([]byte(strings.Join(tuples, "||")))
	return hex.EncodeToString(sum[:])
}
