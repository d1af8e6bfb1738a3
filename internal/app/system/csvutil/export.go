// internal/app/system/csvutil/export.go

// Package csvutil writes the console's CSV downloads. Output is
// RFC 4180: encoding/csv handles quoting, and a UTF-8 BOM is prepended
// so spreadsheet tools detect the encoding.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"net/http"
)

// Export is a fully materialized CSV download: a declared column order
// plus rows already in that order.
type Export struct {
	Filename string
	Header   []string
	Rows     [][]string
}

// Empty reports whether the export has no data rows. Empty exports do
// not produce a download.
func (e Export) Empty() bool { return len(e.Rows) == 0 }

// WriteResponse streams the export as an attachment. An empty export
// answers 204 No Content instead of shipping a header-only file.
func WriteResponse(w http.ResponseWriter, e Export) error {
	if e.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", e.Filename))

	// BOM first so Excel reads UTF-8 correctly.
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(e.Header); err != nil {
		return err
	}
	for _, row := range e.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
