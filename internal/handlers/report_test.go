package handlers

import (
	"net/http"
	"strings"
	"testing"

	"tjbuilding/internal/report"
	"tjbuilding/internal/service"
)

func TestReportHandler(t *testing.T) {
	rep := &mockReports{out: []byte("%PDF-1.3 fake")}
	r := newTestRouter(&service.Service{Reports: rep})

	w := doJSON(r, http.MethodGet, "/api/v1/floors/3/report?kind=light&format=pdf", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report status=%d, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != report.ContentType(report.FormatPDF) {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "floor-3-light.pdf") {
		t.Fatalf("content disposition = %q", cd)
	}
	if w.Body.String() != "%PDF-1.3 fake" {
		t.Fatalf("body = %q", w.Body.String())
	}

	doJSON(r, http.MethodGet, "/api/v1/floors/3/report", "", nil)
	if rep.lastKind != service.KindAC || rep.lastFormat != report.FormatXLSX {
		t.Fatalf("defaults = %q/%q", rep.lastKind, rep.lastFormat)
	}

	rep.err = service.ErrUnknownFormat
	if w := doJSON(r, http.MethodGet, "/api/v1/floors/3/report?format=csv", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown format status=%d", w.Code)
	}
}
