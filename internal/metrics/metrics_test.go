package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersAfterInit(t *testing.T) {
	Init()
	Init() // second call must not panic on duplicate registration

	var obs CacheObserver
	before := testutil.ToFloat64(cacheLookups.WithLabelValues("fault", "hit"))
	obs.CacheHit("fault")
	obs.CacheHit("fault")
	obs.CacheMiss("fault")
	if got := testutil.ToFloat64(cacheLookups.WithLabelValues("fault", "hit")) - before; got != 2 {
		t.Fatalf("hits = %v, want 2", got)
	}

	ObserveReportExport("xlsx", "", 10*time.Millisecond)
	if got := testutil.ToFloat64(reportExportTotal.WithLabelValues("xlsx", ResultSuccess)); got < 1 {
		t.Fatalf("export count = %v", got)
	}

	SetOpenSessions(3)
	if got := testutil.ToFloat64(openSessions); got != 3 {
		t.Fatalf("open sessions = %v", got)
	}

	ObserveHTTP("GET", "", 200, time.Millisecond)
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "200")); got < 1 {
		t.Fatalf("http requests = %v", got)
	}
}
