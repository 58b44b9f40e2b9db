package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestInMemoryRecorder_ObserveRPC(t *testing.T) {
	t.Parallel()

	m := NewInMemory()
	m.ObserveRPC("/erp.v1.InvoiceService/GetInvoice", "OK", 10*time.Millisecond)
	m.ObserveRPC("/erp.v1.InvoiceService/GetInvoice", "OK", 30*time.Millisecond)
	m.ObserveRPC("/erp.v1.InvoiceService/GetInvoice", "NotFound", time.Millisecond)
	m.ObserveRPC("/erp.v1.CustomerService/ListCustomers", "OK", time.Millisecond)

	snap := m.Snapshot()
	if got := snap.Count("/erp.v1.InvoiceService/GetInvoice", "OK"); got != 2 {
		t.Errorf("GetInvoice OK count = %d, want 2", got)
	}
	if got := snap.Count("/erp.v1.InvoiceService/GetInvoice", "NotFound"); got != 1 {
		t.Errorf("GetInvoice NotFound count = %d, want 1", got)
	}
	if got := snap.Count("/erp.v1.ProductService/GetProduct", "OK"); got != 0 {
		t.Errorf("unknown method count = %d, want 0", got)
	}

	if len(snap.Calls) != 3 {
		t.Fatalf("len(Calls) = %d, want 3", len(snap.Calls))
	}
	if snap.Calls[0].Method != "/erp.v1.CustomerService/ListCustomers" {
		t.Errorf("snapshot not sorted by method: %v", snap.Calls[0].Method)
	}
	for _, c := range snap.Calls {
		if c.Method == "/erp.v1.InvoiceService/GetInvoice" && c.Code == "OK" {
			if c.DurationTotalNs != (40 * time.Millisecond).Nanoseconds() {
				t.Errorf("DurationTotalNs = %d, want 40ms", c.DurationTotalNs)
			}
		}
	}
}

func TestInMemoryRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewInMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.ObserveRPC("m", "OK", time.Microsecond)
			m.IncSessionExpired()
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	if got := snap.Count("m", "OK"); got != 50 {
		t.Errorf("count = %d, want 50", got)
	}
	if snap.SessionsExpired != 50 {
		t.Errorf("SessionsExpired = %d, want 50", snap.SessionsExpired)
	}
}
