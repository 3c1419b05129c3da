package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"medtrack_backend/internal/events"
	"medtrack_backend/internal/scanner/transport"
	"medtrack_backend/platform/apperr"
	"medtrack_backend/platform/logger"
)

type testFinder struct {
	match      PackageMatch
	found      bool
	err        error
	lastNumber string
	lastScheme string
	calls      int
}

func (f *testFinder) FindPackage(_ context.Context, number, schemeTag string) (PackageMatch, bool, error) {
	f.calls++
	f.lastNumber = number
	f.lastScheme = schemeTag
	return f.match, f.found, f.err
}

type testBus struct {
	published []events.Event
}

func (b *testBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *testBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *testBus) Subscribe(string, events.Handler) {}

func newTestService(finder *testFinder, bus *testBus) *Service {
	return New(finder, bus, logger.New("development"))
}

func TestScanStripsCode39Minus(t *testing.T) {
	finder := &testFinder{}
	svc := newTestService(finder, &testBus{})

	// PZN barcodes in Code 39 carry a leading minus before the digits.
	resp, err := svc.Scan(context.Background(), transport.ScanRequest{Barcode: "-12345678"})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if resp.Number != "12345678" {
		t.Errorf("Number = %q, want %q", resp.Number, "12345678")
	}
	if resp.Scheme != "DE_PZN" {
		t.Errorf("Scheme = %q, want DE_PZN", resp.Scheme)
	}
	if resp.DisplayLabel != "PZN: 12345678" {
		t.Errorf("DisplayLabel = %q, want %q", resp.DisplayLabel, "PZN: 12345678")
	}
	if finder.lastNumber != "12345678" || finder.lastScheme != "DE_PZN" {
		t.Errorf("finder called with (%q, %q), want (12345678, DE_PZN)", finder.lastNumber, finder.lastScheme)
	}
}

func TestScanTrimsWhitespace(t *testing.T) {
	finder := &testFinder{}
	svc := newTestService(finder, &testBus{})

	resp, err := svc.Scan(context.Background(), transport.ScanRequest{Barcode: "  3400930000017 "})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if resp.Scheme != "FR_CIP13" {
		t.Errorf("Scheme = %q, want FR_CIP13", resp.Scheme)
	}
}

func TestScanUnrecognizedBarcode(t *testing.T) {
	finder := &testFinder{}
	bus := &testBus{}
	svc := newTestService(finder, bus)

	_, err := svc.Scan(context.Background(), transport.ScanRequest{Barcode: "12345"})
	if err == nil {
		t.Fatal("Scan returned nil error for unrecognized barcode")
	}
	if kind := apperr.GetKind(err); kind != apperr.KindUnprocessable {
		t.Errorf("error kind = %v, want KindUnprocessable", kind)
	}
	if finder.calls != 0 {
		t.Errorf("finder called %d times for unrecognized barcode, want 0", finder.calls)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	scanned, ok := bus.published[0].(events.BarcodeScanned)
	if !ok {
		t.Fatalf("published event type = %T, want BarcodeScanned", bus.published[0])
	}
	if scanned.Recognized || scanned.Matched {
		t.Errorf("event = %+v, want Recognized=false Matched=false", scanned)
	}
}

func TestScanMatchedPackage(t *testing.T) {
	medID := uuid.New()
	pkgID := uuid.New()
	finder := &testFinder{
		match: PackageMatch{
			PackageID:      pkgID,
			MedicationID:   medID,
			MedicationName: "Ibuprofen 400mg",
			PackageSize:    "N2",
			Quantity:       50,
		},
		found: true,
	}
	bus := &testBus{}
	svc := newTestService(finder, bus)

	resp, err := svc.Scan(context.Background(), transport.ScanRequest{Barcode: "12345678"})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if !resp.Matched {
		t.Fatal("Matched = false, want true")
	}
	if resp.Package == nil {
		t.Fatal("Package is nil for matched scan")
	}
	if resp.Package.PackageID != pkgID || resp.Package.MedicationID != medID {
		t.Errorf("Package IDs = (%s, %s), want (%s, %s)", resp.Package.PackageID, resp.Package.MedicationID, pkgID, medID)
	}
	if resp.Package.MedicationName != "Ibuprofen 400mg" {
		t.Errorf("MedicationName = %q", resp.Package.MedicationName)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	scanned := bus.published[0].(events.BarcodeScanned)
	if !scanned.Recognized || !scanned.Matched || scanned.Scheme != "DE_PZN" {
		t.Errorf("event = %+v, want Recognized=true Matched=true Scheme=DE_PZN", scanned)
	}
}

func TestScanRecognizedWithoutMatch(t *testing.T) {
	finder := &testFinder{found: false}
	bus := &testBus{}
	svc := newTestService(finder, bus)

	resp, err := svc.Scan(context.Background(), transport.ScanRequest{Barcode: "123456789"})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if resp.Matched {
		t.Error("Matched = true, want false")
	}
	if resp.Package != nil {
		t.Errorf("Package = %+v, want nil", resp.Package)
	}
	if resp.Scheme != "IT_AIC" {
		t.Errorf("Scheme = %q, want IT_AIC", resp.Scheme)
	}
}

func TestScanFinderErrorPropagates(t *testing.T) {
	finder := &testFinder{err: apperr.Internal("db down")}
	svc := newTestService(finder, &testBus{})

	_, err := svc.Scan(context.Background(), transport.ScanRequest{Barcode: "12345678"})
	if err == nil {
		t.Fatal("Scan returned nil error when finder failed")
	}
	if kind := apperr.GetKind(err); kind != apperr.KindInternal {
		t.Errorf("error kind = %v, want KindInternal", kind)
	}
}
