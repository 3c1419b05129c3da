package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"medtrack_backend/internal/events"
	"medtrack_backend/internal/pharmacode"
	"medtrack_backend/internal/scanner/transport"
	"medtrack_backend/platform/apperr"
	"medtrack_backend/platform/logger"
)

// PackageMatch is the package data the scanner needs from the catalog.
type PackageMatch struct {
	PackageID      uuid.UUID
	MedicationID   uuid.UUID
	MedicationName string
	PackageSize    string
	Quantity       int
}

// PackageFinder resolves a classified national number to a product package.
// The boolean reports whether a package was found; absence is not an error.
type PackageFinder interface {
	FindPackage(ctx context.Context, number, schemeTag string) (PackageMatch, bool, error)
}

// Service classifies scanned barcodes and resolves them against the catalog.
type Service struct {
	finder PackageFinder
	bus    events.Bus
	log    *logger.Logger
}

// New creates a new scanner service.
func New(finder PackageFinder, bus events.Bus, log *logger.Logger) *Service {
	return &Service{finder: finder, bus: bus, log: log}
}

// Scan cleans the decoded barcode content, classifies it, and looks up the
// matching product package. An unrecognized number returns a typed
// unprocessable error; a recognized number without a catalog match is a
// normal response with Matched set to false.
func (s *Service) Scan(ctx context.Context, req transport.ScanRequest) (transport.ScanResponse, error) {
	// Code 39 PZN barcodes are printed with a leading minus; strip it along
	// with stray whitespace. This is symbology cleanup, not GS1 parsing.
	cleaned := strings.TrimSpace(req.Barcode)
	cleaned = strings.TrimLeft(cleaned, "-")

	result := pharmacode.Classify(cleaned)
	if !result.Recognized {
		s.publishScan(ctx, pharmacode.SchemeUnknown.String(), false, false)
		s.log.ScanEvent(pharmacode.SchemeUnknown.String(), false, false)
		return transport.ScanResponse{}, apperr.
			Unprocessable("barcode does not match any known scheme").
			WithDetails(map[string]string{"barcode": cleaned})
	}

	schemeTag := result.Scheme.String()
	resp := transport.ScanResponse{
		Number:       result.Number,
		Scheme:       schemeTag,
		DisplayLabel: pharmacode.FormatLabel(result.Number, result.Scheme),
	}

	match, found, err := s.finder.FindPackage(ctx, result.Number, schemeTag)
	if err != nil {
		return transport.ScanResponse{}, err
	}
	if found {
		resp.Matched = true
		resp.Package = &transport.ScannedPackage{
			PackageID:      match.PackageID,
			MedicationID:   match.MedicationID,
			MedicationName: match.MedicationName,
			PackageSize:    match.PackageSize,
			Quantity:       match.Quantity,
		}
	}

	s.publishScan(ctx, schemeTag, true, found)
	s.log.ScanEvent(schemeTag, true, found)
	return resp, nil
}

func (s *Service) publishScan(ctx context.Context, scheme string, recognized, matched bool) {
	s.bus.Publish(ctx, events.BarcodeScanned{
		BaseEvent:  events.NewBaseEvent(),
		Scheme:     scheme,
		Recognized: recognized,
		Matched:    matched,
	})
}
