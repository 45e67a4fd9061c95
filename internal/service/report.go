package service

import (
	"context"
	"fmt"
	"time"

	"tjbuilding/internal/metrics"
	"tjbuilding/internal/report"
	"tjbuilding/internal/repository"
	"tjbuilding/internal/telemetry"
)

var kindTitles = map[string]string{
	KindAC:    "Air conditioning",
	KindLight: "Lighting",
}

// ReportService exports a floor aggregate computed in a throwaway session.
type ReportService struct {
	inv repository.Inventory
	obs telemetry.Observer
}

func NewReportService(inv repository.Inventory, obs telemetry.Observer) *ReportService {
	return &ReportService{inv: inv, obs: obs}
}

func (s *ReportService) FloorReport(ctx context.Context, floor, kind, format string) ([]byte, error) {
	start := time.Now()
	out, err := s.build(ctx, floor, kind, format)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.ObserveReportExport(format, result, time.Since(start))
	return out, err
}

func (s *ReportService) build(ctx context.Context, floor, kind, format string) ([]byte, error) {
	if format != report.FormatXLSX && format != report.FormatPDF {
		return nil, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
	devices, err := floorDevices(s.inv, floor, kind)
	if err != nil {
		return nil, err
	}
	agg, err := telemetry.BuildFloor(telemetry.NewSession(s.obs), floor, devices)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return report.Build(format, kindTitles[kind], agg)
}
