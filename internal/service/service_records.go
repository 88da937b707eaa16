package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/upstream"
)

type recordsService struct {
	records upstream.RecordsClient

	logger *logger.Logger
}

// NewRecordsService constructs the [RecordsService] implementation backed by
// the spreadsheet-database client.
func NewRecordsService(records upstream.RecordsClient, logger *logger.Logger) RecordsService {
	return &recordsService{records: records, logger: logger}
}

// Ping implements [RecordsService].
func (s *recordsService) Ping(ctx context.Context) (json.RawMessage, error) {
	return s.records.Ping(ctx)
}
