package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/models"
)

const (
	LicenseBitstreamName = "license.txt"
	LicenseMimeType      = "text/plain"
	LicenseSource        = "Written by LicenseChanger"
)

type licenseService struct {
	resolver   ResolverService
	bitstreams BitstreamService
	journal    store.JournalRepository
	now        func() time.Time

	logger *logger.Logger
}

func NewLicenseService(resolver ResolverService, bitstreams BitstreamService, journal store.JournalRepository, logger *logger.Logger) LicenseService {
	if journal == nil {
		journal = store.NewNopJournal()
	}
	return &licenseService{resolver: resolver, bitstreams: bitstreams, journal: journal, now: time.Now, logger: logger}
}

func (s *licenseService) Replace(ctx context.Context, itemHandle models.Handle, licensePath string) (models.Bitstream, error) {
	info, err := os.Stat(licensePath)
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error reading license file: %w", err)
	}
	if info.IsDir() {
		return models.Bitstream{}, fmt.Errorf("license file %s is a directory", licensePath)
	}

	item, err := s.resolver.ResolveItem(ctx, itemHandle)
	if err != nil {
		return models.Bitstream{}, err
	}

	metadata := models.MetadataMap{}
	metadata.Set(models.FieldAccessRights, models.NewMetadataValue(models.FormatTimestamp(s.now())))
	metadata.Set(models.FieldSource, models.NewMetadataValue(LicenseSource))
	metadata.Set(models.FieldTitle, models.NewMetadataValue(LicenseBitstreamName))

	bitstream, err := s.bitstreams.Replace(ctx, item, ReplaceRequest{
		Bundle:   models.BundleLicense,
		Name:     LicenseBitstreamName,
		Path:     licensePath,
		MimeType: LicenseMimeType,
		Metadata: metadata,
	})
	recordOperation(ctx, s.journal, s.logger, OperationLicense, item.Handle, licensePath, err)
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error replacing license of %s: %w", item.Handle, err)
	}

	return bitstream, nil
}
