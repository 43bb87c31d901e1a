package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/utils"
	"github.com/MKhiriev/dspace-utils/models"
)

// ReplaceRequest names the bundle to refill and the file that becomes its
// only bitstream.
type ReplaceRequest struct {
	Bundle   string
	Name     string
	Path     string
	MimeType string
	Metadata models.MetadataMap
}

type bitstreamService struct {
	adapter adapter.RepositoryAdapter

	logger *logger.Logger
}

func NewBitstreamService(repositoryAdapter adapter.RepositoryAdapter, logger *logger.Logger) BitstreamService {
	return &bitstreamService{adapter: repositoryAdapter, logger: logger}
}

func (s *bitstreamService) Replace(ctx context.Context, item models.Item, req ReplaceRequest) (models.Bitstream, error) {
	// fail on an unreadable file before anything is deleted
	localMD5, err := utils.FileMD5(req.Path)
	if err != nil {
		return models.Bitstream{}, err
	}

	bundle, err := s.prepareBundle(ctx, item, req.Bundle)
	if err != nil {
		return models.Bitstream{}, err
	}

	created, err := s.adapter.CreateBitstream(ctx, bundle.UUID, models.BitstreamUpload{
		Name:     req.Name,
		Path:     req.Path,
		MimeType: req.MimeType,
		Metadata: req.Metadata,
	})
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error uploading %s to bundle %s of %s: %w", req.Name, req.Bundle, item.Handle, err)
	}

	if created.CheckSum.Value != "" && !utils.ChecksumMatches(created.CheckSum.Algorithm, created.CheckSum.Value, localMD5) {
		return created, fmt.Errorf("%w: %s reported %s, local file has %s",
			ErrChecksumMismatch, created.UUID, created.CheckSum.Value, localMD5)
	}

	s.logger.Info().
		Str("item", item.Handle).
		Str("bundle", req.Bundle).
		Str("bitstream", created.UUID).
		Msgf("created new %s bitstream", req.Name)

	return created, nil
}

// prepareBundle returns the named bundle emptied of bitstreams, creating it
// when the item does not have one.
func (s *bitstreamService) prepareBundle(ctx context.Context, item models.Item, name string) (models.Bundle, error) {
	bundles, err := s.adapter.GetBundles(ctx, item.UUID)
	if err != nil {
		return models.Bundle{}, fmt.Errorf("error listing bundles of %s: %w", item.Handle, err)
	}

	bundle, ok := models.FindBundle(bundles, name)
	if !ok {
		bundle, err = s.adapter.CreateBundle(ctx, item.UUID, name)
		if err != nil {
			return models.Bundle{}, fmt.Errorf("error creating bundle %s on %s: %w", name, item.Handle, err)
		}
		s.logger.Info().Str("item", item.Handle).Msgf("created missing %s bundle", name)
		return bundle, nil
	}

	bitstreams, err := s.adapter.GetBitstreams(ctx, bundle.UUID)
	if err != nil {
		return models.Bundle{}, fmt.Errorf("error listing bitstreams of bundle %s: %w", name, err)
	}
	for _, bitstream := range bitstreams {
		if err = s.adapter.DeleteBitstream(ctx, bitstream.UUID); err != nil {
			return models.Bundle{}, fmt.Errorf("error deleting bitstream %s: %w", bitstream.UUID, err)
		}
		s.logger.Debug().Msgf("Deleted bitstream %s.", bitstream.UUID)
	}

	return bundle, nil
}
