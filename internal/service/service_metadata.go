package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/models"
)

type metadataService struct {
	resolver ResolverService

	logger *logger.Logger
}

func NewMetadataService(resolver ResolverService, logger *logger.Logger) MetadataService {
	return &metadataService{resolver: resolver, logger: logger}
}

func (s *metadataService) Dump(ctx context.Context, itemHandle models.Handle) (string, error) {
	item, err := s.resolver.ResolveItem(ctx, itemHandle)
	if err != nil {
		return "", err
	}
	return FormatItem(item), nil
}

// FormatItem renders the summary fields of item followed by its metadata.
// Fields are sorted; each value line is indented by eight spaces and a value
// spanning several lines is followed by an empty line.
func FormatItem(item models.Item) string {
	lines := []string{
		fmt.Sprintf("name: %s", item.Name),
		fmt.Sprintf("type: %s", item.Type),
		fmt.Sprintf("handle: %s", item.Handle),
		fmt.Sprintf("inArchive: %t", item.InArchive),
		fmt.Sprintf("uuid: %s", item.UUID),
		fmt.Sprintf("withdrawn: %t", item.Withdrawn),
		"metadata:",
	}

	for _, field := range slices.Sorted(maps.Keys(item.Metadata)) {
		lines = append(lines, fmt.Sprintf("    %s:", field))
		for _, value := range item.Metadata[field] {
			valueLines := splitLines(value.Value)
			for _, line := range valueLines {
				lines = append(lines, "        "+line)
			}
			if len(valueLines) > 1 {
				lines = append(lines, "")
			}
		}
	}

	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
