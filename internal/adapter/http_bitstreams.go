package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/dspace-utils/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// GetBundles implements [RepositoryAdapter].
func (a *dspaceAdapter) GetBundles(ctx context.Context, itemUUID string) ([]models.Bundle, error) {
	return listAll[models.Bundle](ctx, a, "get bundles", "/core/items/"+itemUUID+"/bundles", "bundles")
}

// CreateBundle implements [RepositoryAdapter].
func (a *dspaceAdapter) CreateBundle(ctx context.Context, itemUUID, name string) (models.Bundle, error) {
	var bundle models.Bundle
	resp, err := a.do(ctx, "create bundle", http.MethodPost, "/core/items/"+itemUUID+"/bundles", func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").
			SetBody(newObjectRequest{Name: name, Metadata: models.MetadataMap{}})
	})
	if err != nil {
		return bundle, err
	}
	if err = json.Unmarshal(resp.Body(), &bundle); err != nil {
		return bundle, decodeError("create bundle", err)
	}
	return bundle, nil
}

// GetBitstreams implements [RepositoryAdapter].
func (a *dspaceAdapter) GetBitstreams(ctx context.Context, bundleUUID string) ([]models.Bitstream, error) {
	return listAll[models.Bitstream](ctx, a, "get bitstreams", "/core/bundles/"+bundleUUID+"/bitstreams", "bitstreams")
}

// DeleteBitstream implements [RepositoryAdapter]. It PATCHes /core/bitstreams
// with a single "remove" operation. Network errors, 429 and 5xx responses are
// retried with exponential backoff; client errors are returned at once.
func (a *dspaceAdapter) DeleteBitstream(ctx context.Context, bitstreamUUID string) error {
	ops := []patchOperation{{Op: "remove", Path: "/bitstreams/" + bitstreamUUID}}

	attempt := 0
	return retry.Do(ctx, a.deleteBackoff(), func(ctx context.Context) error {
		attempt++
		req, err := a.authedRequest(ctx)
		if err != nil {
			return err
		}

		resp, err := req.
			SetHeader("Content-Type", "application/json-patch+json").
			SetBody(ops).
			Patch("/core/bitstreams")

		var callErr error
		switch {
		case err != nil:
			callErr = transportError("delete bitstream", err)
		default:
			callErr = mapHTTPError(resp)
		}
		if callErr == nil {
			return nil
		}

		if retryable(resp, err) {
			a.logger.Warn().Err(callErr).
				Str("bitstream", bitstreamUUID).
				Int("attempt", attempt).
				Msg("delete bitstream failed, retrying")
			return retry.RetryableError(callErr)
		}
		return fmt.Errorf("delete bitstream %s: %w", bitstreamUUID, callErr)
	})
}

// CreateBitstream implements [RepositoryAdapter]. It POSTs a multipart body
// to /core/bundles/{uuid}/bitstreams with the file under "file" and the name
// and metadata as JSON under "properties".
func (a *dspaceAdapter) CreateBitstream(ctx context.Context, bundleUUID string, upload models.BitstreamUpload) (models.Bitstream, error) {
	var bitstream models.Bitstream

	f, err := os.Open(upload.Path)
	if err != nil {
		return bitstream, fmt.Errorf("open upload %s: %w", upload.Path, err)
	}
	defer f.Close()

	name := upload.Name
	if name == "" {
		name = filepath.Base(upload.Path)
	}
	metadata := upload.Metadata
	if metadata == nil {
		metadata = models.MetadataMap{}
	}
	properties, err := json.Marshal(bitstreamProperties{Name: name, Metadata: metadata})
	if err != nil {
		return bitstream, fmt.Errorf("encode bitstream properties: %w", err)
	}

	resp, err := a.do(ctx, "create bitstream", http.MethodPost, "/core/bundles/"+bundleUUID+"/bitstreams", func(r *resty.Request) {
		r.SetMultipartFields(
			&resty.MultipartField{
				Param:       "file",
				FileName:    name,
				ContentType: upload.MimeType,
				Reader:      f,
			},
			&resty.MultipartField{
				Param:       "properties",
				ContentType: "application/json",
				Reader:      bytes.NewReader(properties),
			},
		)
	})
	if err != nil {
		return bitstream, err
	}
	if err = json.Unmarshal(resp.Body(), &bitstream); err != nil {
		return bitstream, decodeError("create bitstream", err)
	}
	return bitstream, nil
}

// DownloadBitstream implements [RepositoryAdapter]. It streams
// GET /core/bitstreams/{uuid}/content into destPath.
func (a *dspaceAdapter) DownloadBitstream(ctx context.Context, bitstreamUUID, destPath string) error {
	_, err := a.do(ctx, "download bitstream", http.MethodGet, "/core/bitstreams/"+bitstreamUUID+"/content", func(r *resty.Request) {
		r.SetHeader("Accept", "*/*").SetOutput(destPath)
	})
	if err != nil {
		// resty writes the error body to the output file as well.
		_ = os.Remove(destPath)
		return err
	}
	return nil
}

// listAll follows the pages of a HAL listing until the last one.
func listAll[T any](ctx context.Context, a *dspaceAdapter, op, path, key string) ([]T, error) {
	var all []T
	for page := 0; ; page++ {
		resp, err := a.get(ctx, op, path, map[string]string{
			"page": strconv.Itoa(page),
			"size": strconv.Itoa(defaultPageSize),
		})
		if err != nil {
			return nil, err
		}

		items, p, err := decodeHALList[T](resp.Body(), key)
		if err != nil {
			return nil, decodeError(op, err)
		}
		all = append(all, items...)

		if len(items) == 0 || p.Last() {
			return all, nil
		}
	}
}
