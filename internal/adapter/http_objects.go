package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/dspace-utils/models"
	"github.com/go-resty/resty/v2"
)

// FindHandle implements [RepositoryAdapter]. It GETs /pid/find?id=hdl:<h> and
// decodes the variant named by the "type" tag. No retries.
func (a *dspaceAdapter) FindHandle(ctx context.Context, handle models.Handle) (models.Object, error) {
	resp, err := a.get(ctx, "find handle", "/pid/find", map[string]string{"id": handle.PID()})
	if err != nil {
		return nil, err
	}

	obj, err := models.DecodeObject(resp.Body())
	if err != nil {
		if errors.Is(err, models.ErrUnknownObjectType) {
			return nil, fmt.Errorf("find handle %s: %w", handle, err)
		}
		return nil, decodeError("find handle", err)
	}

	a.logger.Debug().
		Str("handle", handle.String()).
		Str("type", string(obj.Base().Type)).
		Str("uuid", obj.Base().UUID).
		Msg("resolved handle")

	return obj, nil
}

// GetCommunity implements [RepositoryAdapter].
func (a *dspaceAdapter) GetCommunity(ctx context.Context, uuid string) (models.Community, error) {
	var community models.Community
	resp, err := a.get(ctx, "get community", "/core/communities/"+uuid, nil)
	if err != nil {
		return community, err
	}
	if err = json.Unmarshal(resp.Body(), &community); err != nil {
		return community, decodeError("get community", err)
	}
	return community, nil
}

// GetOwningCollection implements [RepositoryAdapter].
func (a *dspaceAdapter) GetOwningCollection(ctx context.Context, itemUUID string) (models.Collection, error) {
	var collection models.Collection
	resp, err := a.get(ctx, "get owning collection", "/core/items/"+itemUUID+"/owningCollection", nil)
	if err != nil {
		return collection, err
	}
	if err = json.Unmarshal(resp.Body(), &collection); err != nil {
		return collection, decodeError("get owning collection", err)
	}
	return collection, nil
}

// SetOwningCollection implements [RepositoryAdapter]. It PUTs a text/uri-list
// body naming the target collection to
// /core/items/{uuid}/owningCollection?inheritPolicies=false.
func (a *dspaceAdapter) SetOwningCollection(ctx context.Context, itemUUID, collectionUUID string) error {
	target := a.endpoint + "/core/collections/" + collectionUUID

	resp, err := a.do(ctx, "set owning collection", http.MethodPut, "/core/items/"+itemUUID+"/owningCollection",
		func(r *resty.Request) {
			r.SetQueryParam("inheritPolicies", "false").
				SetHeader("Content-Type", "text/uri-list").
				SetBody(target)
		})
	if err != nil && resp != nil {
		switch resp.StatusCode() {
		case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: item %s to collection %s: %w", ErrConflict, itemUUID, collectionUUID, err)
		}
	}
	return err
}

// UpdateItem implements [RepositoryAdapter].
func (a *dspaceAdapter) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var updated models.Item
	resp, err := a.do(ctx, "update item", http.MethodPut, "/core/items/"+item.UUID, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(item)
	})
	if err != nil {
		return updated, err
	}
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return updated, decodeError("update item", err)
	}
	return updated, nil
}

// SearchItems implements [RepositoryAdapter]. It GETs
// /discover/search/objects?query=*:*&scope=<uuid>&dsoType=item.
func (a *dspaceAdapter) SearchItems(ctx context.Context, scopeUUID string, page, size int) ([]models.Item, models.Page, error) {
	if size <= 0 {
		size = defaultPageSize
	}

	resp, err := a.get(ctx, "search items", "/discover/search/objects", map[string]string{
		"query":   "*:*",
		"scope":   scopeUUID,
		"dsoType": string(models.TypeItem),
		"page":    strconv.Itoa(page),
		"size":    strconv.Itoa(size),
	})
	if err != nil {
		return nil, models.Page{}, err
	}

	var result searchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, models.Page{}, decodeError("search items", err)
	}

	objects := result.Embedded.SearchResult.Embedded.Objects
	items := make([]models.Item, 0, len(objects))
	for _, o := range objects {
		var item models.Item
		if err = json.Unmarshal(o.Embedded.IndexableObject, &item); err != nil {
			return nil, models.Page{}, decodeError("search items", err)
		}
		items = append(items, item)
	}

	return items, result.Embedded.SearchResult.Page, nil
}

// CreateCollection implements [RepositoryAdapter]. It POSTs the collection to
// /core/collections?parent=<uuid>.
func (a *dspaceAdapter) CreateCollection(ctx context.Context, parentUUID string, collection models.Collection) (models.Collection, error) {
	body := newObjectRequest{Name: collection.Name, Metadata: collection.Metadata}

	var created models.Collection
	resp, err := a.do(ctx, "create collection", http.MethodPost, "/core/collections", func(r *resty.Request) {
		r.SetQueryParam("parent", parentUUID).
			SetHeader("Content-Type", "application/json").
			SetBody(body)
	})
	if err != nil {
		return created, err
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return created, decodeError("create collection", err)
	}
	return created, nil
}
