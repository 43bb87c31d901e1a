// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/dspace-utils/internal/config"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCSRF    = "csrf-token-1"
	testEPerson = "5b1b3b6e-2f0a-4c9e-8f43-0a3c1c7f3a11"
	itemUUID    = "0c2e5d63-8a4e-4bd2-a1f5-6c5f1e3b2a10"
	collUUID    = "9d8f6a3e-1b2c-4d5e-8f90-a1b2c3d4e5f6"
	commUUID    = "1a2b3c4d-5e6f-4a8b-9c0d-e1f2a3b4c5d6"
)

// fakeDSpace is a minimal in-memory DSpace REST API.
type fakeDSpace struct {
	t      *testing.T
	router chi.Router

	mu       sync.Mutex
	logins   int
	tokenExp time.Time
}

func newFakeDSpace(t *testing.T) *fakeDSpace {
	t.Helper()
	f := &fakeDSpace{t: t, router: chi.NewRouter(), tokenExp: time.Now().Add(30 * time.Minute)}

	f.router.Get("/server/api/security/csrf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(csrfHeader, testCSRF)
		w.WriteHeader(http.StatusNoContent)
	})

	f.router.Post("/server/api/authn/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(csrfRequestHeader) != testCSRF {
			http.Error(w, "missing csrf", http.StatusForbidden)
			return
		}
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("user") != "admin@example.org" || r.PostForm.Get("password") != "secret" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}

		f.mu.Lock()
		f.logins++
		exp := f.tokenExp
		f.mu.Unlock()

		w.Header().Set("Authorization", "Bearer "+signToken(t, exp))
		w.WriteHeader(http.StatusOK)
	})

	return f
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"eid": testEPerson, "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return signed
}

// authed wraps a handler with bearer and CSRF checks.
func (f *fakeDSpace) authed(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			http.Error(w, "no token", http.StatusUnauthorized)
			return
		}
		if r.Header.Get(csrfRequestHeader) != testCSRF {
			http.Error(w, "no csrf", http.StatusForbidden)
			return
		}
		h(w, r)
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// newTestAdapter creates a dspaceAdapter pointed at the fake and logs in.
func newTestAdapter(t *testing.T, f *fakeDSpace) *dspaceAdapter {
	t.Helper()
	srv := httptest.NewServer(f.router)
	t.Cleanup(srv.Close)

	a, err := NewDSpaceAdapter(config.ClientAPI{
		Endpoint:       srv.URL + "/server/api/",
		Username:       "admin@example.org",
		Password:       "secret",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	da := a.(*dspaceAdapter)
	da.deleteBackoff = func() retry.Backoff {
		return retry.WithMaxRetries(3, retry.NewConstant(time.Millisecond))
	}

	_, err = da.Authenticate(context.Background())
	require.NoError(t, err)
	return da
}

// ── construction & session ──────────────────────────────────────────────────

func TestNewDSpaceAdapter_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "   ", "repo.example.org/server/api"} {
		_, err := NewDSpaceAdapter(config.ClientAPI{Endpoint: endpoint}, logger.Nop())
		assert.Error(t, err, endpoint)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	f := newFakeDSpace(t)
	a := newTestAdapter(t, f)

	assert.Equal(t, 1, f.logins)
	assert.Equal(t, testEPerson, a.session.EPersonID)
	assert.Equal(t, testCSRF, a.session.CSRFToken)
	assert.False(t, a.session.Expired(time.Now()))
	assert.True(t, strings.HasSuffix(a.Endpoint(), "/server/api"))
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	f := newFakeDSpace(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	a, err := NewDSpaceAdapter(config.ClientAPI{
		Endpoint: srv.URL + "/server/api",
		Username: "admin@example.org",
		Password: "wrong",
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestAuthenticate_NoBearerToken(t *testing.T) {
	f := newFakeDSpace(t)
	f.router = chi.NewRouter()
	f.router.Get("/server/api/security/csrf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	f.router.Post("/server/api/authn/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	a, err := NewDSpaceAdapter(config.ClientAPI{Endpoint: srv.URL + "/server/api"}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestAuthedRequest_RenewsExpiredSession(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Get("/server/api/core/communities/{uuid}", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"uuid": chi.URLParam(r, "uuid"), "type": "community"})
	}))
	a := newTestAdapter(t, f)
	a.now = func() time.Time { return time.Now().Add(time.Hour) }

	_, err := a.GetCommunity(context.Background(), commUUID)

	require.NoError(t, err)
	assert.Equal(t, 2, f.logins)
}

// ── handle resolution ───────────────────────────────────────────────────────

func TestFindHandle_Variants(t *testing.T) {
	payloads := map[string]map[string]any{
		"hdl:1/1825": {"uuid": itemUUID, "handle": "1/1825", "name": "Score", "type": "item", "inArchive": true,
			"metadata": map[string]any{"dc.title": []map[string]any{{"value": "Score", "confidence": -1, "place": 0}}}},
		"hdl:1/733": {"uuid": collUUID, "handle": "1/733", "name": "Live", "type": "collection"},
		"hdl:1/2":   {"uuid": commUUID, "handle": "1/2", "name": "Music", "type": "community"},
	}

	f := newFakeDSpace(t)
	f.router.Get("/server/api/pid/find", f.authed(func(w http.ResponseWriter, r *http.Request) {
		p, ok := payloads[r.URL.Query().Get("id")]
		if !ok {
			http.Error(w, "", http.StatusNotFound)
			return
		}
		writeJSON(t, w, http.StatusOK, p)
	}))
	a := newTestAdapter(t, f)
	ctx := context.Background()

	obj, err := a.FindHandle(ctx, "1/1825")
	require.NoError(t, err)
	item, ok := obj.(models.Item)
	require.True(t, ok, "expected Item, got %T", obj)
	assert.Equal(t, itemUUID, item.UUID)
	assert.True(t, item.InArchive)
	assert.Equal(t, "Score", item.Metadata.First(models.FieldTitle))

	again, err := a.FindHandle(ctx, "1/1825")
	require.NoError(t, err)
	assert.Equal(t, obj.Base().UUID, again.Base().UUID)

	obj, err = a.FindHandle(ctx, "1/733")
	require.NoError(t, err)
	assert.IsType(t, models.Collection{}, obj)

	obj, err = a.FindHandle(ctx, "1/2")
	require.NoError(t, err)
	assert.IsType(t, models.Community{}, obj)

	_, err = a.FindHandle(ctx, "1/404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFindHandle_UnknownTypeAndMalformedBody(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Get("/server/api/pid/find", f.authed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "hdl:1/1" {
			writeJSON(t, w, http.StatusOK, map[string]any{"uuid": itemUUID, "type": "eperson"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	a := newTestAdapter(t, f)

	_, err := a.FindHandle(context.Background(), "1/1")
	assert.ErrorIs(t, err, models.ErrUnknownObjectType)

	_, err = a.FindHandle(context.Background(), "1/3")
	assert.ErrorIs(t, err, ErrTransport)
}

// ── owning collection ───────────────────────────────────────────────────────

func TestOwningCollection_GetAndSet(t *testing.T) {
	f := newFakeDSpace(t)
	current := "aaaaaaaa-1b2c-4d5e-8f90-a1b2c3d4e5f6"
	var gotBody, gotType, gotInherit string

	f.router.Get("/server/api/core/items/{uuid}/owningCollection", f.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"uuid": current, "handle": "1/100", "type": "collection"})
	}))
	f.router.Put("/server/api/core/items/{uuid}/owningCollection", f.authed(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotType = r.Header.Get("Content-Type")
		gotInherit = r.URL.Query().Get("inheritPolicies")

		if strings.HasSuffix(gotBody, current) {
			http.Error(w, "already owned", http.StatusConflict)
			return
		}
		current = gotBody[strings.LastIndex(gotBody, "/")+1:]
		w.WriteHeader(http.StatusOK)
	}))
	a := newTestAdapter(t, f)
	ctx := context.Background()

	before, err := a.GetOwningCollection(ctx, itemUUID)
	require.NoError(t, err)
	assert.Equal(t, "1/100", before.Handle)

	require.NoError(t, a.SetOwningCollection(ctx, itemUUID, collUUID))
	assert.Equal(t, a.Endpoint()+"/core/collections/"+collUUID, gotBody)
	assert.True(t, strings.HasPrefix(gotType, "text/uri-list"))
	assert.Equal(t, "false", gotInherit)

	after, err := a.GetOwningCollection(ctx, itemUUID)
	require.NoError(t, err)
	assert.Equal(t, collUUID, after.UUID)

	err = a.SetOwningCollection(ctx, itemUUID, collUUID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSetOwningCollection_RejectionStatuses(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity} {
		f := newFakeDSpace(t)
		f.router.Put("/server/api/core/items/{uuid}/owningCollection", f.authed(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rejected", status)
		}))
		a := newTestAdapter(t, f)

		err := a.SetOwningCollection(context.Background(), itemUUID, collUUID)
		assert.ErrorIs(t, err, ErrConflict, "status %d", status)
	}
}

// ── items & search ──────────────────────────────────────────────────────────

func TestUpdateItem(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Put("/server/api/core/items/{uuid}", f.authed(func(w http.ResponseWriter, r *http.Request) {
		var item models.Item
		require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
		assert.Equal(t, chi.URLParam(r, "uuid"), item.UUID)
		writeJSON(t, w, http.StatusOK, item)
	}))
	a := newTestAdapter(t, f)

	item := models.Item{DSpaceObject: models.DSpaceObject{UUID: itemUUID, Type: models.TypeItem, Metadata: models.MetadataMap{}}}
	item.Metadata.Set(models.FieldDateAvailable, models.NewMetadataValue("2026-01-01T00:00:00Z"))

	updated, err := a.UpdateItem(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T00:00:00Z", updated.Metadata.First(models.FieldDateAvailable))
}

func TestSearchItems(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Get("/server/api/discover/search/objects", f.authed(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "*:*", q.Get("query"))
		assert.Equal(t, collUUID, q.Get("scope"))
		assert.Equal(t, "item", q.Get("dsoType"))
		assert.Equal(t, "1", q.Get("page"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"_embedded": map[string]any{
				"searchResult": map[string]any{
					"_embedded": map[string]any{
						"objects": []map[string]any{
							{"_embedded": map[string]any{"indexableObject": map[string]any{"uuid": itemUUID, "handle": "1/5", "type": "item"}}},
						},
					},
					"page": map[string]any{"size": 20, "totalElements": 21, "totalPages": 2, "number": 1},
				},
			},
		})
	}))
	a := newTestAdapter(t, f)

	items, page, err := a.SearchItems(context.Background(), collUUID, 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1/5", items[0].Handle)
	assert.True(t, page.Last())
}

// ── bundles & bitstreams ────────────────────────────────────────────────────

func TestGetBundlesAndBitstreams(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Get("/server/api/core/items/{uuid}/bundles", f.authed(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		name, number := "ORIGINAL", 0
		if page == "1" {
			name, number = "LICENSE", 1
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"_embedded": map[string]any{"bundles": []map[string]any{{"uuid": name + "-uuid", "name": name}}},
			"page":      map[string]any{"size": 1, "totalElements": 2, "totalPages": 2, "number": number},
		})
	}))
	f.router.Get("/server/api/core/bundles/{uuid}/bitstreams", f.authed(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "uuid") == "LICENSE-uuid" {
			writeJSON(t, w, http.StatusOK, map[string]any{"page": map[string]any{"totalPages": 0}})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"_embedded": map[string]any{"bitstreams": []map[string]any{
				{"uuid": "bs-1", "name": "score.pdf", "sizeBytes": 42, "checkSum": map[string]any{"checkSumAlgorithm": "MD5", "value": "abc"}},
			}},
			"page": map[string]any{"size": 100, "totalElements": 1, "totalPages": 1, "number": 0},
		})
	}))
	a := newTestAdapter(t, f)
	ctx := context.Background()

	bundles, err := a.GetBundles(ctx, itemUUID)
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	license, ok := models.FindBundle(bundles, models.BundleLicense)
	require.True(t, ok)

	bitstreams, err := a.GetBitstreams(ctx, license.UUID)
	require.NoError(t, err)
	assert.Empty(t, bitstreams)

	original, _ := models.FindBundle(bundles, models.BundleOriginal)
	bitstreams, err = a.GetBitstreams(ctx, original.UUID)
	require.NoError(t, err)
	require.Len(t, bitstreams, 1)
	assert.Equal(t, "score.pdf", bitstreams[0].Name)
	assert.Equal(t, "MD5", bitstreams[0].CheckSum.Algorithm)
}

func TestCreateBundle(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Post("/server/api/core/items/{uuid}/bundles", f.authed(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, http.StatusCreated, map[string]any{"uuid": "new-bundle", "name": body["name"]})
	}))
	a := newTestAdapter(t, f)

	bundle, err := a.CreateBundle(context.Background(), itemUUID, models.BundleThumbnail)
	require.NoError(t, err)
	assert.Equal(t, models.BundleThumbnail, bundle.Name)
	assert.Equal(t, "new-bundle", bundle.UUID)
}

func TestDeleteBitstream_PatchBodyAndRetry(t *testing.T) {
	f := newFakeDSpace(t)
	calls := 0
	f.router.Patch("/server/api/core/bitstreams", f.authed(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json-patch+json")

		var ops []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ops))
		require.Len(t, ops, 1)
		assert.Equal(t, "remove", ops[0]["op"])
		assert.Equal(t, "/bitstreams/bs-1", ops[0]["path"])

		if calls < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	a := newTestAdapter(t, f)

	require.NoError(t, a.DeleteBitstream(context.Background(), "bs-1"))
	assert.Equal(t, 3, calls)
}

func TestDeleteBitstream_ClientErrorNotRetried(t *testing.T) {
	f := newFakeDSpace(t)
	calls := 0
	f.router.Patch("/server/api/core/bitstreams", f.authed(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "no such bitstream", http.StatusNotFound)
	}))
	a := newTestAdapter(t, f)

	err := a.DeleteBitstream(context.Background(), "bs-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, calls)
}

func TestDeleteBitstream_GivesUpAfterRetries(t *testing.T) {
	f := newFakeDSpace(t)
	calls := 0
	f.router.Patch("/server/api/core/bitstreams", f.authed(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	a := newTestAdapter(t, f)

	err := a.DeleteBitstream(context.Background(), "bs-1")
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, 4, calls)
}

func TestCreateBitstream_Multipart(t *testing.T) {
	f := newFakeDSpace(t)
	var gotFile, gotFileName, gotFileType string
	var gotProps bitstreamProperties

	f.router.Post("/server/api/core/bundles/{uuid}/bitstreams", f.authed(func(w http.ResponseWriter, r *http.Request) {
		mr, err := r.MultipartReader()
		require.NoError(t, err)
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			data, _ := io.ReadAll(part)
			switch part.FormName() {
			case "file":
				gotFile = string(data)
				gotFileName = part.FileName()
				gotFileType = part.Header.Get("Content-Type")
			case "properties":
				require.NoError(t, json.Unmarshal(data, &gotProps))
			}
		}
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"uuid": "bs-new", "name": gotProps.Name, "sizeBytes": len(gotFile),
			"checkSum": map[string]any{"checkSumAlgorithm": "MD5", "value": "5d41402abc4b2a76b9719d911017c592"},
		})
	}))
	a := newTestAdapter(t, f)

	path := filepath.Join(t.TempDir(), "license.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	md := models.MetadataMap{}
	md.Set(models.FieldTitle, models.NewMetadataValue("license.txt"))

	bs, err := a.CreateBitstream(context.Background(), "LICENSE-uuid", models.BitstreamUpload{
		Name: "license.txt", Path: path, MimeType: "text/plain", Metadata: md,
	})
	require.NoError(t, err)
	assert.Equal(t, "bs-new", bs.UUID)
	assert.Equal(t, "hello", gotFile)
	assert.Equal(t, "license.txt", gotFileName)
	assert.Equal(t, "text/plain", gotFileType)
	assert.Equal(t, "license.txt", gotProps.Name)
	assert.Equal(t, "license.txt", gotProps.Metadata.First(models.FieldTitle))
}

func TestCreateBitstream_MissingFile(t *testing.T) {
	f := newFakeDSpace(t)
	a := newTestAdapter(t, f)

	_, err := a.CreateBitstream(context.Background(), "b", models.BitstreamUpload{Path: filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDownloadBitstream(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Get("/server/api/core/bitstreams/{uuid}/content", f.authed(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "uuid") != "bs-1" {
			http.Error(w, "", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	a := newTestAdapter(t, f)
	dir := t.TempDir()

	dest := filepath.Join(dir, "doc.pdf")
	require.NoError(t, a.DownloadBitstream(context.Background(), "bs-1", dest))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))

	missing := filepath.Join(dir, "missing.pdf")
	err = a.DownloadBitstream(context.Background(), "bs-2", missing)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoFileExists(t, missing)
}

// ── communities & collections ───────────────────────────────────────────────

func TestCreateCollection(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Post("/server/api/core/collections", f.authed(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, commUUID, r.URL.Query().Get("parent"))
		var body struct {
			Name     string             `json:"name"`
			Metadata models.MetadataMap `json:"metadata"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"uuid": collUUID, "name": body.Metadata.First(models.FieldTitle), "handle": "1/900", "type": "collection",
		})
	}))
	a := newTestAdapter(t, f)

	md := models.MetadataMap{}
	md.Set(models.FieldTitle, models.NewMetadataValue("Recordings"))
	created, err := a.CreateCollection(context.Background(), commUUID, models.Collection{
		DSpaceObject: models.DSpaceObject{Name: "Recordings", Metadata: md},
	})
	require.NoError(t, err)
	assert.Equal(t, "Recordings", created.Name)
	assert.Equal(t, "1/900", created.Handle)
}

func TestGetCommunity_NotFound(t *testing.T) {
	f := newFakeDSpace(t)
	f.router.Get("/server/api/core/communities/{uuid}", f.authed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusNotFound)
	}))
	a := newTestAdapter(t, f)

	_, err := a.GetCommunity(context.Background(), commUUID)
	assert.ErrorIs(t, err, ErrNotFound)
}
