package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandle(t *testing.T) {
	tests := []struct {
		in      string
		want    Handle
		wantErr bool
	}{
		{in: "1/1825", want: "1/1825"},
		{in: " hdl:1/733 ", want: "1/733"},
		{in: "10.1000/xyz", want: "10.1000/xyz"},
		{in: "", wantErr: true},
		{in: "1825", wantErr: true},
		{in: "1/", wantErr: true},
		{in: "/1", wantErr: true},
		{in: "1/2/3", wantErr: true},
		{in: "1/2?x=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHandle(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHandle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "hdl:"+string(tt.want), got.PID())
		})
	}
}

func TestMetadataMap_SetRenumbersPlaces(t *testing.T) {
	m := MetadataMap{}
	m.Set(FieldTitle, NewMetadataValue("a"), NewMetadataValue("b"))

	values := m.Values(FieldTitle)
	require.Len(t, values, 2)
	assert.Equal(t, 0, values[0].Place)
	assert.Equal(t, 1, values[1].Place)
	assert.Equal(t, DefaultConfidenceValue, values[1].Confidence)

	first, ok := m.First(FieldTitle)
	assert.True(t, ok)
	assert.Equal(t, "a", first.Value)

	m.Delete(FieldTitle)
	assert.False(t, m.Has(FieldTitle))
	_, ok = m.First(FieldTitle)
	assert.False(t, ok)
}

func TestMetadataMap_CloneIsDeep(t *testing.T) {
	m := MetadataMap{}
	m.Set(FieldSource, NewMetadataValue("orig"))

	cp := m.Clone()
	cp[FieldSource][0].Value = "changed"

	v, _ := m.First(FieldSource)
	assert.Equal(t, "orig", v.Value)
	assert.Nil(t, MetadataMap(nil).Clone())
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "2024-01-02T02:04:05Z", FormatTimestamp(ts))
}

func TestDecodeObject(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"uuid":"u1","handle":"1/1","type":"item","inArchive":true,"metadata":{"dc.title":[{"value":"T","language":null,"authority":null,"confidence":-1,"place":0}]}}`))
	require.NoError(t, err)
	item, ok := obj.(Item)
	require.True(t, ok)
	assert.True(t, item.InArchive)
	title, _ := item.Metadata.First(FieldTitle)
	assert.Equal(t, "T", title.Value)
	assert.Nil(t, title.Language)

	obj, err = DecodeObject([]byte(`{"uuid":"c1","type":"community"}`))
	require.NoError(t, err)
	assert.IsType(t, Community{}, obj)

	_, err = DecodeObject([]byte(`{"uuid":"e1","type":"eperson"}`))
	assert.ErrorIs(t, err, ErrUnknownObjectType)

	_, err = DecodeObject([]byte(`not json`))
	assert.Error(t, err)
}

func TestPage_Last(t *testing.T) {
	assert.True(t, Page{Number: 1, TotalPages: 2}.Last())
	assert.False(t, Page{Number: 0, TotalPages: 2}.Last())
	assert.True(t, Page{}.Last())
}

func TestFindBundle(t *testing.T) {
	bundles := []Bundle{{UUID: "1", Name: BundleOriginal}, {UUID: "2", Name: BundleLicense}}

	b, ok := FindBundle(bundles, BundleLicense)
	assert.True(t, ok)
	assert.Equal(t, "2", b.UUID)

	_, ok = FindBundle(bundles, BundleThumbnail)
	assert.False(t, ok)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	var nilSession *Session
	assert.True(t, nilSession.Expired(now))
	assert.True(t, (&Session{}).Expired(now))
	assert.False(t, (&Session{SignedString: "t"}).Expired(now))

	s := &Session{SignedString: "t"}
	s.ExpiresAt = jwt.NewNumericDate(now.Add(time.Minute))
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc")

	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc", info.String())
}
