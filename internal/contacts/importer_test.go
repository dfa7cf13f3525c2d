package contacts_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/contacts"
)

const sampleCards = `BEGIN:VCARD
VERSION:4.0
FN:zoe Full
BDAY:1988-07-14
END:VCARD
BEGIN:VCARD
VERSION:3.0
N:Structured;Only;;;
BDAY:19900101
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Year
BDAY:--10-25
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Garbage
BDAY:not-a-date
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Adam Stamp
BDAY:1975-03-02T00:00:00Z
END:VCARD`

func TestDecode_FiltersAndSorts(t *testing.T) {
	im := contacts.NewImporter()

	got, err := im.Decode(context.Background(), strings.NewReader(sampleCards))
	require.NoError(t, err)

	want := []contacts.Contact{
		{Name: "Adam Stamp", BirthDate: time.Date(1975, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Name: "Structured;Only;;;", BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "zoe Full", BirthDate: time.Date(1988, 7, 14, 0, 0, 0, 0, time.UTC)},
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(contacts.Contact{}, "UID")); diff != "" {
		t.Errorf("contacts mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_DeterministicUID(t *testing.T) {
	im := contacts.NewImporter()

	first, err := im.Decode(context.Background(), strings.NewReader(sampleCards))
	require.NoError(t, err)
	second, err := im.Decode(context.Background(), strings.NewReader(sampleCards))
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i := range first {
		assert.Len(t, first[i].UID, config.UIDHashLength*2, "hex encoding doubles the byte length")
		assert.Equal(t, first[i].UID, second[i].UID)
	}
	assert.NotEqual(t, first[0].UID, first[1].UID)
}

func TestDecode_FallbackName(t *testing.T) {
	card := "BEGIN:VCARD\nVERSION:3.0\nBDAY:2001-02-03\nEND:VCARD"

	got, err := contacts.NewImporter().Decode(context.Background(), strings.NewReader(card))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, config.FallbackName, got[0].Name)
}

func TestDecode_EmptyStream(t *testing.T) {
	got, err := contacts.NewImporter().Decode(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.vcf")
	require.NoError(t, os.WriteFile(path, []byte(sampleCards), 0o600))

	got, err := contacts.NewImporter().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestLoad_Errors(t *testing.T) {
	im := contacts.NewImporter()

	_, err := im.Load(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, config.ErrLocalPathEmpty, err.Error())

	_, err = im.Load(context.Background(), filepath.Join(t.TempDir(), "missing.vcf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVCardOpen)
}

func TestDecode_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately before processing starts

	got, err := contacts.NewImporter().Decode(ctx, strings.NewReader(sampleCards))
	assert.Nil(t, got)
	assert.Equal(t, context.Canceled, err, "Should return context canceled error")
}
