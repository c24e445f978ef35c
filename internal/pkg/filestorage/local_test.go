package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	base := t.TempDir()
	ls, err := NewLocalStorage(base, "uploads")
	require.NoError(t, err)

	url, err := ls.SaveFile(uploadHeader(t, "Offer.PDF", "letter"), "offer-letters")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/offer-letters/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	onDisk := filepath.Join(base, "offer-letters", filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "letter", string(data))

	require.NoError(t, ls.DeleteFile(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	assert.NoError(t, ls.DeleteFile(url))
}

func TestLocalStorageNilHeader(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	url, err := ls.SaveFile(nil, "photos")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestLocalStorageRejectsEscapes(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	assert.ErrorIs(t, ls.DeleteFile("/uploads/"), ErrInvalidPath)

	// traversal is cleaned away before it reaches the disk
	full, err := ls.resolve("/uploads/../../etc/passwd")
	if err == nil {
		assert.True(t, strings.HasPrefix(full, ls.basePath))
	}
}
