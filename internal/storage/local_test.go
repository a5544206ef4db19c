package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store, err := NewLocalStore("http://localhost:8080/", t.TempDir())
	assert.NoError(t, err)

	ctx := context.Background()
	url, err := store.Save(ctx, "documents/rep-1.html", strings.NewReader("<html>report</html>"))
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/blobs/documents/rep-1.html", url)

	f, err := store.Open("documents/rep-1.html")
	assert.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.Equal(t, "<html>report</html>", string(content))
}

func TestLocalStore_Overwrite(t *testing.T) {
	store, err := NewLocalStore("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)

	ctx := context.Background()
	_, err = store.Save(ctx, "documents/rep-1.html", strings.NewReader("first"))
	assert.NoError(t, err)
	_, err = store.Save(ctx, "documents/rep-1.html", strings.NewReader("second"))
	assert.NoError(t, err)

	f, err := store.Open("documents/rep-1.html")
	assert.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestLocalStore_URL(t *testing.T) {
	store, err := NewLocalStore("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)

	// slashes between segments stay routable, characters inside a
	// segment are escaped
	assert.Equal(t, "http://localhost:8080/api/v1/blobs/documents/rep-1.html",
		store.URL("documents/rep-1.html"))
	assert.Equal(t, "http://localhost:8080/api/v1/blobs/photos/front%20left.jpg",
		store.URL("photos/front left.jpg"))
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)

	_, err = store.Save(context.Background(), "../escape.html", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = store.Open("../../etc/passwd")
	assert.Error(t, err)
}
