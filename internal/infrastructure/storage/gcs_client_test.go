package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	name := ObjectName("public/avatars/u1/", "image/webp", now)
	assert.True(t, strings.HasPrefix(name, "public/avatars/u1/"))
	assert.True(t, strings.HasSuffix(name, "-20240501103000.webp"))

	assert.True(t, strings.HasSuffix(ObjectName("x", "image/jpeg", now), ".jpg"))
	assert.True(t, strings.HasSuffix(ObjectName("x", "image/png", now), ".png"))
	assert.True(t, strings.HasSuffix(ObjectName("x", "text/plain", now), ".bin"))
}

func TestObjectFromURL(t *testing.T) {
	c := &CloudStorageClient{bucketName: "altanzam-media"}

	name, err := c.objectFromURL("https://storage.googleapis.com/altanzam-media/public/avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "public/avatars/u1/a.png", name)

	_, err = c.objectFromURL("https://storage.googleapis.com/other-bucket/a.png")
	assert.Error(t, err)

	_, err = c.objectFromURL("https://example.com/a.png")
	assert.Error(t, err)
}
