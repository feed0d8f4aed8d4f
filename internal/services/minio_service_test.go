package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueObjectName(t *testing.T) {
	name := uniqueObjectName("my poster.jpg")
	assert.True(t, strings.HasPrefix(name, "my_poster_"), name)
	assert.True(t, strings.HasSuffix(name, ".jpg"), name)
	assert.Len(t, name, len("my_poster_")+8+len(".jpg"))

	assert.NotEqual(t, name, uniqueObjectName("my poster.jpg"))

	nested := uniqueObjectName("../../etc/passwd")
	assert.True(t, strings.HasPrefix(nested, "passwd_"), nested)
}

func TestPublicObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/posters/a_1234abcd.png",
		publicObjectURL("https://cdn.example.com/posters", "posters", "a_1234abcd.png"))
	assert.Equal(t,
		"http://localhost:9000/posters/b.jpg",
		publicObjectURL("http://localhost:9000", "posters", "b.jpg"))
}

func TestObjectNameFromURL(t *testing.T) {
	s := &MinIOService{bucket: "posters", publicURL: "http://localhost:9000/posters"}

	name, ok := s.ObjectNameFromURL("http://localhost:9000/posters/central_1a2b3c4d.jpg")
	assert.True(t, ok)
	assert.Equal(t, "central_1a2b3c4d.jpg", name)

	name, ok = s.ObjectNameFromURL("http://localhost:9000/posters/central.jpg?X-Amz-Expires=900")
	assert.True(t, ok)
	assert.Equal(t, "central.jpg", name)

	_, ok = s.ObjectNameFromURL("https://image.tmdb.org/t/p/w500/poster.jpg")
	assert.False(t, ok)

	_, ok = s.ObjectNameFromURL("http://localhost:9000/other-bucket/file.jpg")
	assert.False(t, ok)

	_, ok = s.ObjectNameFromURL("/posters/relative.jpg")
	assert.False(t, ok)
}
