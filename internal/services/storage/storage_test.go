package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/suite"
)

type fakeS3Client struct {
	puts    []*s3.PutObjectInput
	bodies  []string
	deletes []*s3.DeleteObjectInput
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, params)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, params)
	return &s3.DeleteObjectOutput{}, nil
}

type StorageSuite struct {
	suite.Suite
}

func TestStorageSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) TestCleanKey() {
	for input, expected := range map[string]string{
		"/_personalization/a.png": "_personalization/a.png",
		"thumbnails//b.png":       "thumbnails/b.png",
		"published/c.html/":       "published/c.html",
	} {
		got, err := CleanKey(input)
		s.Require().NoError(err, input)
		s.Equal(expected, got, input)
	}

	for _, input := range []string{"", "/", "../etc/passwd", "a/../../b", "."} {
		_, err := CleanKey(input)
		s.ErrorIs(err, ErrInvalidKey, input)
	}
}

func (s *StorageSuite) TestDirectoryStoreWritesAndDeletes() {
	// arrange
	root := s.T().TempDir()
	store := NewDirectoryStore(root, "http://localhost:8080/files")

	// act
	url, err := store.Put(s.T().Context(), "published/abc.html", "text/html", strings.NewReader("<p>hi</p>"), 9)

	// assert
	s.Require().NoError(err)
	s.Equal("http://localhost:8080/files/published/abc.html", url)

	content, err := os.ReadFile(filepath.Join(root, "published", "abc.html"))
	s.Require().NoError(err)
	s.Equal("<p>hi</p>", string(content))

	s.Require().NoError(store.Delete(s.T().Context(), "published/abc.html"))
	_, err = os.Stat(filepath.Join(root, "published", "abc.html"))
	s.True(os.IsNotExist(err))
	s.NoError(store.Delete(s.T().Context(), "published/abc.html"))
}

func (s *StorageSuite) TestDirectoryStoreRejectsTraversal() {
	// arrange
	store := NewDirectoryStore(s.T().TempDir(), "http://localhost/files")

	// act
	_, err := store.Put(s.T().Context(), "../escape.txt", "text/plain", strings.NewReader("x"), 1)

	// assert
	s.ErrorIs(err, ErrInvalidKey)
}

func (s *StorageSuite) TestS3StorePutsObject() {
	// arrange
	client := &fakeS3Client{}
	store := NewS3StoreWithClient(client, "listline-assets", "https://cdn.example.com")

	// act
	url, err := store.Put(s.T().Context(), "/thumbnails/open-house.png", "image/png", strings.NewReader("png"), 3)

	// assert
	s.Require().NoError(err)
	s.Equal("https://cdn.example.com/thumbnails/open-house.png", url)
	s.Require().Len(client.puts, 1)
	s.Equal("listline-assets", *client.puts[0].Bucket)
	s.Equal("thumbnails/open-house.png", *client.puts[0].Key)
	s.Equal("image/png", *client.puts[0].ContentType)
	s.Equal(int64(3), *client.puts[0].ContentLength)
	s.Equal("png", client.bodies[0])
}

func (s *StorageSuite) TestS3StoreDeletesObject() {
	// arrange
	client := &fakeS3Client{}
	store := NewS3StoreWithClient(client, "listline-assets", "https://cdn.example.com")

	// act
	err := store.Delete(s.T().Context(), "thumbnails/open-house.png")

	// assert
	s.Require().NoError(err)
	s.Require().Len(client.deletes, 1)
	s.Equal("thumbnails/open-house.png", *client.deletes[0].Key)
}
