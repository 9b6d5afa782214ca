package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects      map[string][]byte
	contentTypes map[string]string
	failGet      error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.contentTypes[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorageWriteThenRead(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := newS3Storage(fake, "seeds")

	require.NoError(t, store.WriteObject(ctx, "users.json", []byte(`[]`), "application/json"))
	assert.Equal(t, "application/json", fake.contentTypes["seeds/users.json"])

	data, err := store.ReadObject(ctx, "users.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestS3StorageReadMissing(t *testing.T) {
	store := newS3Storage(newFakeS3(), "seeds")
	_, err := store.ReadObject(context.Background(), "missing.json")
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestS3StorageReadPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection refused")
	fake := newFakeS3()
	fake.failGet = boom
	store := newS3Storage(fake, "seeds")

	_, err := store.ReadObject(context.Background(), "users.json")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrObjectNotFound))
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "http://localhost:9000", endpointURL("localhost:9000", false))
	assert.Equal(t, "https://minio.internal", endpointURL("minio.internal", true))
	assert.Equal(t, "http://already:9000", endpointURL("http://already:9000", true))
}
