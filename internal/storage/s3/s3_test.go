package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeObjects is an in-memory objectAPI.
type fakeObjects struct {
	objects map[string][]byte
	getErr  error
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func TestStore_PutGet(t *testing.T) {
	fake := &fakeObjects{objects: map[string][]byte{}}
	s := newWithClient(fake, "dashboard", "snapshots")
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "patients"); err != nil || ok {
		t.Fatalf("Expected missing key, ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, "patients", []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok := fake.objects["dashboard/snapshots/patients.json"]; !ok {
		t.Errorf("Expected object at prefixed key, have %v", fake.objects)
	}
	got, ok, err := s.Get(ctx, "patients")
	if err != nil || !ok {
		t.Fatalf("Expected stored value, ok=%v err=%v", ok, err)
	}
	if string(got) != `[]` {
		t.Errorf("Expected '[]', got %q", got)
	}
}

func TestStore_GetPropagatesErrors(t *testing.T) {
	fake := &fakeObjects{objects: map[string][]byte{}, getErr: errors.New("access denied")}
	s := newWithClient(fake, "dashboard", "")

	if _, _, err := s.Get(context.Background(), "patients"); err == nil {
		t.Error("Expected error to propagate")
	}
}
