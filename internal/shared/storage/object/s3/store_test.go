package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "resumes/cv.pdf", want: "resumes/cv.pdf"},
		{name: "simple prefix", prefix: "root", key: "resumes/cv.pdf", want: "root/resumes/cv.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "resumes/cv.pdf", want: "root/resumes/cv.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/resumes/cv.pdf", want: "root/resumes/cv.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "resumes/cv.pdf", want: "root/sub/resumes/cv.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestApplyEncryption(t *testing.T) {
	t.Parallel()

	kms := &s3.PutObjectInput{}
	applyEncryption(kms, "key-123")
	if kms.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms {
		t.Fatalf("expected aws:kms, got %q", kms.ServerSideEncryption)
	}
	if aws.ToString(kms.SSEKMSKeyId) != "key-123" {
		t.Fatalf("expected kms key id, got %q", aws.ToString(kms.SSEKMSKeyId))
	}

	plain := &s3.PutObjectInput{}
	applyEncryption(plain, "")
	if plain.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %q", plain.ServerSideEncryption)
	}
	if plain.SSEKMSKeyId != nil {
		t.Fatalf("expected no kms key id")
	}
}

func TestNewRequiresBucket(t *testing.T) {
	t.Parallel()
	if _, err := New(t.Context(), "us-east-1", "", "", ""); err == nil {
		t.Fatalf("expected error without bucket")
	}
}
