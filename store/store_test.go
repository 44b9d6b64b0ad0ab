package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUploaderLink(t *testing.T) {
	u := &Uploader{bucket: "f2f-documents", region: "eu-west-2"}

	tests := []struct {
		key  string
		want string
	}{
		{
			"The Green Grocer.pdf",
			"https://f2f-documents.s3.eu-west-2.amazonaws.com/The%20Green%20Grocer.pdf",
		},
		{
			"Oak Farm Pick List 2024-03-04.pdf",
			"https://f2f-documents.s3.eu-west-2.amazonaws.com/Oak%20Farm%20Pick%20List%202024-03-04.pdf",
		},
	}
	for _, tt := range tests {
		if got := u.Link(tt.key); got != tt.want {
			t.Errorf("Link(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDirSave(t *testing.T) {
	dir := Dir{Path: filepath.Join(t.TempDir(), "generated")}

	body := bytes.NewBufferString("%PDF-1.4 test")
	if err := dir.Save(context.Background(), "order.pdf", body); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir.Path, "order.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "%PDF-1.4 test" {
		t.Errorf("content = %q", got)
	}
	if link := dir.Link("order.pdf"); link != "" {
		t.Errorf("Link = %q, want empty", link)
	}
}

func TestUploadErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &UploadError{Bucket: "f2f-documents", Key: "order.pdf", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("Unwrap does not reach the cause")
	}
	want := `store: upload "order.pdf" to bucket f2f-documents: connection reset`
	if err.Error() != want {
		t.Errorf("Error() = %q", err.Error())
	}
}
