//+build integration

package s3

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"testing"
	"time"

	"github.com/ReconfigureIO/linkbudget/service/storage"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

func TestS3UploadDownload(t *testing.T) {
	// Upload a layout document, download it and check equivalence.
	svc := New(storage.ServiceConfig{
		Bucket: "testbucket.linkbudget",
		Region: "us-east-1",
	})

	timestamp := time.Now().Format(time.RFC3339)
	key := fmt.Sprintf("integrationtest/TestS3Upload-%v.json", timestamp)
	body := []byte(`{"timings":[],"transport":{"rate":8.1,"lanes":4,"coding":"8b10b","eff":0.8},"presetId":"hbr3"}`)

	url, err := svc.Upload(key, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("svc.Upload: %v", err)
	}
	defer func() {
		_, err := svc.S3API.DeleteObject(&s3.DeleteObjectInput{
			Bucket: aws.String(svc.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			t.Logf("Failed to delete object: %v", err)
		}
	}()

	t.Logf("Upload completed at %v", url)

	rc, err := svc.Download(key)
	if err != nil {
		t.Fatalf("Failed to download: %v", err)
	}
	defer rc.Close()

	got, err := ioutil.ReadAll(rc)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("\nExpected: %s\nGot:      %s\n", body, got)
	}
}
