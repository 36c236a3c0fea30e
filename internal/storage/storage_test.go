package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"strokescan/internal/storage"
	"strokescan/internal/storage/fake"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalStore", func() {
	var (
		dir   string
		store *storage.LocalStore
		ctx   context.Context
	)

	BeforeEach(func() {
		var err error
		dir = filepath.Join(GinkgoT().TempDir(), "static", "uploaded_images")
		store, err = storage.NewLocalStore(dir)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("should create the upload directory", func() {
		info, err := os.Stat(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("should read back what was saved", func() {
		Expect(store.Save(ctx, "a.png", []byte("image"))).To(Succeed())

		rc, err := store.Open(ctx, "a.png")
		Expect(err).NotTo(HaveOccurred())
		defer rc.Close()
		data, err := io.ReadAll(rc)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("image"))

		_, err = os.Stat(filepath.Join(dir, "a.png"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should report missing images", func() {
		_, err := store.Open(ctx, "missing.png")
		Expect(err).To(MatchError(storage.ErrNotFound))
	})

	DescribeTable("refuses names outside the directory",
		func(name string) {
			Expect(store.Save(ctx, name, []byte("x"))).To(MatchError(storage.ErrInvalidName))
			_, err := store.Open(ctx, name)
			Expect(err).To(MatchError(storage.ErrInvalidName))
		},
		Entry("empty", ""),
		Entry("parent", ".."),
		Entry("traversal", "../escape.png"),
		Entry("nested", "sub/a.png"),
	)
})

var _ = Describe("S3Store", func() {
	var (
		client *fake.S3API
		store  *storage.S3Store
		ctx    context.Context
	)

	BeforeEach(func() {
		client = new(fake.S3API)
		store = storage.NewS3Store(client, "scans")
		ctx = context.Background()
	})

	Describe("Save", func() {
		It("should put the object under the uploads prefix", func() {
			png := []byte("\x89PNG\r\n\x1a\n0000")
			Expect(store.Save(ctx, "a.png", png)).To(Succeed())

			Expect(client.PutObjectCallCount()).To(Equal(1))
			_, in, _ := client.PutObjectArgsForCall(0)
			Expect(aws.ToString(in.Bucket)).To(Equal("scans"))
			Expect(aws.ToString(in.Key)).To(Equal("uploads/a.png"))
			Expect(aws.ToInt64(in.ContentLength)).To(Equal(int64(len(png))))
			Expect(aws.ToString(in.ContentType)).To(Equal("image/png"))

			body, err := io.ReadAll(in.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal(png))
		})

		It("should wrap client errors", func() {
			client.PutObjectReturns(nil, errors.New("access denied"))

			Expect(store.Save(ctx, "a.png", []byte("x"))).To(MatchError(ContainSubstring("access denied")))
		})

		It("should refuse invalid names", func() {
			Expect(store.Save(ctx, "../a.png", []byte("x"))).To(MatchError(storage.ErrInvalidName))
			Expect(client.PutObjectCallCount()).To(Equal(0))
		})
	})

	Describe("Open", func() {
		It("should return the object body", func() {
			client.GetObjectReturns(&s3.GetObjectOutput{
				Body: io.NopCloser(strings.NewReader("image")),
			}, nil)

			rc, err := store.Open(ctx, "a.png")
			Expect(err).NotTo(HaveOccurred())
			data, _ := io.ReadAll(rc)
			Expect(string(data)).To(Equal("image"))

			_, in, _ := client.GetObjectArgsForCall(0)
			Expect(aws.ToString(in.Bucket)).To(Equal("scans"))
			Expect(aws.ToString(in.Key)).To(Equal("uploads/a.png"))
		})

		It("should map a missing key to not found", func() {
			client.GetObjectReturns(nil, &types.NoSuchKey{})

			_, err := store.Open(ctx, "a.png")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("should wrap other errors", func() {
			client.GetObjectReturns(nil, errors.New("timeout"))

			_, err := store.Open(ctx, "a.png")
			Expect(err).To(MatchError(ContainSubstring("timeout")))
			Expect(err).NotTo(MatchError(storage.ErrNotFound))
		})
	})

	Describe("NewS3Client", func() {
		It("should build a client for a custom endpoint", func() {
			client, err := storage.NewS3Client(ctx, storage.S3Options{
				Region:    "us-east-1",
				Endpoint:  "http://localhost:9000",
				AccessKey: "minio",
				SecretKey: "minio123",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(client.Options().UsePathStyle).To(BeTrue())
			Expect(aws.ToString(client.Options().BaseEndpoint)).To(Equal("http://localhost:9000"))
		})
	})
})
