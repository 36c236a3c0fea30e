package classifier_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"strokescan/internal/classifier"
	"strokescan/internal/classifier/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// pngHeader returns a PNG signature and IHDR chunk for a w x h grayscale
// image and no pixel data.
func pngHeader(w, h int) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth, color type 0 (gray)

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	Expect(binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))).To(Succeed())
	crc := crc32.NewIEEE()
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_, _ = crc.Write(chunk)
	Expect(binary.Write(&buf, binary.BigEndian, crc.Sum32())).To(Succeed())
	return buf.Bytes()
}

func encodePNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	Expect(png.Encode(&buf, img)).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("Preprocess", func() {
	It("should produce a single channel 256x256 batch of one", func() {
		t, err := classifier.Preprocess(encodePNG(31, 17, color.White))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Shape).To(Equal([]int{1, 256, 256, 1}))
		Expect(t.Data).To(HaveLen(256 * 256))
		Expect(t.Data[0]).To(BeNumerically("==", 1))
		Expect(t.Data[len(t.Data)-1]).To(BeNumerically("==", 1))
	})

	It("should scale black to zero", func() {
		t, err := classifier.Preprocess(encodePNG(300, 300, color.Black))
		Expect(err).NotTo(HaveOccurred())
		for _, v := range t.Data {
			Expect(v).To(BeZero())
		}
	})

	It("should weight channels by luma", func() {
		t, err := classifier.Preprocess(encodePNG(8, 8, color.RGBA{R: 255, A: 255}))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Data[100]).To(BeNumerically("~", 76.0/255, 1e-6))
	})

	It("should accept jpeg input", func() {
		img := image.NewGray(image.Rect(0, 0, 64, 64))
		var buf bytes.Buffer
		Expect(jpeg.Encode(&buf, img, nil)).To(Succeed())

		_, err := classifier.Preprocess(buf.Bytes())
		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject data that is not an image", func() {
		_, err := classifier.Preprocess([]byte("definitely not an image"))
		Expect(err).To(MatchError(classifier.ErrDecodeImage))
	})

	It("should reject images declaring huge dimensions before decoding them", func() {
		_, err := classifier.Preprocess(pngHeader(12000, 12000))
		Expect(err).To(MatchError(classifier.ErrDecodeImage))
		Expect(err).To(MatchError(ContainSubstring("12000x12000")))
	})
})

var _ = Describe("ImageFormat", func() {
	It("should name the decoded format", func() {
		Expect(classifier.ImageFormat(encodePNG(4, 4, color.White))).To(Equal("png"))

		var buf bytes.Buffer
		Expect(jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4)), nil)).To(Succeed())
		Expect(classifier.ImageFormat(buf.Bytes())).To(Equal("jpeg"))
	})

	It("should accept the largest allowed size", func() {
		Expect(classifier.ImageFormat(pngHeader(classifier.MaxDimension, 1))).To(Equal("png"))
	})

	It("should reject oversize declarations", func() {
		_, err := classifier.ImageFormat(pngHeader(classifier.MaxDimension+1, 1))
		Expect(err).To(MatchError(classifier.ErrDecodeImage))
	})

	It("should reject markup", func() {
		_, err := classifier.ImageFormat([]byte("<html><script>alert(1)</script></html>"))
		Expect(err).To(MatchError(classifier.ErrDecodeImage))
	})
})

var _ = Describe("Classifier", func() {
	var (
		fakeModel    *fake.Model
		fakeObserver *fake.Observer
		c            *classifier.Classifier
		ctx          context.Context
		data         []byte
		label        string
		err          error
	)

	BeforeEach(func() {
		fakeModel = new(fake.Model)
		fakeObserver = new(fake.Observer)
		c = classifier.NewClassifier(zap.NewNop().Sugar(), fakeModel, fakeObserver)
		ctx = context.Background()
		data = encodePNG(40, 40, color.Gray{Y: 128})
	})

	JustBeforeEach(func() {
		label, err = c.Classify(ctx, data)
	})

	DescribeTable("maps the highest score to its label",
		func(scores []float32, want string) {
			fakeModel.PredictReturns(scores, nil)

			got, err := c.Classify(ctx, data)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("hemorrhagic", []float32{0.8, 0.1, 0.1}, "hemorrhagic Brain Stroke"),
		Entry("ischaemic", []float32{0.2, 0.7, 0.1}, "ischaemic Brain Stroke"),
		Entry("normal", []float32{0.1, 0.2, 0.7}, "normal"),
		Entry("ties go to the first", []float32{0.4, 0.4, 0.2}, "hemorrhagic Brain Stroke"),
	)

	When("the model answers", func() {
		BeforeEach(func() {
			fakeModel.PredictReturns([]float32{0.1, 0.2, 0.7}, nil)
		})

		It("should pass the preprocessed tensor to the model", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(label).To(Equal(classifier.LabelNormal))

			Expect(fakeModel.PredictCallCount()).To(Equal(1))
			_, input := fakeModel.PredictArgsForCall(0)
			Expect(input.Shape).To(Equal([]int{1, 256, 256, 1}))
			Expect(input.Data[0]).To(BeNumerically("~", 128.0/255, 1e-6))

			Expect(fakeObserver.ObserveInferenceCallCount()).To(Equal(1))
			_, observedErr := fakeObserver.ObserveInferenceArgsForCall(0)
			Expect(observedErr).NotTo(HaveOccurred())
		})
	})

	When("the image cannot be decoded", func() {
		BeforeEach(func() {
			data = []byte("garbage")
		})

		It("should fail before inference", func() {
			Expect(err).To(MatchError(classifier.ErrDecodeImage))
			Expect(fakeModel.PredictCallCount()).To(Equal(0))
			Expect(fakeObserver.ObserveInferenceCallCount()).To(Equal(0))
		})
	})

	When("the model fails", func() {
		BeforeEach(func() {
			fakeModel.PredictReturns(nil, errors.New("model down"))
		})

		It("should return an inference error", func() {
			Expect(err).To(MatchError(classifier.ErrInference))
			Expect(err.Error()).To(ContainSubstring("model down"))
			_, observedErr := fakeObserver.ObserveInferenceArgsForCall(0)
			Expect(observedErr).To(HaveOccurred())
		})
	})

	When("the model returns the wrong number of scores", func() {
		BeforeEach(func() {
			fakeModel.PredictReturns([]float32{0.5, 0.5}, nil)
		})

		It("should return an inference error", func() {
			Expect(err).To(MatchError(classifier.ErrInference))
			Expect(label).To(BeEmpty())
		})
	})

	Describe("ClassifyFile", func() {
		BeforeEach(func() {
			fakeModel.PredictReturns([]float32{0.1, 0.7, 0.2}, nil)
		})

		It("should classify the file contents", func() {
			path := filepath.Join(GinkgoT().TempDir(), "scan.png")
			Expect(os.WriteFile(path, data, 0o600)).To(Succeed())

			got, err := c.ClassifyFile(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(classifier.LabelIschaemic))
		})

		It("should fail for a missing file", func() {
			_, err := c.ClassifyFile(ctx, filepath.Join(GinkgoT().TempDir(), "missing.png"))
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})
})
