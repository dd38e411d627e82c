package artifact_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kubev2v/footprint/internal/artifact"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Size", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "artifact-test")
		Expect(err).To(BeNil())
	})
	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("returns the byte size of a file", func() {
		path := filepath.Join(dir, "input.txt")
		Expect(os.WriteFile(path, make([]byte, 1000), 0o600)).To(Succeed())

		size, err := artifact.Size(path)
		Expect(err).To(BeNil())
		Expect(size).To(Equal(int64(1000)))
	})

	It("returns zero for an empty file", func() {
		path := filepath.Join(dir, "empty")
		Expect(os.WriteFile(path, nil, 0o600)).To(Succeed())

		size, err := artifact.Size(path)
		Expect(err).To(BeNil())
		Expect(size).To(BeZero())
	})

	It("fails with ErrInputUnreadable on a missing file", func() {
		path := filepath.Join(dir, "absent")

		_, err := artifact.Size(path)
		Expect(err).To(HaveOccurred())

		var unreadable *artifact.ErrInputUnreadable
		Expect(errors.As(err, &unreadable)).To(BeTrue())
		Expect(unreadable.Path).To(Equal(path))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("fails with ErrInputUnreadable on a directory", func() {
		_, err := artifact.Size(dir)

		var unreadable *artifact.ErrInputUnreadable
		Expect(errors.As(err, &unreadable)).To(BeTrue())
	})
})

var _ = Describe("Size on an unreadable file", func() {
	It("fails with ErrInputUnreadable when the content cannot be read", func() {
		// opens fine on Linux, but reading from offset 0 fails
		const path = "/proc/self/mem"
		f, err := os.Open(path)
		if err != nil {
			Skip("/proc/self/mem is not available")
		}
		f.Close()

		size, err := artifact.Size(path)
		Expect(err).To(HaveOccurred())
		Expect(size).To(BeZero())

		var unreadable *artifact.ErrInputUnreadable
		Expect(errors.As(err, &unreadable)).To(BeTrue())
		Expect(unreadable.Path).To(Equal(path))
	})
})

var _ = Describe("Self", func() {
	It("points at a measurable executable", func() {
		path, err := artifact.Self()
		Expect(err).To(BeNil())

		size, err := artifact.Size(path)
		Expect(err).To(BeNil())
		Expect(size).To(BeNumerically(">", 0))
	})
})
