package profile_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kubev2v/footprint/internal/estimation/calculators"
	"github.com/kubev2v/footprint/internal/profile"
	"github.com/kubev2v/footprint/internal/validator"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Profile", func() {
	Context("default", func() {
		It("keeps the i9-9900K constants", func() {
			p := profile.Default()
			Expect(p.Name).To(Equal(profile.DefaultName))
			Expect(p.PackageWidthMM).To(Equal(37.5))
			Expect(p.PackageHeightMM).To(Equal(37.5))
			Expect(p.ChipAreaRatio).To(Equal(0.25))
			Expect(p.DieDepthMM).To(Equal(0.8))
			Expect(p.TransistorCount).To(Equal(1e10))
			Expect(p.CoreCacheAreaRatio).To(Equal(0.25))
			Expect(p.CoreDiagramWidth).To(Equal(4.7))
			Expect(p.CoreDiagramHeight).To(Equal(3.0))
			Expect(p.DieDiagramWidth).To(Equal(24.0))
			Expect(p.DieDiagramHeight).To(Equal(11.0))
			Expect(p.CacheBytes).To(Equal(2e6))
			Expect(p.BondLengthUM).To(Equal(0.000236))
		})

		It("is valid", func() {
			Expect(profile.Default().Validate()).To(Succeed())
		})

		It("exposes every constant as a param", func() {
			params := profile.Default().Params()
			Expect(params).To(HaveLen(12))
			Expect(params[0].Key).To(Equal(calculators.ParamPackageWidthMM))
			Expect(params[len(params)-1].Key).To(Equal(calculators.ParamBondLengthUM))
			Expect(params[len(params)-1].Value).To(Equal(0.000236))
		})

		It("prints as json", func() {
			s := profile.Default().String()
			Expect(s).To(ContainSubstring(`"name":"` + profile.DefaultName + `"`))
			Expect(s).To(ContainSubstring(`"bondLengthUM":0.000236`))
		})
	})

	Context("load", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "profile-test")
			Expect(err).To(BeNil())
		})
		AfterEach(func() {
			os.RemoveAll(dir)
		})

		write := func(name, content string) string {
			path := filepath.Join(dir, name)
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
			return path
		}

		It("overrides only the given fields", func() {
			path := write("p.yaml", "name: small-cpu\npackageWidthMM: 10\ncacheBytes: 1048576\n")

			p, err := profile.Load(path)
			Expect(err).To(BeNil())
			Expect(p.Name).To(Equal("small-cpu"))
			Expect(p.PackageWidthMM).To(Equal(10.0))
			Expect(p.PackageHeightMM).To(Equal(37.5))
			Expect(p.CacheBytes).To(Equal(1048576.0))
		})

		It("rejects unknown fields", func() {
			path := write("p.yaml", "name: cpu\nwattage: 95\n")

			_, err := profile.Load(path)
			Expect(err).To(HaveOccurred())
		})

		It("rejects out of range ratios", func() {
			path := write("p.yaml", "chipAreaRatio: 1.5\n")

			_, err := profile.Load(path)
			Expect(err).To(HaveOccurred())
			var fieldErr *validator.ErrInvalidField
			Expect(errors.As(err, &fieldErr)).To(BeTrue())
			Expect(fieldErr.Field).To(Equal("ChipAreaRatio"))
		})

		It("fails on a missing file", func() {
			_, err := profile.Load(filepath.Join(dir, "absent.yaml"))
			Expect(err).To(HaveOccurred())
		})

		It("returns the default on an empty path", func() {
			p, err := profile.LoadOrDefault("")
			Expect(err).To(BeNil())
			Expect(p).To(Equal(profile.Default()))
		})
	})
})
