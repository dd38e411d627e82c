package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/kubev2v/footprint/internal/artifact"
	"github.com/kubev2v/footprint/internal/cli"
	"github.com/kubev2v/footprint/internal/report"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

var _ = Describe("estimate", func() {
	var (
		dir   string
		input string
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "estimate-test")
		Expect(err).To(BeNil())
		input = filepath.Join(dir, "input.txt")
		Expect(os.WriteFile(input, make([]byte, 1000), 0o600)).To(Succeed())
	})
	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("prints the text report for a file", func() {
		out, err := execute(cli.NewCmdEstimate(), input, "-o", "text")
		Expect(err).To(BeNil())
		Expect(out).To(HavePrefix("Chip area ratio: 0.25\n"))
		Expect(out).To(ContainSubstring("This file takes up 2347.08 um^2 of cache\n"))
		Expect(out).To(HaveSuffix("4.214089e+10\n"))
	})

	It("produces identical output on repeated runs", func() {
		first, err := execute(cli.NewCmdEstimate(), input, "-o", "text")
		Expect(err).To(BeNil())
		second, err := execute(cli.NewCmdEstimate(), input, "-o", "text")
		Expect(err).To(BeNil())
		Expect(first).To(Equal(second))
	})

	It("measures the running executable without an argument", func() {
		out, err := execute(cli.NewCmdEstimate(), "-o", "json")
		Expect(err).To(BeNil())

		var doc report.Document
		Expect(json.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc.ArtifactBytes).To(BeNumerically(">", 0))
	})

	It("fails with ErrInputUnreadable and prints nothing for a missing file", func() {
		out, err := execute(cli.NewCmdEstimate(), filepath.Join(dir, "absent.txt"), "-o", "text")
		Expect(err).To(HaveOccurred())

		var unreadable *artifact.ErrInputUnreadable
		Expect(errors.As(err, &unreadable)).To(BeTrue())
		Expect(out).To(BeEmpty())
	})

	It("applies a profile file", func() {
		profilePath := filepath.Join(dir, "cpu.yaml")
		Expect(os.WriteFile(profilePath, []byte("name: half\nchipAreaRatio: 0.5\n"), 0o600)).To(Succeed())

		out, err := execute(cli.NewCmdEstimate(), input, "-o", "text", "--profile", profilePath)
		Expect(err).To(BeNil())
		Expect(out).To(HavePrefix("Chip area ratio: 0.50\nTotal chip area: 1406.25 mm^2\nChip area: 703.12 mm^2\n"))
	})

	It("rejects an unknown output format", func() {
		_, err := execute(cli.NewCmdEstimate(), input, "-o", "csv")
		Expect(err).To(HaveOccurred())
	})

	It("requires an output file for xlsx", func() {
		_, err := execute(cli.NewCmdEstimate(), input, "-o", "xlsx")
		Expect(err).To(HaveOccurred())
	})

	It("writes the report to a file", func() {
		target := filepath.Join(dir, "report.xlsx")
		out, err := execute(cli.NewCmdEstimate(), input, "-o", "xlsx", "--out-file", target)
		Expect(err).To(BeNil())
		Expect(out).To(BeEmpty())

		info, err := os.Stat(target)
		Expect(err).To(BeNil())
		Expect(info.Size()).To(BeNumerically(">", 0))
	})
})

var _ = Describe("constants", func() {
	It("prints the default profile as yaml", func() {
		out, err := execute(cli.NewCmdConstants())
		Expect(err).To(BeNil())
		Expect(out).To(ContainSubstring("name: Intel Core i9-9900K"))
		Expect(out).To(ContainSubstring("bondLengthUM: 0.000236"))
	})

	It("prints the default profile as json", func() {
		out, err := execute(cli.NewCmdConstants(), "-o", "json")
		Expect(err).To(BeNil())

		var fields map[string]interface{}
		Expect(json.Unmarshal([]byte(out), &fields)).To(Succeed())
		Expect(fields["packageWidthMM"]).To(Equal(37.5))
	})

	It("rejects an unknown output format", func() {
		_, err := execute(cli.NewCmdConstants(), "-o", "xml")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("version", func() {
	It("prints the version", func() {
		out, err := execute(cli.NewCmdVersion())
		Expect(err).To(BeNil())
		Expect(out).To(HavePrefix("Footprint Version: "))
	})
})
