package report_test

import (
	"bytes"
	"encoding/json"

	"github.com/kubev2v/footprint/internal/estimation"
	"github.com/kubev2v/footprint/internal/estimation/calculators"
	"github.com/kubev2v/footprint/internal/profile"
	"github.com/kubev2v/footprint/internal/report"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"sigs.k8s.io/yaml"
)

const expectedText1000 = `Chip area ratio: 0.25
Total chip area: 1406.25 mm^2
Chip area: 351.56 mm^2
Number of transistors: 1.00e+10
Transistor area: 28.12 um^3
Core cache area ratio: 0.25
Core chip area ratio: 0.0534
Cache area: 4.69 mm^2
Therefore 4.69 mm^2 of the chip is taken up by 2MB of cache
0.000002347 mm^2 per byte of cache
2.35 um^2 per byte of cache
This file takes up 2347.08 um^2 of cache
or it takes up 0.0023471 mm^2 of cache
or it takes up 2347079190.34 nm^2 of cache
Unit cell area: 5.57e-08 um^2
Number of silicon unit cells per byte: 4.21e+07
4.214089e+10
`

func newData(size int64) *report.Data {
	p := profile.Default()
	params := append(p.Params(), estimation.Param{Key: calculators.ParamArtifactBytes, Value: size})
	state, err := calculators.NewChain().Run(params)
	Expect(err).To(BeNil())
	return &report.Data{
		Profile:       p.Name,
		Artifact:      "notes.txt",
		ArtifactBytes: size,
		State:         state,
	}
}

var _ = Describe("Report", func() {
	It("lists every format", func() {
		Expect(report.Formats()).To(Equal([]string{"json", "text", "xlsx", "yaml"}))
	})

	It("rejects an unknown format", func() {
		_, err := report.Render(report.Format("csv"), newData(1))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a missing state", func() {
		_, err := report.Render(report.FormatText, &report.Data{})
		Expect(err).To(HaveOccurred())
	})

	Context("text", func() {
		It("prints the fixed lines for 1000 bytes", func() {
			out, err := report.Render(report.FormatText, newData(1000))
			Expect(err).To(BeNil())
			Expect(string(out)).To(Equal(expectedText1000))
		})

		It("is identical across runs", func() {
			first, err := report.Render(report.FormatText, newData(4096))
			Expect(err).To(BeNil())
			second, err := report.Render(report.FormatText, newData(4096))
			Expect(err).To(BeNil())
			Expect(first).To(Equal(second))
		})

		It("fails when the chain was not run", func() {
			state, err := estimation.NewEngine().Run(profile.Default().Params())
			Expect(err).To(BeNil())

			_, err = report.Render(report.FormatText, &report.Data{State: state})
			Expect(err).To(HaveOccurred())
		})
	})

	Context("structured", func() {
		It("renders json", func() {
			out, err := report.Render(report.FormatJSON, newData(1000))
			Expect(err).To(BeNil())

			var doc report.Document
			Expect(json.Unmarshal(out, &doc)).To(Succeed())
			Expect(doc.Profile).To(Equal(profile.DefaultName))
			Expect(doc.ArtifactBytes).To(Equal(int64(1000)))
			Expect(doc.Inputs).To(HaveLen(13))
			Expect(doc.Estimations).To(HaveLen(12))
			Expect(doc.Estimations[1].Key).To(Equal(calculators.KeyChipArea))
			Expect(doc.Estimations[1].Value).To(Equal(351.5625))
		})

		It("renders yaml", func() {
			out, err := report.Render(report.FormatYAML, newData(1000))
			Expect(err).To(BeNil())

			var doc report.Document
			Expect(yaml.Unmarshal(out, &doc)).To(Succeed())
			Expect(doc.Artifact).To(Equal("notes.txt"))
			Expect(doc.Estimations[len(doc.Estimations)-1].Key).To(Equal(calculators.KeyUnitCellsTaken))
		})
	})

	Context("xlsx", func() {
		It("writes inputs and estimations sheets", func() {
			out, err := report.Render(report.FormatXLSX, newData(1000))
			Expect(err).To(BeNil())

			f, err := excelize.OpenReader(bytes.NewReader(out))
			Expect(err).To(BeNil())
			defer f.Close()

			Expect(f.GetSheetList()).To(Equal([]string{"Inputs", "Estimations"}))

			rows, err := f.GetRows("Estimations")
			Expect(err).To(BeNil())
			Expect(rows).To(HaveLen(13))
			Expect(rows[0]).To(Equal([]string{"Key", "Value", "Unit", "Reason"}))
			Expect(rows[2][0]).To(Equal(calculators.KeyChipArea))

			value, err := f.GetCellValue("Inputs", "B4")
			Expect(err).To(BeNil())
			Expect(value).To(Equal("1000"))
		})
	})
})
