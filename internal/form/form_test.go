package form_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fisicalc/internal/form"
)

var _ = Describe("Schema", func() {
	var schema form.Schema

	BeforeEach(func() {
		schema = form.Schema{Fields: []form.Field{
			{Name: "mass", Label: "Masa", Unit: "kg", Default: 3000},
			{Name: "friction", Label: "Coeficiente de fricción", Default: 0.7},
		}}
	})

	Describe("Parse", func() {
		It("parses every field into values", func() {
			vals, errs := schema.Parse(map[string]string{
				"mass":     "3000",
				"friction": "0.7",
			})
			Expect(errs).To(BeEmpty())
			Expect(vals).To(HaveKeyWithValue("mass", 3000.0))
			Expect(vals).To(HaveKeyWithValue("friction", 0.7))
		})

		It("trims surrounding whitespace", func() {
			vals, errs := schema.Parse(map[string]string{
				"mass":     "  12.5 ",
				"friction": "1",
			})
			Expect(errs).To(BeEmpty())
			Expect(vals["mass"]).To(Equal(12.5))
		})

		It("rejects a missing field", func() {
			vals, errs := schema.Parse(map[string]string{
				"friction": "0.7",
			})
			Expect(vals).To(BeNil())
			Expect(errs.Has("mass")).To(BeTrue())
			Expect(errs["mass"]).To(MatchError(form.ErrFieldRequired))
		})

		It("rejects a blank field", func() {
			_, errs := schema.Parse(map[string]string{
				"mass":     "   ",
				"friction": "0.7",
			})
			Expect(errs["mass"]).To(MatchError(form.ErrFieldRequired))
		})

		It("rejects text that is not a number", func() {
			_, errs := schema.Parse(map[string]string{
				"mass":     "tres mil",
				"friction": "0.7",
			})
			Expect(errs["mass"]).To(MatchError(form.ErrNotANumber))
		})

		It("rejects literal NaN and infinities", func() {
			_, errs := schema.Parse(map[string]string{
				"mass":     "NaN",
				"friction": "+Inf",
			})
			Expect(errs["mass"]).To(MatchError(form.ErrNotFinite))
			Expect(errs["friction"]).To(MatchError(form.ErrNotFinite))
		})

		It("reports every failing field at once", func() {
			_, errs := schema.Parse(map[string]string{})
			Expect(errs).To(HaveLen(2))
		})
	})

	Describe("Names", func() {
		It("preserves declaration order", func() {
			Expect(schema.Names()).To(Equal([]string{"mass", "friction"}))
		})
	})

	Describe("FormatValue", func() {
		It("round-trips through Parse", func() {
			s := form.Schema{Fields: []form.Field{{Name: "x"}}}
			vals, errs := s.Parse(map[string]string{"x": form.FormatValue(9.81)})
			Expect(errs).To(BeEmpty())
			Expect(vals["x"]).To(Equal(9.81))
		})
	})
})
