package diffusion_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/statmech/internal/diffusion"
)

var _ = Describe("stencil routines", func() {
	It("multiplies interior points and keeps the boundary", func() {
		v := []float64{1, 2, 3, 4}
		diffusion.MultiplyInPlace(v, 2, 1)
		Expect(v).To(Equal([]float64{1, 1 + 4 + 3, 2 + 6 + 4, 4}))
	})

	It("inverts the multiply", func() {
		orig := []float64{1, 0.3, -0.2, 0.7, 0.1, 0}
		v := append([]float64(nil), orig...)
		diffusion.MultiplyInPlace(v, 1.8, -0.4)
		diffusion.SolveInPlace(v, 1.8, -0.4)
		for i := range orig {
			Expect(v[i]).To(BeNumerically("~", orig[i], 1e-12))
		}
	})

	It("leaves vectors shorter than three untouched", func() {
		v := []float64{5, 6}
		diffusion.MultiplyInPlace(v, 3, 3)
		diffusion.SolveInPlace(v, 3, 3)
		Expect(v).To(Equal([]float64{5, 6}))
	})
})

var _ = Describe("finite difference schemes", func() {
	var initial []float64

	BeforeEach(func() {
		initial = diffusion.StepInitial(11, 1)
	})

	DescribeTable("alpha = 0 is the identity",
		func(scheme diffusion.Scheme, steps int) {
			in := []float64{0.5, 1, -2, 3.25, 0, 7}
			out, err := diffusion.Solve(scheme, in, 0, steps)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(in))
		},
		Entry("forward euler, one step", diffusion.SchemeForwardEuler, 1),
		Entry("forward euler, many steps", diffusion.SchemeForwardEuler, 100),
		Entry("backward euler, one step", diffusion.SchemeBackwardEuler, 1),
		Entry("backward euler, many steps", diffusion.SchemeBackwardEuler, 100),
		Entry("crank nicolson, one step", diffusion.SchemeCrankNicolson, 1),
		Entry("crank nicolson, many steps", diffusion.SchemeCrankNicolson, 100),
		Entry("zero steps", diffusion.SchemeCrankNicolson, 0),
	)

	DescribeTable("tracks the series solution",
		func(scheme diffusion.Scheme) {
			alpha, steps := 0.4, 50
			t := alpha * 0.01 * float64(steps)
			want := diffusion.AnalyticProfile(11, t, 200)

			got, err := diffusion.Solve(scheme, initial, alpha, steps)
			Expect(err).NotTo(HaveOccurred())
			for i := range want {
				Expect(got[i]).To(BeNumerically("~", want[i], 0.03), "node %d", i)
			}
		},
		Entry("forward euler", diffusion.SchemeForwardEuler),
		Entry("backward euler", diffusion.SchemeBackwardEuler),
		Entry("crank nicolson", diffusion.SchemeCrankNicolson),
	)

	It("relaxes to the linear steady state", func() {
		got := diffusion.BackwardEuler(initial, 10, 200)
		for i := range got {
			Expect(got[i]).To(BeNumerically("~", 1-float64(i)/10, 1e-9))
		}
	})

	It("does not modify its input", func() {
		_ = diffusion.ForwardEuler(initial, 0.25, 10)
		_ = diffusion.BackwardEuler(initial, 0.25, 10)
		_ = diffusion.CrankNicolson(initial, 0.25, 10)
		Expect(initial).To(Equal(diffusion.StepInitial(11, 1)))
	})

	It("is deterministic", func() {
		a := diffusion.CrankNicolson(initial, 0.7, 30)
		b := diffusion.CrankNicolson(initial, 0.7, 30)
		Expect(a).To(Equal(b))
	})

	It("rejects unknown schemes", func() {
		_, err := diffusion.Solve("rk4", initial, 0.1, 1)
		Expect(err).To(MatchError(diffusion.ErrUnknownScheme))

		_, err = diffusion.ParseScheme("nope")
		Expect(err).To(MatchError(diffusion.ErrUnknownScheme))

		s, err := diffusion.ParseScheme("cn")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(diffusion.SchemeCrankNicolson))
	})
})
