package diffusion_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/statmech/internal/diffusion"
)

type constSource func(n int) int

func (f constSource) IntN(n int) int { return f(n) }

var (
	allRight = constSource(func(n int) int { return n - 1 })
	allLeft  = constSource(func(int) int { return 0 })
)

var _ = Describe("random walk", func() {
	It("shifts everything right and drops the last bin", func() {
		out := diffusion.MonteCarloStep([]int{3, 0, 2, 5}, allRight)
		Expect(out).To(Equal([]int{0, 3, 0, 2}))
	})

	It("shifts everything left and drops the first bin", func() {
		out := diffusion.MonteCarloStep([]int{3, 0, 2, 5}, allLeft)
		Expect(out).To(Equal([]int{0, 2, 5, 0}))
	})

	It("conserves particles away from the edges", func() {
		rng := rand.New(rand.NewPCG(3, 4))
		in := []int{0, 10, 40, 7, 0}
		out := diffusion.MonteCarloStep(in, rng)
		total := 0
		for _, c := range out {
			total += c
		}
		Expect(total).To(Equal(57))
	})

	It("returns a copy for zero steps", func() {
		in := []int{4, 1, 2, 9}
		out := diffusion.MonteCarlo(in, 0, 100)
		Expect(out).To(Equal(in))
		out[0] = -1
		Expect(in[0]).To(Equal(4))
	})

	It("pins the source and sink after every step", func() {
		rng := rand.New(rand.NewPCG(11, 0))
		for steps := 1; steps < 20; steps++ {
			out := diffusion.MonteCarloWithSource(make([]int, 8), steps, 50, rng)
			Expect(out[0]).To(Equal(50))
			Expect(out[7]).To(BeZero())
			for _, c := range out {
				Expect(c).To(BeNumerically(">=", 0))
			}
		}
	})

	It("runs from a time seeded stream", func() {
		out := diffusion.MonteCarlo(make([]int, 6), 10, 30)
		Expect(out).To(HaveLen(6))
		Expect(out[0]).To(Equal(30))
		Expect(out[5]).To(BeZero())
	})

	It("handles empty input", func() {
		Expect(diffusion.MonteCarlo(nil, 5, 1)).To(BeEmpty())
	})
})
