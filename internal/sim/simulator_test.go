package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/sim"
)

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string { return "count" }

func (c *countingMetric) Observe(_ dynamo.State, _ float64) { c.count++ }

func (c *countingMetric) Value() float64 { return float64(c.count) }

func (c *countingMetric) Reset() { c.count = 0 }

type exploding struct{}

func (e *exploding) Derive(x dynamo.State, _ float64) dynamo.State {
	return dynamo.State{x[0] * 1e300}
}
func (e *exploding) StateDim() int { return 1 }

var _ = Describe("Simulator", func() {
	var (
		lorenz *physics.Lorenz
		s      *sim.Simulator
		x0     dynamo.State
		ctx    context.Context
	)

	BeforeEach(func() {
		lorenz = physics.NewLorenz()
		s = sim.New(lorenz, integrators.NewEuler())
		x0 = dynamo.State{1, 0, 0.1}
		ctx = context.Background()
	})

	Context("with the default configuration", func() {
		var result *dynamo.Result

		BeforeEach(func() {
			var err error
			result, err = s.Run(ctx, x0, dynamo.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces num_steps+1 states", func() {
			Expect(result.States).To(HaveLen(10001))
			Expect(result.Times).To(HaveLen(10001))
			Expect(result.StepsTaken).To(Equal(10000))
		})

		It("starts exactly at the initial condition", func() {
			Expect(result.States[0]).To(Equal(dynamo.State{1, 0, 0.1}))
			Expect(result.Times[0]).To(BeZero())
		})

		It("takes the expected first Euler step", func() {
			first := result.States[1]
			Expect(first[0]).To(BeNumerically("~", 0.9, 1e-12))
			Expect(first[1]).To(BeNumerically("~", 0.279, 1e-12))
			Expect(first[2]).To(BeNumerically("~", 0.0973333333333, 1e-12))
		})

		It("follows the Euler recurrence bit for bit", func() {
			for i := 0; i+1 < len(result.States); i++ {
				cur := result.States[i]
				d := lorenz.Derive(cur, 0)
				next := result.States[i+1]
				for k := range cur {
					Expect(next[k]).To(Equal(cur[k]+d[k]*0.01), "step %d component %d", i, k)
				}
			}
		})

		It("stays on a bounded attractor", func() {
			for _, st := range result.States {
				Expect(st.IsValid()).To(BeTrue())
				Expect(st.Norm()).To(BeNumerically("<", 100))
			}
		})

		It("is reproducible", func() {
			again, err := sim.New(physics.NewLorenz(), integrators.NewEuler()).Run(ctx, x0, dynamo.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(again.States).To(Equal(result.States))
		})

		It("does not alias the caller's initial state", func() {
			x0[0] = 42
			Expect(result.States[0][0]).To(Equal(1.0))
		})
	})

	It("returns only the initial condition for zero steps", func() {
		result, err := s.Run(ctx, x0, dynamo.Config{Dt: 0.01, Steps: 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.States).To(HaveLen(1))
		Expect(result.States[0]).To(Equal(x0))
	})

	It("summarises metrics once per state", func() {
		m := &countingMetric{}
		s.AddMetric(m)
		result, err := s.Run(ctx, x0, dynamo.Config{Dt: 0.01, Steps: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKeyWithValue("count", 11.0))
	})

	DescribeTable("rejects invalid configuration",
		func(state dynamo.State, cfg dynamo.Config, want error) {
			_, err := s.Run(ctx, state, cfg)
			Expect(err).To(MatchError(want))
		},
		Entry("zero dt", dynamo.State{1, 0, 0.1}, dynamo.Config{Dt: 0, Steps: 10}, dynamo.ErrParameterBounds),
		Entry("negative dt", dynamo.State{1, 0, 0.1}, dynamo.Config{Dt: -0.1, Steps: 10}, dynamo.ErrParameterBounds),
		Entry("negative steps", dynamo.State{1, 0, 0.1}, dynamo.Config{Dt: 0.01, Steps: -1}, dynamo.ErrParameterBounds),
		Entry("short state", dynamo.State{1, 0}, dynamo.Config{Dt: 0.01, Steps: 10}, dynamo.ErrDimensionMismatch),
	)

	It("returns the partial trajectory when cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		result, err := s.Run(cctx, x0, dynamo.DefaultConfig())
		Expect(err).To(MatchError(dynamo.ErrContextCanceled))
		Expect(result.States).To(HaveLen(1))
	})

	Context("when the state diverges", func() {
		var diverging *sim.Simulator

		BeforeEach(func() {
			diverging = sim.New(&exploding{}, integrators.NewEuler())
		})

		It("keeps integrating without validation", func() {
			result, err := diverging.Run(ctx, dynamo.State{1}, dynamo.Config{Dt: 1, Steps: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.States).To(HaveLen(6))
			Expect(math.IsInf(result.Final()[0], 1)).To(BeTrue())
		})

		It("stops at the first invalid state when validation is on", func() {
			result, err := diverging.Run(ctx, dynamo.State{1}, dynamo.Config{Dt: 1, Steps: 5, ValidateState: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.States).To(HaveLen(2))
			Expect(result.Errors).To(HaveLen(1))
			Expect(result.Errors[0]).To(MatchError(dynamo.ErrInvalidState))
		})
	})
})
