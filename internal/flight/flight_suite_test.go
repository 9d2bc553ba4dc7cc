package flight_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rocketsim/internal/builder"
	"github.com/san-kum/rocketsim/internal/design"
	"github.com/san-kum/rocketsim/internal/flight"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/spatial"
	"github.com/san-kum/rocketsim/internal/tvc"
)

func TestFlightSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Flight Suite")
}

var _ = Describe("Loop", func() {
	var d *design.Design

	BeforeEach(func() {
		var err error
		d, err = builder.Build(builder.DefaultVehicle())
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Lock()).To(Succeed())
	})

	It("flies the default vehicle up under thrust and back to the ground", func() {
		mount := tvc.NewMount()
		mount.MoveTo(spatial.NewVec3(0, 0, 0))

		loop := flight.New(d)
		loop.AddForce(flight.NewGravity())
		loop.AddForce(&flight.Thrust{Curve: flight.ConstantCurve(30, 2.0), Mount: mount})

		apogee := metrics.NewApogee()
		maxSpeed := metrics.NewMaxSpeed()
		tilt := metrics.NewTilt()
		loop.AddMetric(apogee)
		loop.AddMetric(maxSpeed)
		loop.AddMetric(tilt)

		result, err := loop.Run(context.Background(), flight.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Metrics).To(HaveKey("apogee"))
		Expect(apogee.Value()).To(BeNumerically(">", 1.0))
		Expect(maxSpeed.Value()).To(BeNumerically(">", 10.0))

		// thrust through the axis: the vehicle stays upright
		Expect(tilt.Value()).To(BeNumerically("<", 0.01))

		// it came back down
		final := result.States[len(result.States)-1]
		Expect(final.Pos.Z).To(BeNumerically("<", 0.1))
	})

	It("sees propellant drain through the dynamic group mid-flight", func() {
		motor, ok := d.DynamicElement("motor")
		Expect(ok).To(BeTrue())

		initial := d.Properties().Mass
		burnTime := 1.5
		full := motor.Mass()

		loop := flight.New(d)
		loop.AddForce(flight.NewGravity())
		loop.AddForce(&flight.Thrust{Curve: flight.ConstantCurve(25, burnTime), Mount: tvc.NewMount()})
		loop.AddObserver(flight.ObserverFunc(func(st flight.State) {
			remaining := full * (1 - st.T/burnTime)
			if remaining > 0.01 {
				Expect(motor.SetMass(remaining)).To(Succeed())
			}
		}))

		cfg := flight.Config{Dt: 0.005, Duration: 1.0, StopOnGround: false}
		_, err := loop.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(d.Properties().Mass).To(BeNumerically("<", initial))
	})

	It("propagates an observer-visible time axis", func() {
		loop := flight.New(d)
		loop.AddForce(flight.NewGravity())

		var times []float64
		loop.AddObserver(flight.ObserverFunc(func(st flight.State) {
			times = append(times, st.T)
		}))

		cfg := flight.Config{Dt: 0.01, Duration: 0.1, StopOnGround: false}
		result, err := loop.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(times).To(HaveLen(len(result.Times)))
		Expect(times[0]).To(BeZero())
		Expect(times[len(times)-1]).To(BeNumerically("~", 0.1, 1e-9))
	})
})
