package session_test

import (
	"time"

	"github.com/tinymachines/wopr/pkg/session"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ManualClock", func() {
	It("should not fire before the deadline", func() {
		clock := session.NewManualClock()
		fired := false
		clock.AfterFunc(time.Second, func() { fired = true })

		clock.Advance(999 * time.Millisecond)
		Expect(fired).To(BeFalse())

		clock.Advance(1 * time.Millisecond)
		Expect(fired).To(BeTrue())
	})

	It("should fire timers in deadline order", func() {
		clock := session.NewManualClock()
		var order []string
		clock.AfterFunc(2*time.Second, func() { order = append(order, "second") })
		clock.AfterFunc(1*time.Second, func() { order = append(order, "first") })

		clock.Advance(3 * time.Second)
		Expect(order).To(Equal([]string{"first", "second"}))
	})

	It("should fire each timer at most once", func() {
		clock := session.NewManualClock()
		count := 0
		clock.AfterFunc(time.Second, func() { count++ })

		clock.Advance(time.Second)
		clock.Advance(time.Second)
		Expect(count).To(Equal(1))
	})

	It("should not fire a stopped timer", func() {
		clock := session.NewManualClock()
		fired := false
		t := clock.AfterFunc(time.Second, func() { fired = true })

		Expect(t.Stop()).To(BeTrue())
		clock.Advance(2 * time.Second)
		Expect(fired).To(BeFalse())
	})

	It("should report Stop false once fired", func() {
		clock := session.NewManualClock()
		t := clock.AfterFunc(time.Second, func() {})

		clock.Advance(time.Second)
		Expect(t.Stop()).To(BeFalse())
	})
})

var _ = Describe("NewClock", func() {
	It("should schedule and cancel real timers", func() {
		clock := session.NewClock()
		fired := make(chan struct{}, 1)

		t := clock.AfterFunc(time.Hour, func() { fired <- struct{}{} })
		Expect(t.Stop()).To(BeTrue())
		Consistently(fired, 50*time.Millisecond).ShouldNot(Receive())
	})
})
