package eventcount_test

import (
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/forkpool/pkg/eventcount"
)

var _ = Describe("EventCount", func() {
	var ec *eventcount.EventCount

	BeforeEach(func() {
		ec = eventcount.New()
	})

	Context("notify before wait", func() {
		// Given a prepared waiter
		// When a notification arrives before the waiter commits
		// Then Wait returns immediately
		It("should not lose a notification issued after PrepareWait", func() {
			key := ec.PrepareWait()
			ec.NotifyOne()

			done := make(chan struct{})
			go func() {
				ec.Wait(key)
				close(done)
			}()

			Eventually(done, time.Second).Should(BeClosed())
		})

		It("should ignore notifications when nobody is prepared", func() {
			ec.NotifyOne()
			ec.NotifyAll()

			key := ec.PrepareWait()
			done := make(chan struct{})
			go func() {
				ec.Wait(key)
				close(done)
			}()

			Consistently(done, 100*time.Millisecond).ShouldNot(BeClosed())
			ec.NotifyOne()
			Eventually(done, time.Second).Should(BeClosed())
		})
	})

	Context("cancel", func() {
		It("should remove the waiter from the wait list", func() {
			key := ec.PrepareWait()
			Expect(ec.Waiters()).To(Equal(1))

			ec.CancelWait(key)
			Expect(ec.Waiters()).To(BeZero())
		})

		// Given two prepared waiters where the first cancels
		// When NotifyOne is issued
		// Then the second waiter is woken
		It("should hand the next notification to a remaining waiter", func() {
			first := ec.PrepareWait()
			second := ec.PrepareWait()
			ec.CancelWait(first)

			done := make(chan struct{})
			go func() {
				ec.Wait(second)
				close(done)
			}()

			ec.NotifyOne()
			Eventually(done, time.Second).Should(BeClosed())
		})

		// Given a waiter asleep behind an older prepared waiter
		// When NotifyOne picks the older waiter and it cancels
		// Then the sleeper is woken instead
		It("should pass a consumed NotifyOne on to a sleeping waiter", func() {
			first := ec.PrepareWait()
			second := ec.PrepareWait()

			done := make(chan struct{})
			go func() {
				ec.Wait(second)
				close(done)
			}()

			ec.NotifyOne()
			Consistently(done, 50*time.Millisecond).ShouldNot(BeClosed())

			ec.CancelWait(first)
			Eventually(done, time.Second).Should(BeClosed())
			Expect(ec.Waiters()).To(BeZero())
		})

		It("should not pass on a NotifyAll wakeup", func() {
			first := ec.PrepareWait()
			ec.NotifyAll()
			second := ec.PrepareWait()

			ec.CancelWait(first)
			Expect(ec.Waiters()).To(Equal(1))
			ec.CancelWait(second)
		})
	})

	Context("NotifyOne", func() {
		It("should wake exactly one of several sleepers", func() {
			var woken atomic.Int32
			for range 3 {
				key := ec.PrepareWait()
				go func() {
					ec.Wait(key)
					woken.Add(1)
				}()
			}

			ec.NotifyOne()
			Eventually(woken.Load, time.Second).Should(BeEquivalentTo(1))
			Consistently(woken.Load, 100*time.Millisecond).Should(BeEquivalentTo(1))

			ec.NotifyAll()
			Eventually(woken.Load, time.Second).Should(BeEquivalentTo(3))
		})
	})

	Context("NotifyAll", func() {
		It("should wake every sleeper", func() {
			var wg sync.WaitGroup
			for range 8 {
				key := ec.PrepareWait()
				wg.Add(1)
				go func() {
					defer wg.Done()
					ec.Wait(key)
				}()
			}

			ec.NotifyAll()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			Eventually(done, time.Second).Should(BeClosed())
			Expect(ec.Waiters()).To(BeZero())
		})
	})

	Context("producer/consumer handshake", func() {
		// Given a consumer that re-checks a flag between PrepareWait and Wait
		// When a producer sets the flag and notifies concurrently, many times
		// Then the consumer never sleeps through a set flag
		It("should never miss a wakeup", func() {
			for range 500 {
				var flag atomic.Bool
				done := make(chan struct{})

				go func() {
					defer close(done)
					for {
						key := ec.PrepareWait()
						if flag.Load() {
							ec.CancelWait(key)
							return
						}
						ec.Wait(key)
					}
				}()

				flag.Store(true)
				ec.NotifyAll()

				Eventually(done, time.Second).Should(BeClosed())
			}
		})
	})
})
