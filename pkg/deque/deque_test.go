package deque_test

import (
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/forkpool/pkg/deque"
)

func ptr(i int) *int { return &i }

var _ = Describe("Deque", func() {
	var d *deque.Deque[int]

	BeforeEach(func() {
		d = deque.New[int](4)
	})

	Context("empty deque", func() {
		It("should report no element on pop and steal", func() {
			v, ok := d.Pop()
			Expect(ok).To(BeFalse())
			Expect(v).To(BeNil())

			v, ok = d.Steal()
			Expect(ok).To(BeFalse())
			Expect(v).To(BeNil())

			Expect(d.Empty()).To(BeTrue())
			Expect(d.Len()).To(BeZero())
		})
	})

	Context("owner end", func() {
		// Given three pushed elements
		// When the owner pops them
		// Then they come back newest first
		It("should pop in LIFO order", func() {
			for i := 1; i <= 3; i++ {
				d.Push(ptr(i))
			}

			for _, want := range []int{3, 2, 1} {
				v, ok := d.Pop()
				Expect(ok).To(BeTrue())
				Expect(*v).To(Equal(want))
			}
			Expect(d.Empty()).To(BeTrue())
		})
	})

	Context("thief end", func() {
		It("should steal in FIFO order", func() {
			for i := 1; i <= 3; i++ {
				d.Push(ptr(i))
			}

			for _, want := range []int{1, 2, 3} {
				v, ok := d.Steal()
				Expect(ok).To(BeTrue())
				Expect(*v).To(Equal(want))
			}
			_, ok := d.Steal()
			Expect(ok).To(BeFalse())
		})

		It("should share the last element between pop and steal exactly once", func() {
			d.Push(ptr(7))

			_, stolen := d.Steal()
			_, popped := d.Pop()

			Expect(stolen).To(BeTrue())
			Expect(popped).To(BeFalse())
		})
	})

	Context("growth", func() {
		// Given a deque created with a small capacity
		// When more elements than the capacity are pushed
		// Then the ring grows and no element is lost
		It("should keep every element when growing", func() {
			for i := 0; i < 100; i++ {
				d.Push(ptr(i))
			}
			Expect(d.Cap()).To(BeNumerically(">=", 100))
			Expect(d.Len()).To(Equal(100))

			seen := map[int]bool{}
			for {
				v, ok := d.Pop()
				if !ok {
					break
				}
				seen[*v] = true
			}
			Expect(seen).To(HaveLen(100))
		})
	})

	Context("concurrent owner and thieves", func() {
		// Given one owner pushing and popping and several thieves stealing
		// When all elements have been taken
		// Then each element was delivered exactly once
		It("should deliver every element exactly once", func() {
			const total = 20000
			const thieves = 4

			counts := make([]atomic.Int32, total)
			var taken atomic.Int64
			var wg sync.WaitGroup

			done := make(chan struct{})
			for range thieves {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					for {
						select {
						case <-done:
							return
						default:
						}
						if v, ok := d.Steal(); ok {
							counts[*v].Add(1)
							taken.Add(1)
						}
					}
				}()
			}

			for i := 0; i < total; i++ {
				d.Push(ptr(i))
				if i%3 == 0 {
					if v, ok := d.Pop(); ok {
						counts[*v].Add(1)
						taken.Add(1)
					}
				}
			}
			for {
				v, ok := d.Pop()
				if !ok {
					break
				}
				counts[*v].Add(1)
				taken.Add(1)
			}

			Eventually(taken.Load).Should(BeEquivalentTo(total))
			close(done)
			wg.Wait()

			for i := range counts {
				Expect(counts[i].Load()).To(BeEquivalentTo(1), "element %d", i)
			}
		})
	})
})
