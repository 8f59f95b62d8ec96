package scheduler_test

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/freshcache"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler"
	"github.com/nicomenzi/cookie-clicker-2-sub000/internal/scheduler/fake"
)

var _ = Describe("Scheduler", func() {
	var (
		sched        *scheduler.Scheduler
		cache        *freshcache.Cache
		fakeSwitcher *fake.EndpointSwitcher
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context
		cfg          scheduler.Config
	)

	BeforeEach(func() {
		cache = freshcache.New()
		fakeSwitcher = new(fake.EndpointSwitcher)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		cfg = scheduler.Config{TxPerSecond: 9, InfoPerSecond: 3}
	})

	JustBeforeEach(func() {
		sched = scheduler.New(fakeLogger, cache, fakeSwitcher, cfg)
		sched.Run()
	})

	AfterEach(func() {
		sched.Stop()
	})

	Describe("Fetch", func() {
		It("runs the operation and returns its value", func() {
			value, err := sched.Fetch(ctx, scheduler.FetchOptions{}, func(ctx context.Context) (any, error) {
				return big.NewInt(7), nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(big.NewInt(7)))

			processed, failed := sched.Counters()
			Expect(processed).To(Equal(uint64(1)))
			Expect(failed).To(Equal(uint64(0)))
		})

		It("serves a fresh cache hit without dispatching", func() {
			cache.Set(freshcache.GasPrice, "global", big.NewInt(99))

			var opCalls int32
			value, err := sched.Fetch(ctx, scheduler.FetchOptions{
				CacheType: freshcache.GasPrice,
				CacheKey:  "global",
			}, func(ctx context.Context) (any, error) {
				atomic.AddInt32(&opCalls, 1)
				return nil, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(big.NewInt(99)))
			Expect(atomic.LoadInt32(&opCalls)).To(Equal(int32(0)))
		})

		It("writes the result through to the cache", func() {
			_, err := sched.Fetch(ctx, scheduler.FetchOptions{
				CacheType: freshcache.GasPrice,
				CacheKey:  "global",
			}, func(ctx context.Context) (any, error) {
				return big.NewInt(11), nil
			})
			Expect(err).NotTo(HaveOccurred())

			value, ok := cache.Get(freshcache.GasPrice, "global")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal(big.NewInt(11)))
		})

		It("honors the caller's context", func() {
			shortCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			slow := make(chan struct{})
			defer close(slow)
			_, err := sched.Fetch(shortCtx, scheduler.FetchOptions{}, func(ctx context.Context) (any, error) {
				<-slow
				return nil, nil
			})
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})

		When("more requests arrive than the budget allows", func() {
			BeforeEach(func() {
				cfg.InfoPerSecond = 2
			})

			It("never exceeds the budget in any sliding second", func() {
				var mu sync.Mutex
				var dispatches []time.Time

				var wg sync.WaitGroup
				for i := 0; i < 7; i++ {
					wg.Add(1)
					go func() {
						defer GinkgoRecover()
						defer wg.Done()
						_, err := sched.Fetch(ctx, scheduler.FetchOptions{}, func(ctx context.Context) (any, error) {
							mu.Lock()
							dispatches = append(dispatches, time.Now())
							mu.Unlock()
							return nil, nil
						})
						Expect(err).NotTo(HaveOccurred())
					}()
				}
				wg.Wait()

				mu.Lock()
				defer mu.Unlock()
				Expect(dispatches).To(HaveLen(7))
				sort.Slice(dispatches, func(i, j int) bool {
					return dispatches[i].Before(dispatches[j])
				})
				for i := range dispatches {
					inWindow := 0
					for j := i; j < len(dispatches); j++ {
						if dispatches[j].Sub(dispatches[i]) < time.Second {
							inWindow++
						}
					}
					Expect(inWindow).To(BeNumerically("<=", 2))
				}
			})
		})

		When("the informational budget is one per second", func() {
			BeforeEach(func() {
				cfg.InfoPerSecond = 1
			})

			It("dispatches high priority before low", func() {
				var mu sync.Mutex
				var order []string
				run := func(name string) func(context.Context) (any, error) {
					return func(ctx context.Context) (any, error) {
						mu.Lock()
						order = append(order, name)
						mu.Unlock()
						return nil, nil
					}
				}

				var wg sync.WaitGroup
				wg.Add(2)
				go func() {
					defer wg.Done()
					sched.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityLow}, run("low"))
				}()
				time.Sleep(100 * time.Millisecond)
				go func() {
					defer wg.Done()
					sched.Fetch(ctx, scheduler.FetchOptions{Priority: scheduler.PriorityHigh}, run("high"))
				}()
				wg.Wait()

				mu.Lock()
				defer mu.Unlock()
				Expect(order).To(Equal([]string{"high", "low"}))
			})
		})
	})

	Describe("Transact", func() {
		It("runs the operation under the transactional budget", func() {
			value, err := sched.Transact(ctx, scheduler.TransactOptions{}, func(ctx context.Context) (any, error) {
				return "sent", nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("sent"))
		})

		When("a rate limit error persists through all retries", func() {
			It("switches the endpoint and reports the failure", func() {
				fakeSwitcher.SwitchReturns(true)
				rateErr := errors.New("429 too many requests")

				_, err := sched.Transact(ctx, scheduler.TransactOptions{MaxRetries: 1}, func(ctx context.Context) (any, error) {
					return nil, rateErr
				})
				Expect(err).To(MatchError(rateErr))
				Expect(fakeSwitcher.SwitchCallCount()).To(BeNumerically(">=", 1))

				_, failed := sched.Counters()
				Expect(failed).To(Equal(uint64(1)))
			})
		})

		When("a transient error clears on retry", func() {
			It("retries and succeeds", func() {
				var attempts int32
				value, err := sched.Transact(ctx, scheduler.TransactOptions{MaxRetries: 2}, func(ctx context.Context) (any, error) {
					if atomic.AddInt32(&attempts, 1) < 2 {
						return nil, errors.New("connection reset")
					}
					return "sent", nil
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("sent"))
				Expect(atomic.LoadInt32(&attempts)).To(Equal(int32(2)))
			})
		})
	})

	Describe("SetVisible", func() {
		It("pauses dispatching while hidden and resumes on show", func() {
			sched.SetVisible(false)

			var opCalls int32
			done := make(chan struct{})
			go func() {
				defer close(done)
				sched.Fetch(ctx, scheduler.FetchOptions{}, func(ctx context.Context) (any, error) {
					atomic.AddInt32(&opCalls, 1)
					return nil, nil
				})
			}()

			Consistently(func() int32 {
				return atomic.LoadInt32(&opCalls)
			}).WithTimeout(1500 * time.Millisecond).Should(Equal(int32(0)))

			sched.SetVisible(true)
			Eventually(done).WithTimeout(3 * time.Second).Should(BeClosed())
			Expect(atomic.LoadInt32(&opCalls)).To(Equal(int32(1)))
		})
	})

	Describe("Stop", func() {
		It("rejects later submissions with ErrStopped", func() {
			sched.Stop()

			_, err := sched.Fetch(ctx, scheduler.FetchOptions{}, func(ctx context.Context) (any, error) {
				return nil, nil
			})
			Expect(err).To(MatchError(scheduler.ErrStopped))
		})
	})

	Describe("QueueLengths", func() {
		It("reports empty queues at rest", func() {
			Eventually(func() int {
				tx, info := sched.QueueLengths()
				return tx + info
			}).Should(Equal(0))
			Expect(sched.Processing()).To(Equal(0))
		})
	})

	Describe("Status", func() {
		It("starts healthy", func() {
			Expect(sched.Status()).To(Equal("ok"))
		})

		It("degrades after a failure", func() {
			_, err := sched.Fetch(ctx, scheduler.FetchOptions{MaxRetries: 1}, func(ctx context.Context) (any, error) {
				return nil, errors.New("boom")
			})
			Expect(err).To(HaveOccurred())
			Expect(sched.Status()).To(ContainSubstring("backing off"))
		})
	})
})
