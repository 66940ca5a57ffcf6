package refresher_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/concursos/internal/adapters/refresher"
	logging "github.com/okian/concursos/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	if err := logging.Init(); err != nil {
		panic(err)
	}
	goleak.VerifyTestMain(m)
}

type countingTarget struct {
	calls atomic.Int64
}

func (c *countingTarget) Refresh(_ context.Context) {
	c.calls.Add(1)
}

type blockingTarget struct {
	release chan struct{}
}

func (b *blockingTarget) Refresh(_ context.Context) {
	<-b.release
}

func TestRefresher_Run(t *testing.T) {
	convey.Convey("Given a refresher with a short interval", t, func() {
		target := &countingTarget{}
		r := refresher.New(target, refresher.WithInterval(5*time.Millisecond), refresher.WithName("test"))

		convey.Convey("When it runs for a while", func() {
			ctx, cancel := context.WithCancel(context.Background())
			go r.Run(ctx)

			deadline := time.Now().Add(2 * time.Second)
			for target.calls.Load() < 3 && time.Now().Before(deadline) {
				time.Sleep(time.Millisecond)
			}
			cancel()

			convey.Convey("Then the target is refreshed repeatedly", func() {
				convey.So(target.calls.Load(), convey.ShouldBeGreaterThanOrEqualTo, 3)
			})

			convey.Convey("And shutdown after cancel returns immediately", func() {
				err := r.Shutdown(context.Background())
				convey.So(err, convey.ShouldBeNil)
			})
		})
	})
}

func TestRefresher_Shutdown(t *testing.T) {
	convey.Convey("Given a running refresher", t, func() {
		target := &countingTarget{}
		r := refresher.New(target, refresher.WithInterval(time.Hour))
		go r.Run(context.Background())

		convey.Convey("When shutting down", func() {
			err := r.Shutdown(context.Background())

			convey.Convey("Then the loop exits cleanly", func() {
				convey.So(err, convey.ShouldBeNil)
			})

			convey.Convey("And a second shutdown is harmless", func() {
				convey.So(r.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})
	})

	convey.Convey("Given a refresher stuck in a slow refresh", t, func() {
		target := &blockingTarget{release: make(chan struct{})}
		r := refresher.New(target, refresher.WithInterval(time.Millisecond))
		go r.Run(context.Background())
		time.Sleep(20 * time.Millisecond)

		convey.Convey("When the shutdown deadline passes first", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			err := r.Shutdown(ctx)

			convey.Convey("Then ErrShutdownTimeout is reported", func() {
				convey.So(errors.Is(err, refresher.ErrShutdownTimeout), convey.ShouldBeTrue)
			})

			close(target.release)
			convey.So(r.Shutdown(context.Background()), convey.ShouldBeNil)
		})
	})
}
