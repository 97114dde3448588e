package concurrent

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBatchRunOKNoConcurrency(t *testing.T) {
	inC := make(chan Supplier[int])

	go func() {
		for i := 0; i < 10; i++ {
			value := i
			inC <- SupplierFunc[int](func() (int, error) {
				return value, nil
			})
		}
		close(inC)
	}()

	resC := BatchWithOpts(context.TODO(), inC, BatchOpts{
		Concurrency: 1,
	})

	counter := 0
	for res := range resC {
		assert.Equal(t, counter, res.Value())
		assert.Equal(t, int64(counter), res.Index())
		assert.Nil(t, res.Err())
		counter++
	}

	assert.Equal(t, 10, counter)
}

func TestBatchRunErrTimeout(t *testing.T) {
	inC := make(chan Supplier[int])
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	resC := BatchWithOpts(ctx, inC, BatchOpts{
		Concurrency: 1,
	})

	counter := 0
	for range resC {
		counter++
	}

	assert.Equal(t, 0, counter)
}

func TestBatchRunErrCancel(t *testing.T) {
	inC := make(chan Supplier[int], 64)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for i := 0; i < 10; i++ {
		value := i
		inC <- SupplierFunc[int](func() (int, error) {
			if value == 1 {
				cancel()
			}
			return value, nil
		})
	}
	close(inC)

	resC := BatchWithOpts(ctx, inC, BatchOpts{
		Concurrency: 1,
	})

	counter := 0
	for range resC {
		counter++
	}

	assert.True(t, counter < 10)
}

func TestBatchRunOKWithConcurrency(t *testing.T) {
	inC := make(chan Supplier[int])

	go func() {
		for i := 0; i < 10; i++ {
			value := i
			inC <- SupplierFunc[int](func() (int, error) {
				return value, nil
			})
		}
		close(inC)
	}()

	resC := BatchWithOpts(context.TODO(), inC, BatchOpts{
		Concurrency: 8,
	})

	var results []int
	for res := range resC {
		assert.Nil(t, res.Err())
		results = append(results, res.Value())
	}

	sort.Ints(results)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, results)
}

func TestBatchRunnerAlreadyRunning(t *testing.T) {
	inC := make(chan Supplier[int])
	runner := NewBatchRunner[int]()

	outC := runner.Run(context.TODO(), inC)
	assert.Panics(t, func() {
		runner.Run(context.TODO(), inC)
	})

	close(inC)
	for range outC {
	}
}

func TestBatchSliceOK(t *testing.T) {
	in := make([]Supplier[int], 0, 10)

	for i := 0; i < 10; i++ {
		value := i
		in = append(in, SupplierFunc[int](func() (int, error) {
			time.Sleep(time.Duration(10-value) * time.Millisecond)
			return value, nil
		}))
	}

	res := BatchSliceWithOpts(context.TODO(), in, BatchOpts{Concurrency: 8})

	assert.Equal(t, len(in), len(res))
	for i := 0; i < len(res); i++ {
		assert.Equal(t, i, res[i].Value())
		assert.Nil(t, res[i].Err())
	}
}

func TestBatchSliceErr(t *testing.T) {
	errFailed := errors.New("failed")
	in := []Supplier[string]{
		SupplierFunc[string](func() (string, error) {
			return "ok", nil
		}),
		SupplierFunc[string](func() (string, error) {
			return "", errFailed
		}),
	}

	res := BatchSlice(context.TODO(), in)

	assert.Equal(t, "ok", res[0].Value())
	assert.Nil(t, res[0].Err())
	assert.Equal(t, errFailed, res[1].Err())
}

func TestBatchSlicePanic(t *testing.T) {
	in := []Supplier[int]{
		SupplierFunc[int](func() (int, error) {
			panic("boom")
		}),
		SupplierFunc[int](func() (int, error) {
			return 1, nil
		}),
	}

	res := BatchSliceWithOpts(context.TODO(), in, BatchOpts{Concurrency: 2})

	var errPanic ErrSupplierPanic
	assert.True(t, errors.As(res[0].Err(), &errPanic))
	assert.Equal(t, "boom", errPanic.Value)
	assert.Contains(t, res[0].Err().Error(), "panic error boom")
	assert.Equal(t, 1, res[1].Value())
}

func TestBatchSliceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := []Supplier[int]{
		SupplierFunc[int](func() (int, error) {
			return 1, nil
		}),
	}

	res := BatchSlice(ctx, in)

	assert.Len(t, res, 1)
	if res[0].Err() == nil {
		// the supplier may win the race against the cancellation
		assert.Equal(t, 1, res[0].Value())
	} else {
		assert.Equal(t, context.Canceled, res[0].Err())
	}
}

func runBatchBenchmark(b *testing.B, s Supplier[int]) {
	inC := make(chan Supplier[int], 64)
	runner := NewBatchRunnerWithOpts[int](BatchOpts{
		Concurrency: 8,
	})
	ctx := context.TODO()
	outC := runner.Run(ctx, inC)

	go func(inC chan<- Supplier[int]) {
		for i := 0; i < b.N; i++ {
			inC <- s
		}
		close(inC)
	}(inC)

	counter := 0
	for range outC {
		counter++
	}

	assert.Equal(b, b.N, counter)
}

func BenchmarkBatchRunner(b *testing.B) {
	s := SupplierFunc[int](func() (int, error) {
		return 0, nil
	})

	runBatchBenchmark(b, s)
}

func BenchmarkBatchRunnerWithConstantWait(b *testing.B) {
	s := SupplierFunc[int](func() (int, error) {
		<-time.After(1 * time.Microsecond)
		return 0, nil
	})

	runBatchBenchmark(b, s)
}
