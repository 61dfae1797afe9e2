// runner.go - Bounded worker pool over manifest jobs.
package batch

import (
	"context"
	"sync"

	"github.com/xob0t/GoSteg/pkg/stego"
)

// Result is the outcome of one job. Err is nil on success, a stego.ReturnCode
// for expected failures, or any other error for unexpected ones.
type Result struct {
	Index int
	Job   Job
	Err   error
}

// Code returns the job's ReturnCode; ok is false for unexpected errors.
func (r Result) Code() (stego.ReturnCode, bool) {
	return stego.CodeOf(r.Err)
}

// Run executes every job in m on m.Workers goroutines and returns results in
// manifest order. Jobs not started before ctx is cancelled get ctx.Err().
func Run(ctx context.Context, m *Manifest) []Result {
	results := make([]Result, len(m.Jobs))
	opts := m.Options()

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(max(m.Workers, 1), len(m.Jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Result{Index: i, Job: m.Jobs[i], Err: runJob(m.Jobs[i], opts)}
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(m.Jobs); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(m.Jobs); i++ {
		results[i] = Result{Index: i, Job: m.Jobs[i], Err: ctx.Err()}
	}
	return results
}

func runJob(j Job, opts stego.Options) error {
	switch j.Op {
	case OpMerge:
		return stego.MergeWith(j.Cover, j.Secret, j.Output, opts)
	default:
		return stego.UnmergeWith(j.Input, j.Output, opts)
	}
}

// Failed counts results with a non-nil error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
