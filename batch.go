package ashf

import (
	"errors"
	"runtime"
	"sync"
)

// ParallelConfig controls the worker pool used by batch operations.
// Key derivation dominates the cost of each operation and is CPU-bound,
// so the pool defaults to one worker per core.
type ParallelConfig struct {
	// MaxWorkers is the maximum number of worker goroutines
	// If 0, defaults to runtime.NumCPU()
	MaxWorkers int

	// MinJobsForParallel is the minimum batch size to use the pool.
	// Below this threshold, sequential processing is used. Defaults to 4.
	MinJobsForParallel int
}

// Validate checks if the parallel configuration is valid
func (p *ParallelConfig) Validate() error {
	if p.MaxWorkers < 0 {
		return errors.New("parallel max workers cannot be negative")
	}
	if p.MaxWorkers > 1024 {
		return errors.New("parallel max workers must not exceed 1024")
	}
	if p.MinJobsForParallel < 0 {
		return errors.New("parallel min jobs threshold cannot be negative")
	}
	return nil
}

// DefaultParallelConfig returns the default worker-pool configuration
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		MaxWorkers:         runtime.NumCPU(),
		MinJobsForParallel: 4,
	}
}

// ProtectBatch protects each plaintext under the same secret, spreading
// the work over the configured pool. Results keep input order. The first
// error (by input position) aborts the batch result.
func (p *Protector) ProtectBatch(secret []byte, plaintexts [][]byte) ([][]byte, error) {
	return p.runBatch(plaintexts, func(in []byte) ([]byte, error) {
		return p.Protect(secret, in)
	})
}

// UnprotectBatch verifies and decrypts each payload under the same
// secret. Results keep input order; the first error (by input position)
// aborts the batch result.
func (p *Protector) UnprotectBatch(secret []byte, payloads [][]byte) ([][]byte, error) {
	return p.runBatch(payloads, func(in []byte) ([]byte, error) {
		return p.Unprotect(secret, in)
	})
}

func (p *Protector) runBatch(inputs [][]byte, fn func([]byte) ([]byte, error)) ([][]byte, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	minJobs := p.parallel.MinJobsForParallel
	if minJobs <= 0 {
		minJobs = 4
	}

	results := make([][]byte, len(inputs))
	errs := make([]error, len(inputs))

	if len(inputs) < minJobs {
		for i, in := range inputs {
			out, err := fn(in)
			if err != nil {
				return nil, err
			}
			results[i] = out
		}
		return results, nil
	}

	numWorkers := p.parallel.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(inputs) {
		numWorkers = len(inputs)
	}

	jobs := make(chan int, len(inputs))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = fn(inputs[i])
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
