// package para implements the bulk-synchronous data-parallel loop used
// by the per-entity phases of the solver (corner assembly, vertex
// solve, subcell force, volume rate, mesh motion): partition a collection across
// GOMAXPROCS goroutines, run each partition independently, and block
// until all have finished before the next phase starts. The striped
// partitioning (`ii := procNum; ii < n; ii += nprocs`) and the
// WaitGroup-per-call-site shape follow the AIMdata worker-pool pattern
// (setVelocities/addEmissionsFlux/calcCFL in the retrieved inmap
// solver), not a generic worker-pool package.
package para

import (
	"runtime"
	"sync"
)

// Run splits [0,n) into runtime.GOMAXPROCS(0) interleaved stripes and
// calls work(i) once for every i in [0,n), across that many
// goroutines. It blocks until every call has returned. A single
// goroutine is used directly (no dispatch overhead) when
// GOMAXPROCS==1 or n<=1, giving a serial fallback that must
// produce the same result as the parallel path.
func Run(n int, work func(i int)) {
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > n {
		nprocs = n
	}
	if nprocs <= 1 {
		for i := 0; i < n; i++ {
			work(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for procNum := 0; procNum < nprocs; procNum++ {
		go func(procNum int) {
			defer wg.Done()
			for i := procNum; i < n; i += nprocs {
				work(i)
			}
		}(procNum)
	}
	wg.Wait()
}
