package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Nil entries are skipped so callers
// can pass conditionally-constructed workers without extra branching.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		go worker.Run()
	}
}
