package worker

// Task represents a unit of work to be processed by a worker
type Task func()

// Worker is a goroutine that processes tasks from a channel
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

// NewWorker creates a new Worker with a small queue so a burst of
// submissions does not block the request path.
func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task, 16),
		stop:      make(chan struct{}),
	}
}

// Start starts the worker to process tasks
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop stops the worker
func (w *Worker) Stop() {
	close(w.stop)
}

// Submit submits a task to the worker
func (w *Worker) Submit(task Task) {
	select {
	case w.taskQueue <- task:
	case <-w.stop:
	}
}
