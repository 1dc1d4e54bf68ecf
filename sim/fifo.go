package sim

// FIFOQueue is a slice-backed first-in-first-out queue of processes.
// Insertion order is service order; FCFS and round-robin use it as the ready
// discipline.
type FIFOQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue.
func (q *FIFOQueue) Enqueue(p *Process) {
	q.queue = append(q.queue, p)
}

// Dequeue removes and returns the front process, or ErrEmptyQueue if empty.
func (q *FIFOQueue) Dequeue() (*Process, error) {
	if len(q.queue) == 0 {
		return nil, ErrEmptyQueue
	}
	front := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return front, nil
}

// Front returns the front process without removing it, or nil if empty.
func (q *FIFOQueue) Front() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of processes in the queue.
func (q *FIFOQueue) Len() int {
	return len(q.queue)
}

// Items returns the queue contents for iteration, front first. Callers may
// iterate but must not append to or reslice the returned slice.
func (q *FIFOQueue) Items() []*Process {
	return q.queue
}
