package planner

import (
	"container/heap"

	"github.com/OverKoder/Jormungandr/timestep"
)

// item is a transition waiting in a priorityQueue
type item struct {
	priority   float64
	order      int
	transition timestep.Transition
}

// priorityQueue is a max-heap of transitions ordered by priority.
// Transitions of equal priority are popped in insertion order.
type priorityQueue struct {
	items  []item
	pushes int
}

func (p *priorityQueue) Len() int { return len(p.items) }

func (p *priorityQueue) Less(i, j int) bool {
	if p.items[i].priority == p.items[j].priority {
		return p.items[i].order < p.items[j].order
	}
	return p.items[i].priority > p.items[j].priority
}

func (p *priorityQueue) Swap(i, j int) {
	p.items[i], p.items[j] = p.items[j], p.items[i]
}

// Push implements heap.Interface, use push instead
func (p *priorityQueue) Push(x interface{}) {
	p.items = append(p.items, x.(item))
}

// Pop implements heap.Interface, use pop instead
func (p *priorityQueue) Pop() interface{} {
	n := len(p.items)
	it := p.items[n-1]
	p.items = p.items[:n-1]
	return it
}

// push adds a transition with the given priority
func (p *priorityQueue) push(t timestep.Transition, priority float64) {
	heap.Push(p, item{priority: priority, order: p.pushes, transition: t})
	p.pushes++
}

// pop removes and returns the transition with the highest priority
func (p *priorityQueue) pop() (timestep.Transition, float64) {
	it := heap.Pop(p).(item)
	return it.transition, it.priority
}

// reset empties the queue
func (p *priorityQueue) reset() {
	p.items = p.items[:0]
	p.pushes = 0
}
