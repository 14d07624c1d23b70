package vm

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// threadList is a FIFO of PCs paired with a membership set. A PC is
// enqueued at most once until the list is cleared, even if it has already
// been dequeued.
type threadList struct {
	queue *arraylist.List // PCs in scheduling order
	seen  *treeset.Set    // every PC ever enqueued since last clear
	head  int             // index of the next PC to dequeue
}

func newThreadList() *threadList {
	return &threadList{
		queue: arraylist.New(),
		seen:  treeset.NewWith(utils.IntComparator),
	}
}

// add enqueues pc, if it has not been seen before. Returns true if pc has
// been enqueued.
func (l *threadList) add(pc int) bool {
	if l.seen.Contains(pc) {
		return false
	}
	l.queue.Add(pc)
	l.seen.Add(pc)
	return true
}

// pop dequeues the first pending PC.
func (l *threadList) pop() (int, bool) {
	if l.empty() {
		return 0, false
	}
	pc, _ := l.queue.Get(l.head)
	l.head++
	return pc.(int), true
}

func (l *threadList) empty() bool {
	return l.head >= l.queue.Size()
}

func (l *threadList) clear() {
	l.queue.Clear()
	l.seen.Clear()
	l.head = 0
}

// String lists the pending PCs in scheduling order.
func (l *threadList) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i := l.head; i < l.queue.Size(); i++ {
		pc, _ := l.queue.Get(i)
		if i > l.head {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", pc)
	}
	b.WriteString("]")
	return b.String()
}
