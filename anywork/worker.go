package anywork

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/Lurito/samevol/common"
)

var (
	group     sync.WaitGroup
	pipeline  WorkQueue
	failpipe  Failures
	errcount  Counters
	headcount uint64
)

type Work func()
type WorkQueue chan Work
type Failures chan string
type Counters chan uint64

func catcher(identity uint64) {
	if catch := recover(); catch != nil {
		failpipe <- fmt.Sprintf("Recovering worker #%d: %v", identity, catch)
	}
}

func process(fun Work, identity uint64) {
	defer group.Done()
	defer catcher(identity)
	fun()
}

func member(identity uint64) {
	for work := range pipeline {
		process(work, identity)
	}
}

func watcher(failures Failures, counters Counters) {
	counter := uint64(0)
	for {
		select {
		case fail := <-failures:
			counter += 1
			common.Error("anywork", errors.New(fail))
		case counters <- counter:
			counter = 0
		}
	}
}

func init() {
	pipeline = make(WorkQueue, 4096)
	failpipe = make(Failures)
	errcount = make(Counters)
	scale(uint64(runtime.NumCPU()))
	go watcher(failpipe, errcount)
}

func Scale() uint64 {
	return headcount
}

func scale(limit uint64) {
	for headcount < limit {
		go member(headcount)
		headcount += 1
	}
}

// Backlog schedules work on the shared pool. Panics inside the work are
// captured as failures, not crashes; Sync reports them.
func Backlog(todo Work) {
	if todo != nil {
		group.Add(1)
		pipeline <- todo
	}
}

// Sync waits until every backlogged work item has completed, and tells
// how many of them failed since the previous Sync.
func Sync() error {
	group.Wait()
	count := <-errcount
	if count > 0 {
		return fmt.Errorf("there has been %d failures, see messages above", count)
	}
	return nil
}
