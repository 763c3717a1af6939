package worker

import (
  "context"
  "sync"

  log "github.com/sirupsen/logrus"
)

const DefaultCount = 5

type Task func(ctx context.Context) error

// Pool runs inbound webhook events on a bounded set of workers.
// Per-customer ordering is not its job: the session store serializes
// access by customer id.
type Pool struct {
  count   int
  tasks   chan Task
  done    chan struct{}
  stopped bool
}

func NewPool(ctx context.Context, count int) *Pool {
  if count <= 0 {
    count = DefaultCount
  }

  pool := &Pool{
    count: count,
    tasks: make(chan Task),
    done:  make(chan struct{}),
  }
  pool.start(ctx)

  return pool
}

func (p *Pool) start(ctx context.Context) {
  var wg sync.WaitGroup

  wg.Add(p.count)

  for index := 0; index < p.count; index++ {
    go func() {
      defer wg.Done()

      for {
        select {
        case <-ctx.Done():
          log.Warn("worker.pool: context cancelled: worker stopped")
          return

        case task, ok := <-p.tasks:
          if !ok {
            return
          }
          if err := task(ctx); err != nil {
            log.Errorf("worker.pool: task failed: %v", err)
          }
        }
      }
    }()
  }

  go func() {
    wg.Wait()

    p.done <- struct{}{}
  }()
}

func (p *Pool) Push(task Task) {
  p.tasks <- task
}

func (p *Pool) StopWait() {
  if p.stopped {
    return
  }
  close(p.tasks)

  <-p.done

  p.stopped = true
}
