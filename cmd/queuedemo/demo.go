package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

// runPrimes enqueues the first five primes into an unbounded queue and prints
// what the queue reports along the way.
func runPrimes(w io.Writer) error {
	primes := queue.New[int]()

	fmt.Fprintln(w, primes.IsEmpty())

	for _, p := range []int{2, 3, 5, 7, 11} {
		if err := primes.Enqueue(p); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, primes.IsFull())
	front, err := primes.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, front)
	fmt.Fprintln(w, primes.Size())
	fmt.Fprintln(w, primes)

	primeNum, err := primes.Dequeue()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, primeNum)
	fmt.Fprintln(w, primes.Size())
	fmt.Fprintln(w, primes)
	return nil
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "run [items...]",
		Short: "Enqueue items, print the queue, then drain it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogger(cmd, root, func(cfg settings.Config, log *zap.Logger) error {
				if cmd.Flags().Changed("capacity") {
					cfg.Queue.Capacity = capacity
				}
				return runItems(cmd.OutOrStdout(), log, cfg.Queue, args)
			})
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "maximum queue size, 0 for unbounded (overrides config)")
	return cmd
}

// runItems enqueues items into a queue built from cfg. Items that do not fit a
// bounded queue are dropped with a warning.
func runItems(w io.Writer, log *zap.Logger, cfg settings.Queue, items []string) error {
	q, err := queue.FromConfig[string](cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create queue")
	}

	for _, item := range items {
		err := q.Enqueue(item)
		switch {
		case err == nil:
		case errors.Is(err, queue.ErrQueueFull):
			capacity, _ := q.Capacity()
			log.Warn("queue full, dropping item", zap.String("item", item), zap.Int("capacity", capacity))
		default:
			return err
		}
	}

	fmt.Fprintf(w, "size: %d\n", q.Size())
	fmt.Fprintf(w, "full: %t\n", q.IsFull())
	if front, err := q.Peek(); err == nil {
		fmt.Fprintf(w, "front: %s\n", front)
	}
	fmt.Fprintln(w, q)

	for item := range q.Drain() {
		fmt.Fprintln(w, item)
	}
	log.Debug("queue drained", zap.Int("size", q.Size()))
	return nil
}
