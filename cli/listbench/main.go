package main

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math/rand"
	"os"
	"runtime"
	"time"

	E "github.com/sagernet/sing-collections/internal/exceptions"
	"github.com/sagernet/sing-collections/internal/log"
	"github.com/sagernet/sing-collections/list"
	"github.com/sagernet/sing-collections/persistent"
	"github.com/sagernet/sing-collections/queue"
	"github.com/sagernet/sing-collections/stack"

	"github.com/juju/collections/deque"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"lukechampine.com/blake3"
)

var (
	count  int
	seed   int64
	output string
)

func main() {
	command := &cobra.Command{
		Use: "listbench ...",
	}
	command.PersistentFlags().IntVarP(&count, "count", "n", 1000000, "set operation count")
	command.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "set rng seed")
	command.AddCommand(&cobra.Command{
		Use:   "bench [structure]...",
		Short: "Time push/pop/iterate workloads",
		Run:   bench,
	})
	command.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Mirror a random op sequence against a deque oracle",
		Run:   verify,
	})
	digestCommand := &cobra.Command{
		Use:   "digest",
		Short: "Print the BLAKE3 digest of a seeded build's iteration order",
		Run:   digest,
	}
	digestCommand.Flags().StringVarP(&output, "output", "o", "", "write the digest to a file")
	command.AddCommand(digestCommand)
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

var workloads = []struct {
	name string
	run  func(count int) uint64
}{
	{"list", benchList},
	{"queue", benchQueue},
	{"stack", benchStack},
	{"persistent", benchPersistent},
}

func bench(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		for _, workload := range workloads {
			args = append(args, workload.name)
		}
	}
	for _, name := range args {
		var run func(int) uint64
		for _, workload := range workloads {
			if workload.name == name {
				run = workload.run
				break
			}
		}
		if run == nil {
			logrus.Fatal("unknown structure ", name)
		}
		runtime.GC()
		var before runtime.MemStats
		runtime.ReadMemStats(&before)
		start := time.Now()
		sum := run(count)
		duration := time.Since(start)
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		log.NewLogger(name).Info(
			count, " ops in ", duration,
			", ", after.Mallocs-before.Mallocs, " allocs ",
			after.TotalAlloc-before.TotalAlloc, " bytes",
			", checksum ", sum)
	}
}

func benchList(count int) uint64 {
	l := list.New[uint64]()
	for i := 0; i < count; i++ {
		if i%2 == 0 {
			l.PushBack(uint64(i))
		} else {
			l.PushFront(uint64(i))
		}
	}
	var sum uint64
	it := l.Iter()
	for {
		value, ok := it.Next()
		if !ok {
			break
		}
		sum += value
	}
	drain := l.Drain()
	for {
		front, ok := drain.Next()
		if !ok {
			break
		}
		sum += front
		back, ok := drain.NextBack()
		if !ok {
			break
		}
		sum += back
	}
	return sum
}

func benchQueue(count int) uint64 {
	q := queue.New[uint64]()
	var sum uint64
	for i := 0; i < count; i++ {
		q.Push(uint64(i))
		if i%3 == 0 {
			value, _ := q.Pop()
			sum += value
		}
	}
	for {
		value, ok := q.Pop()
		if !ok {
			break
		}
		sum += value
	}
	return sum
}

func benchStack(count int) uint64 {
	s := stack.New[uint64]()
	for i := 0; i < count; i++ {
		s.Push(uint64(i))
	}
	var sum uint64
	for {
		value, ok := s.Pop()
		if !ok {
			break
		}
		sum += value
	}
	return sum
}

func benchPersistent(count int) uint64 {
	l := persistent.New[uint64]()
	for i := 0; i < count; i++ {
		l = l.Prepend(uint64(i))
	}
	var sum uint64
	l.Range(func(value uint64) bool {
		sum += value
		return true
	})
	for !l.IsEmpty() {
		value, _ := l.Head()
		sum += value
		l = l.Tail()
	}
	return sum
}

func verify(cmd *cobra.Command, args []string) {
	if err := runVerify(); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("verified ", count, " ops against the deque oracle")
}

func runVerify() error {
	rng := rand.New(rand.NewSource(seed))
	l := list.New[int]()
	oracle := deque.New()
	for i := 0; i < count; i++ {
		switch rng.Intn(6) {
		case 0:
			value := rng.Int()
			l.PushFront(value)
			oracle.PushFront(value)
		case 1:
			value := rng.Int()
			l.PushBack(value)
			oracle.PushBack(value)
		case 2, 3:
			value, ok := l.PopFront()
			oracleValue, oracleOk := oracle.PopFront()
			if ok != oracleOk {
				return E.New("op ", i, ": front emptiness diverged from the oracle")
			}
			if ok && value != oracleValue.(int) {
				return E.New("op ", i, ": front yielded ", value, ", oracle yielded ", oracleValue)
			}
		default:
			value, ok := l.PopBack()
			oracleValue, oracleOk := oracle.PopBack()
			if ok != oracleOk {
				return E.New("op ", i, ": back emptiness diverged from the oracle")
			}
			if ok && value != oracleValue.(int) {
				return E.New("op ", i, ": back yielded ", value, ", oracle yielded ", oracleValue)
			}
		}
		if l.Len() != oracle.Len() {
			return E.New("op ", i, ": length ", l.Len(), " diverged from oracle length ", oracle.Len())
		}
	}
	return nil
}

func digest(cmd *cobra.Command, args []string) {
	rng := rand.New(rand.NewSource(seed))
	l := list.New[uint64]()
	for i := 0; i < count; i++ {
		if rng.Intn(2) == 0 {
			l.PushBack(rng.Uint64())
		} else {
			l.PushFront(rng.Uint64())
		}
	}
	hasher := blake3.New(32, nil)
	list.Hash(hasher, l, func(h hash.Hash, value uint64) {
		var buffer [8]byte
		binary.BigEndian.PutUint64(buffer[:], value)
		h.Write(buffer[:])
	})
	sum := hex.EncodeToString(hasher.Sum(nil))
	if output != "" {
		if err := os.WriteFile(output, []byte(sum+"\n"), 0o644); err != nil {
			logrus.Fatal(E.Cause(err, "write digest"))
		}
		logrus.Info("saved ", output)
		return
	}
	logrus.Info("blake3 ", sum, " over ", l.Len(), " values")
}
