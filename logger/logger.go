// Package logger is a single, central, package-level log for the emulator
// core. Every package that wants to record a diagnostic ("decoder saw an
// unrecognised but plausible encoding", "engine loop hit the safety bound")
// writes to it through Log/Logf rather than taking a logger dependency of
// its own. Logging never changes emulation outcomes; it is a side channel
// that a caller may inspect, tail, or ignore entirely.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Entry is a single recorded log line.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

type logger struct {
	mu         sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

func (l *logger) log(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].repeated++
		l.entries[n-1].Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
	}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

func (l *logger) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

func (l *logger) write(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

func (l *logger) setEcho(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = output
}

// maxCentral bounds the size of the central log's entry ring.
const maxCentral = 256

var central = newLogger(maxCentral)

// Log adds an entry to the central logger, subject to perm allowing it.
func Log(perm Permission, tag, detail string) {
	if perm == nil || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger, subject to perm
// allowing it.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == nil || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

// Clear removes all entries from the central logger.
func Clear() {
	central.clear()
}

// Write dumps the contents of the central logger to output.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho causes every new log entry to also be written to output
// immediately. Passing nil disables echoing.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// Stdout is a convenience echo target for SetEcho(logger.Stdout).
var Stdout io.Writer = os.Stdout
