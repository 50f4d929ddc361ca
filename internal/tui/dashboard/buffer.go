package dashboard

// LogBuffer is a fixed-capacity circular buffer of log lines with strict
// oldest-first eviction. Unlike a general-purpose ring buffer it is not
// synchronized: every buffer in the dashboard is owned and written by the
// single Update loop, so locking would only hide ownership bugs.
type LogBuffer struct {
	lines    []string
	head     int   // index of the oldest element
	count    int   // current number of stored elements
	capacity int   // maximum number of elements
	dropped  int64 // total number of lines evicted
}

// NewLogBuffer creates a buffer holding at most capacity lines.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &LogBuffer{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

// Append adds one line, evicting the oldest when full. O(1).
func (b *LogBuffer) Append(line string) {
	if b.count < b.capacity {
		b.lines[(b.head+b.count)%b.capacity] = line
		b.count++
		return
	}
	b.lines[b.head] = line
	b.head = (b.head + 1) % b.capacity
	b.dropped++
}

// Replace atomically swaps the buffer contents for the given lines,
// keeping only the newest capacity lines. Used on target switch-over so a
// render can never observe a mix of two targets.
func (b *LogBuffer) Replace(lines []string) {
	b.Clear()
	for _, line := range lines {
		b.Append(line)
	}
}

// Lines returns the stored lines oldest to newest. The caller owns the
// returned slice.
func (b *LogBuffer) Lines() []string {
	if b.count == 0 {
		return nil
	}
	out := make([]string, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.lines[(b.head+i)%b.capacity]
	}
	return out
}

// Len returns the current number of stored lines.
func (b *LogBuffer) Len() int {
	return b.count
}

// Dropped returns how many lines have been evicted since the last Clear.
func (b *LogBuffer) Dropped() int64 {
	return b.dropped
}

// Clear resets the buffer to empty and zeroes the eviction counter.
func (b *LogBuffer) Clear() {
	b.head = 0
	b.count = 0
	b.dropped = 0
	for i := range b.lines {
		b.lines[i] = ""
	}
}

// Capacity returns the maximum number of lines the buffer can hold.
func (b *LogBuffer) Capacity() int {
	return b.capacity
}
