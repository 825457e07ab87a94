//go:build unix

package debug

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// residentBytes reads VmRSS from /proc where available and falls back to the
// peak RSS reported by getrusage.
func residentBytes() (uint64, error) {
	if f, err := os.Open("/proc/self/status"); err == nil {
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if !strings.HasPrefix(line, "VmRSS:") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				kb, perr := strconv.ParseUint(fields[1], 10, 64)
				if perr == nil {
					return kb * 1024, nil
				}
			}
		}
	}
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("getrusage: %w", err)
	}
	// Maxrss is kilobytes on Linux.
	return uint64(ru.Maxrss) * 1024, nil
}
