// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// provenance is an append-only processing log.
type provenance struct {
	mu      sync.Mutex
	header  string
	entries strings.Builder
}

func newProvenance(created time.Time) *provenance {
	return &provenance{
		header: fmt.Sprintf("\n\t\t>>> syncopy <<< \n\nCreated: %s \n\n--- LOG ---", created.Format(time.ANSIC)),
	}
}

// add appends msg under a "|=== user@host: time ===|" banner.
func (p *provenance) add(user, host string, at time.Time, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(&p.entries, "\n\n|=== %s@%s: %s ===|\n\n\t%s", user, host, at.Format(time.ANSIC), msg)
}

func (p *provenance) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.header + p.entries.String()
}
