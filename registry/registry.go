package registry

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

// Registry holds the ordered list of Test262 groups extracted from the
// tracking document.
type Registry struct {
	config Config
	groups []string
}

// Config contains registry configuration
type Config struct {
	Log        log.Logger
	GroupsFile string
}

// groupLine matches one group entry after trimming: an optional ✅
// decoration, an optional passed/total prefix, then the identifier.
// The same shapes the report emits are accepted back, so a previous
// report can be pasted into the tracking document verbatim.
var groupLine = regexp.MustCompile(`^(?:✅\s*)?(?:\d+/\d+\s+)?([A-Za-z0-9_.-]+)$`)

// New creates a registry and loads the tracking document once.
func New(cfg Config) (*Registry, error) {
	if cfg.GroupsFile == "" {
		return nil, fmt.Errorf("groups file is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}

	r := &Registry{config: cfg}
	if err := r.loadGroups(cfg.GroupsFile); err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	cfg.Log.Debug("Registry loaded", "file", cfg.GroupsFile, "len(groups)", len(r.groups))
	return r, nil
}

func (r *Registry) loadGroups(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open groups file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := groupLine.FindStringSubmatch(line)
		if m == nil {
			// Prose, headings and anything else in the document are
			// skipped without complaint.
			continue
		}
		r.groups = append(r.groups, m[1])
	}
	return scanner.Err()
}

// Groups returns the group identifiers in document order. Duplicates
// are preserved; each occurrence is run and reported independently.
func (r *Registry) Groups() []string {
	return r.groups
}
