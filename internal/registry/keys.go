package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// generateKey builds a unique key of the form <prefix>:<unix-millis>:<uuid>.
// The timestamp component keeps generated keys roughly sortable by creation
// time, which makes prefix listings easier to read when debugging.
func (s *Store) generateKey() string {
	return fmt.Sprintf("%s:%d:%s", s.opts.KeyPrefix, time.Now().UnixMilli(), uuid.NewString())
}
