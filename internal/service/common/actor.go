//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"

	apiv1 "github.com/oshokin/alarm-clock/internal/api/v1"
)

// DetectActor gathers host and user information for audit trail.
// Returns a wire type because callers pass it directly to the gRPC client.
func DetectActor() (*apiv1.SystemActor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	return &apiv1.SystemActor{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}
