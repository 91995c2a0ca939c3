package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"gw2inventory/internal/gw2"
)

// RequiredPermissions lists the key scopes the inventory pipeline needs.
var RequiredPermissions = []string{"account", "characters", "inventories"}

// TokenSource reports the scopes of the configured API key.
type TokenSource interface {
	TokenInfo(ctx context.Context) (*gw2.TokenInfo, error)
}

// CheckToken verifies the API key is accepted and carries every required
// permission. It uses a 10-second timeout and a single attempt.
func CheckToken(ctx context.Context, tokens TokenSource) Result {
	const name = "API key"
	if tokens == nil {
		return Result{Name: name, Detail: "no client configured"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	info, err := tokens.TokenInfo(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeTokenError(err)}
	}

	var missing []string
	for _, scope := range RequiredPermissions {
		if !info.HasPermission(scope) {
			missing = append(missing, scope)
		}
	}
	label := info.Name
	if label == "" {
		label = "unnamed key"
	}
	if len(missing) > 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (missing permissions: %s)", label, strings.Join(missing, ", "))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", label, strings.Join(RequiredPermissions, ", "))}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWritableTarget accepts a directory that does not exist yet as long as
// its nearest existing ancestor is writable, since the cache and log writers
// create missing parents.
func CheckWritableTarget(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "path not configured"}
	}
	if _, err := os.Stat(path); err == nil {
		return CheckDirectoryAccess(name, path)
	}
	ancestor := filepath.Dir(path)
	for {
		if _, err := os.Stat(ancestor); err == nil {
			break
		}
		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
		}
		ancestor = parent
	}
	check := CheckDirectoryAccess(name, ancestor)
	if !check.Passed {
		return check
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first use)", path)}
}

func summarizeTokenError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "token check timed out (API unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "token check timed out (API unreachable)"
	}
	return err.Error()
}
