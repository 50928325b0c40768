// Package app mounts site modules onto the root router.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mjkconsultancy/site/internal/services/site/module"
)

// Compose mounts every module on root. A module that fails to mount, or
// claims a prefix already owned by another module, aborts composition.
func Compose(root chi.Router, modules []module.Module) error {
	if root == nil {
		return errors.New("root router is required")
	}
	seen := make(map[string]string)
	for _, feature := range modules {
		if feature == nil {
			return errors.New("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return err
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Mount(prefix, mount.Handler)
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return module.Mount{}, "", fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// normalizePrefix returns prefix with a leading slash and no trailing slash,
// except for the root itself.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if trimmed := strings.TrimRight(prefix, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}
