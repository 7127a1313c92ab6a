package directory

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/mtlprog/agenthub/internal/domain"
)

// Validate lints a list of agents before it is compiled into the hub.
// It is never called on the render path; every problem found is returned,
// joined, each wrapping a domain error.
func Validate(agents []domain.Agent) error {
	if len(agents) == 0 {
		return domain.ErrEmptyDirectory
	}

	var errs []error
	seen := make(map[string]int, len(agents))

	for i, a := range agents {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%w: agent #%d has no id", domain.ErrMissingAgentField, i+1))
		} else if first, ok := seen[a.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %q at #%d and #%d", domain.ErrDuplicateAgentID, a.ID, first+1, i+1))
		} else {
			seen[a.ID] = i
		}

		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%w: agent %q has no name", domain.ErrMissingAgentField, a.ID))
		}

		if err := validateDestination(a.DestinationURL); err != nil {
			errs = append(errs, fmt.Errorf("agent %q: %w", a.ID, err))
		}

		if !a.Icon.Valid() {
			errs = append(errs, fmt.Errorf("%w: agent %q uses %q", domain.ErrUnknownIcon, a.ID, a.Icon))
		}

		for _, t := range []domain.ThemeToken{a.Theme.From, a.Theme.To} {
			if !t.Valid() {
				errs = append(errs, fmt.Errorf("%w: agent %q uses %q", domain.ErrUnknownTheme, a.ID, t))
			}
		}
	}

	return errors.Join(errs...)
}

func validateDestination(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDestination, err)
	}
	if !u.IsAbs() || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDestination, raw)
	}
	return nil
}
