package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/xpoint/internal/domain"
)

// resolveProjectID matches input against project IDs, then names
// (case-insensitive), then ID prefixes.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required (use --project)")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var named []string
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			named = append(named, p.ID)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return "", fmt.Errorf("project name %q is ambiguous (%d matches), use the ID", input, len(named))
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", &domain.NotFoundError{Entity: "project", ID: input}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectOrRaw resolves input but falls back to the raw value when no
// project matches. Entries and reports accept unknown project IDs.
func resolveProjectOrRaw(ctx context.Context, app *App, input string) (string, error) {
	id, err := resolveProjectID(ctx, app, input)
	if errors.Is(err, domain.ErrNotFound) {
		return input, nil
	}
	return id, err
}
