// Package gateway provides factories for outbound collaborator clients.
package gateway

import (
	"fmt"

	"github.com/anies1212/pr-checklist-to-sheets/config"
	"github.com/anies1212/pr-checklist-to-sheets/internal/gateway/github"
	"github.com/anies1212/pr-checklist-to-sheets/internal/gateway/sheets"

	"go.uber.org/zap"
)

// NewHistory constructs a pull-request history provider by backend name.
func NewHistory(name string, log *zap.SugaredLogger, cfg *config.Config) (HistoryProvider, error) {
	switch name {
	case "github":
		return github.New(log, cfg.GitHub), nil
	default:
		return nil, fmt.Errorf("unknown history backend: %s", name)
	}
}

// NewDestination constructs a grid destination by backend name.
func NewDestination(name string, log *zap.SugaredLogger, cfg *config.Config) (GridDestination, error) {
	switch name {
	case "sheets":
		return sheets.New(log, cfg.Sheets), nil
	default:
		return nil, fmt.Errorf("unknown destination backend: %s", name)
	}
}
