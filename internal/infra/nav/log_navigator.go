// Package nav provides the navigation collaborator for headless runs.
// Embedding applications supply their own service.Navigator.
package nav

import (
	"log/slog"

	"beacon/internal/domain/service"
)

type logNavigator struct {
	logger *slog.Logger
}

// NewLogNavigator creates a navigator that records route changes in the log
// instead of driving a UI stack.
func NewLogNavigator(logger *slog.Logger) service.Navigator {
	return &logNavigator{logger: logger}
}

func (n *logNavigator) Push(route string) error {
	n.logger.Info("navigate push", slog.String("route", route))

	return nil
}

func (n *logNavigator) Replace(route string) error {
	n.logger.Info("navigate replace", slog.String("route", route))

	return nil
}
