// Package tui runs a terminal form whose inputs are checked by the
// fieldcheck presets.
package tui

import (
	"errors"

	"github.com/Gobd/fieldcheck/internal/config"
	"github.com/Gobd/fieldcheck/internal/logger"
	"github.com/Gobd/fieldcheck/openapi"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/getkin/kin-openapi/openapi3"
)

var ErrUserQuit = errors.New("form closed without submitting")

// Run shows the form until every field is valid and returns the accepted
// values keyed by field name.
func Run(cfg *config.Config, log *logger.Logger) (map[string]string, error) {
	finalModel, err := tea.NewProgram(newFormModel(cfg, log), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(formModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quit {
		return nil, ErrUserQuit
	}

	log.Info().Int("fields", len(result.values)).Msg("form submitted")
	return result.values, nil
}

// FormSchema returns the OpenAPI schema of the form shown by Run.
func FormSchema(cfg *config.Config) (*openapi3.SchemaRef, error) {
	specs := formSpecs(cfg)
	fields := make([]openapi.FormField, len(specs))
	for i, spec := range specs {
		fields[i] = openapi.FormField{Name: spec.name, Chain: spec.chain()}
	}
	return openapi.FormSchema(fields...)
}
