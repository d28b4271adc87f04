package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string, def bool) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	return f(ctx, message, def)
}

// Always answers every question with answer, without a terminal.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(ctx context.Context, _ string, _ bool) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		return answer, nil
	})
}

// Survey asks on the controlling terminal.
type Survey struct {
	Help string
}

// NewSurvey returns a terminal confirmer.
func NewSurvey() *Survey {
	return &Survey{}
}

func (s *Survey) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	q := &survey.Confirm{
		Message: message,
		Help:    s.Help,
		Default: def,
	}
	if err := survey.AskOne(q, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
