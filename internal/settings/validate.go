package settings

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

type clockView struct {
	TimeFormat string `validate:"oneof=24h 12h"`
	DateFormat string `validate:"required"`
}

type windowView struct {
	Title  string `validate:"required"`
	Width  int    `validate:"gt=0"`
	Height int    `validate:"gt=0"`
}

type appearanceView struct {
	FontSize int `validate:"gt=0"`
}

// Validate checks the fields consumers rely on. It never modifies cfg and the
// store only logs its result; a document that fails validation is still used.
func Validate(cfg Config) error {
	var problems []string

	defaults := Defaults()
	for _, name := range []string{SectionAppearance, SectionClock, SectionWindow} {
		section, _ := defaults.Section(name)
		for key := range section {
			if !cfg.Has(name, key) {
				problems = append(problems, (&KeyError{Section: name, Key: key}).Error())
			}
		}
	}

	clock := clockView{}
	clock.TimeFormat, _ = cfg.String(SectionClock, "time_format")
	clock.DateFormat, _ = cfg.String(SectionClock, "date_format")
	problems = append(problems, structProblems(SectionClock, clock)...)

	window := windowView{}
	window.Title, _ = cfg.String(SectionWindow, "title")
	window.Width, _ = cfg.Int(SectionWindow, "width")
	window.Height, _ = cfg.Int(SectionWindow, "height")
	problems = append(problems, structProblems(SectionWindow, window)...)

	appearance := appearanceView{}
	appearance.FontSize, _ = cfg.Int(SectionAppearance, "font_size")
	problems = append(problems, structProblems(SectionAppearance, appearance)...)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
}

func structProblems(section string, view interface{}) []string {
	err := validatorInstance().Struct(view)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s.%s fails %q", section, fe.Field(), fe.Tag()))
	}
	return out
}
