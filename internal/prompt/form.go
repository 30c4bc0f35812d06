package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// FillInteractive presents a terminal form for every unanswered option and
// writes the collected values back into the answers map. Options that
// already have a value (flags, answers file, config defaults) are not asked
// again. The project slug field is pre-filled with the derived slug.
func FillInteractive(a Answers) error {
	missing := a.Unanswered()
	if len(missing) == 0 {
		return nil
	}

	// Backing storage must outlive form construction.
	strValues := make(map[string]*string, len(missing))
	boolValues := make(map[string]*bool, len(missing))

	var fields []huh.Field
	for _, opt := range missing {
		switch opt.Kind {
		case KindBool:
			v := opt.Default != "n"
			boolValues[opt.Name] = &v
			fields = append(fields, huh.NewConfirm().
				Title(opt.Title).
				Value(&v))

		case KindChoice:
			v := opt.Default
			strValues[opt.Name] = &v
			fields = append(fields, huh.NewSelect[string]().
				Title(opt.Title).
				Options(huh.NewOptions(opt.Choices...)...).
				Value(&v))

		default:
			v := opt.Default
			if opt.Name == OptProjectSlug && a[OptProjectName] != "" {
				v = DeriveSlug(a[OptProjectName])
			}
			strValues[opt.Name] = &v
			fields = append(fields, huh.NewInput().
				Title(opt.Title).
				Value(&v))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("collecting answers: %w", err)
	}

	for name, v := range strValues {
		a[name] = *v
	}
	for name, v := range boolValues {
		if *v {
			a[name] = "y"
		} else {
			a[name] = "n"
		}
	}

	return nil
}
