package form

import (
	"github.com/reshuffle/admin/internal/cascade"
	"github.com/reshuffle/admin/internal/screens/formbridge"
	"github.com/reshuffle/admin/internal/validation"
)

// TaskParams opens the task form.
type TaskParams struct {
	PartID string
	Values cascade.Values
}

// NewTask creates the task form screen.
func NewTask(f validation.Fetcher, p TaskParams, opts ...cascade.ControllerOption) *FormScreen {
	bridge := formbridge.New(validation.EndpointTask)
	ctrl := cascade.NewTask(f, bridge, opts...)
	ctrl.Seed(p.Values)

	return newScreen("Task", "Part", p.PartID, ctrl, bridge, []row{
		newRow(cascade.FieldPosition, "Position", cascade.KindNumber, p.Values),
	})
}
