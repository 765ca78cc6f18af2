package form

import (
	"github.com/reshuffle/admin/internal/cascade"
	"github.com/reshuffle/admin/internal/screens/formbridge"
	"github.com/reshuffle/admin/internal/validation"
)

// PartParams opens the part form. PartID is the part being edited, empty
// when adding one; Values seeds its current field values.
type PartParams struct {
	SubjectID string
	PartID    string
	Values    cascade.Values
}

// NewPart creates the part form screen.
func NewPart(f validation.Fetcher, p PartParams, opts ...cascade.ControllerOption) *FormScreen {
	bridge := formbridge.New(validation.EndpointPart)
	ctrl := cascade.NewPart(f, bridge, p.PartID, opts...)
	ctrl.Seed(p.Values)

	title := "Add part"
	if p.PartID != "" {
		title = "Change part " + p.PartID
	}
	return newScreen(title, "Subject", p.SubjectID, ctrl, bridge, []row{
		newRow(cascade.FieldTitle, "Title", cascade.KindSelect, p.Values),
		newRow(cascade.FieldAnswerType, "Answer type", cascade.KindSelect, p.Values),
		newRow(cascade.FieldTaskCount, "Task count", cascade.KindNumber, p.Values),
		newRow(cascade.FieldTotalDifficulty, "Total difficulty", cascade.KindNumber, p.Values),
	})
}
