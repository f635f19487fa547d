// Package editors implements the partial-view contract between the three
// console editors and the canonical line record: projecting a line into the
// narrow shape an editor works on, and reconciling the edited shape back into
// the collection without disturbing fields the editor never saw.
package editors

import "linedesk/internal/inventory"

// Kind identifies an editor.
type Kind string

const (
	KindGeneral   Kind = "general"
	KindPorting   Kind = "porting"
	KindTemplates Kind = "templates"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindGeneral, KindPorting, KindTemplates:
		return Kind(s), true
	default:
		return "", false
	}
}

// View is the closed sum of editor payloads. Reconcile type-switches on the
// concrete variant; there is no runtime field sniffing.
type View interface {
	LineID() string
	Kind() Kind
}

// GeneralView is the full entity as the general/capabilities editor sees it.
// EmailDestination is always concrete (defaulted to "" on projection). An
// empty Line.ID marks add mode: reconciliation allocates a fresh id and
// applies the creation defaults.
type GeneralView struct {
	Line inventory.Line `json:"line"`
}

func (v GeneralView) LineID() string { return v.Line.ID }
func (v GeneralView) Kind() Kind     { return KindGeneral }

// PortingView is the slice the porting editor sees. Number, Label and Status
// are read-only context; reconciliation writes only the porting record and
// the status it forces.
type PortingView struct {
	ID      string                  `json:"id"`
	Number  string                  `json:"number"`
	Label   string                  `json:"label"`
	Status  inventory.LineStatus    `json:"status"`
	Porting inventory.PortingStatus `json:"porting_status"`
}

func (v PortingView) LineID() string { return v.ID }
func (v PortingView) Kind() Kind     { return KindPorting }

// TemplateView is the isolated SMS-configuration surface. The whole SMSConfig
// sub-object is submitted back as a unit.
type TemplateView struct {
	ID        string              `json:"id"`
	SMSConfig inventory.SMSConfig `json:"sms_config"`
}

func (v TemplateView) LineID() string { return v.ID }
func (v TemplateView) Kind() Kind     { return KindTemplates }
