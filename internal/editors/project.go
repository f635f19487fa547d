package editors

import "linedesk/internal/inventory"

// Project derives the view an editor works on. The source line is never
// mutated, and every field the view declares is concrete afterwards, so an
// editor never observes an absent required field.
func Project(l inventory.Line, k Kind) (View, bool) {
	switch k {
	case KindGeneral:
		return ProjectGeneral(l), true
	case KindPorting:
		return ProjectPorting(l), true
	case KindTemplates:
		return ProjectTemplates(l), true
	default:
		return nil, false
	}
}

func ProjectGeneral(l inventory.Line) GeneralView {
	line := l.Clone()
	if line.SMSConfig.Templates == nil {
		line.SMSConfig.Templates = []inventory.SMSTemplate{}
	}
	return GeneralView{Line: line}
}

func ProjectPorting(l inventory.Line) PortingView {
	v := PortingView{
		ID:     l.ID,
		Number: l.Number,
		Label:  l.Label,
		Status: l.Status,
	}
	// Absent porting fields project as zero values so the editor always has
	// a concrete record to fill in.
	if l.Porting != nil {
		v.Porting = *l.Porting
	}
	return v
}

func ProjectTemplates(l inventory.Line) TemplateView {
	cfg := l.Clone().SMSConfig
	if cfg.Templates == nil {
		cfg.Templates = []inventory.SMSTemplate{}
	}
	return TemplateView{ID: l.ID, SMSConfig: cfg}
}
