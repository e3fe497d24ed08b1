package ass

// DialoguesAt returns every dialogue whose time range contains the
// given timestamp, both ends inclusive, in source order. A linear scan
// is fine at typical dialogue counts; a sorted interval index would be
// needed before per-frame queries over scripts with tens of thousands
// of cues.
func (d *Document) DialoguesAt(ms int) []DialogueEvent {
	var active []DialogueEvent
	for _, ev := range d.Dialogues {
		if ms >= ev.StartMS && ms <= ev.EndMS {
			active = append(active, ev)
		}
	}
	return active
}
