package rootevents

import "fmt"

// EventLayout names the columns an EventRecord is built from.
type EventLayout struct {
	EventID      string
	ADCVal       string
	BaselineMean string
	BaselineRMS  string
	PulseH       string
	PeakPosition string
	NSTime       string
	TriggerBits  string
}

// DefaultLayout returns the branch names written by the detector processing chain.
func DefaultLayout() EventLayout {
	return EventLayout{
		EventID:      "eventID",
		ADCVal:       "adcVal",
		BaselineMean: "baselineMean",
		BaselineRMS:  "baselineRMS",
		PulseH:       "pulseH",
		PeakPosition: "peakPosition",
		NSTime:       "nsTime",
		TriggerBits:  "triggerBits",
	}
}

// Names returns the column names in report order.
func (l EventLayout) Names() []string {
	return []string{
		l.EventID, l.ADCVal, l.BaselineMean, l.BaselineRMS,
		l.PulseH, l.PeakPosition, l.NSTime, l.TriggerBits,
	}
}

// EventRecord holds the values of one event row.
// Each field keeps the native type of its column.
type EventRecord struct {
	Index        int64 // 0-based row.
	EventID      any
	ADCVal       any // Waveform samples.
	BaselineMean any
	BaselineRMS  any
	PulseH       any
	PeakPosition any
	NSTime       any
	TriggerBits  any
}

// Values returns the field values in the order of EventLayout.Names.
func (r *EventRecord) Values() []any {
	return []any{
		r.EventID, r.ADCVal, r.BaselineMean, r.BaselineRMS,
		r.PulseH, r.PeakPosition, r.NSTime, r.TriggerBits,
	}
}

// Layout returns the layout used by DescribeEvent.
func (t *Table) Layout() EventLayout {
	return t.layout
}

// WithLayout returns a view of the same tree that builds records from l.
func (t *Table) WithLayout(l EventLayout) *Table {
	view := *t
	view.layout = l
	return &view
}

// DescribeEvent reads the event at row index.
// It fails with ErrRange if index is outside [0, Entries()).
func (t *Table) DescribeEvent(index int64) (*EventRecord, error) {
	if index < 0 || index >= t.Entries() {
		return nil, fmt.Errorf("%w: event %d not in [0, %d) of tree %q", ErrRange, index, t.Entries(), t.Name())
	}

	recs, err := t.DescribeEvents(index, 1)
	if err != nil {
		return nil, err
	}
	return recs[0], nil
}

// DescribeEvents reads count consecutive events starting at row start.
// All layout columns are decoded in a single pass over the range.
func (t *Table) DescribeEvents(start, count int64) ([]*EventRecord, error) {
	cols, err := t.readColumns(t.layout.Names(), start, count)
	if err != nil {
		return nil, err
	}

	recs := make([]*EventRecord, count)
	for i := range recs {
		recs[i] = &EventRecord{
			Index:        start + int64(i),
			EventID:      cols[0][i],
			ADCVal:       cols[1][i],
			BaselineMean: cols[2][i],
			BaselineRMS:  cols[3][i],
			PulseH:       cols[4][i],
			PeakPosition: cols[5][i],
			NSTime:       cols[6][i],
			TriggerBits:  cols[7][i],
		}
	}
	return recs, nil
}
