package testing

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

// Fixture shapes.
const (
	WaveformSamples = 23
	GridChannels    = 3
	GridSamples     = 4
)

// Event is one synthetic detector event as written by WriteEvents.
type Event struct {
	EventID      int32
	ADCVal       [WaveformSamples]int16
	BaselineMean float64
	BaselineRMS  float64
	PulseH       float64
	PeakPosition int32
	NSTime       int64
	TriggerBits  int32
	NHits        int32
	HitTimes     []float32
	ADCGrid      [GridChannels][GridSamples]int16
}

// MakeEvent returns the deterministic content of row i.
func MakeEvent(i int) Event {
	evt := Event{
		EventID:      int32(1000 + i),
		BaselineMean: 100.5 + float64(i),
		BaselineRMS:  1.25 + 0.5*float64(i),
		PulseH:       20 + 2*float64(i),
		PeakPosition: int32(i % WaveformSamples),
		NSTime:       1_000_000_000 + int64(i)*16,
		TriggerBits:  int32(1) << (i % 4),
		NHits:        int32(i % 3),
	}
	for j := range evt.ADCVal {
		evt.ADCVal[j] = int16(100 + i*10 + j)
	}
	evt.HitTimes = make([]float32, evt.NHits)
	for k := range evt.HitTimes {
		evt.HitTimes[k] = float32(i) + 0.5*float32(k)
	}
	for c := range evt.ADCGrid {
		for s := range evt.ADCGrid[c] {
			evt.ADCGrid[c][s] = int16(c*10 + s + i)
		}
	}
	return evt
}

// Branch names written by WriteEvents, in branch order.
var EventBranches = []string{
	"eventID", "adcVal", "baselineMean", "baselineRMS", "pulseH",
	"peakPosition", "nsTime", "triggerBits", "nHits", "hitTimes", "adcGrid",
}

// WriteEvents creates a ROOT file at path holding a tree of n events.
func WriteEvents(path, tree string, n int) error {
	evt, wvars := eventVars()
	return writeTree(path, tree, "synthetic detector events", wvars, n, func(i int) {
		*evt = MakeEvent(i)
	})
}

// WriteRun creates a ROOT file with an event tree named "tree" and an
// identifier tree named "ids".
func WriteRun(path string, events, ids int) (err error) {
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	evt, wvars := eventVars()
	if err := fillTree(f, "tree", "synthetic detector events", wvars, events, func(i int) {
		*evt = MakeEvent(i)
	}); err != nil {
		return err
	}

	var id int32
	return fillTree(f, "ids", "event identifiers", []rtree.WriteVar{{Name: "eventID", Value: &id}}, ids, func(i int) {
		id = int32(1000 + i)
	})
}

func eventVars() (*Event, []rtree.WriteVar) {
	evt := new(Event)
	return evt, []rtree.WriteVar{
		{Name: "eventID", Value: &evt.EventID},
		{Name: "adcVal", Value: &evt.ADCVal},
		{Name: "baselineMean", Value: &evt.BaselineMean},
		{Name: "baselineRMS", Value: &evt.BaselineRMS},
		{Name: "pulseH", Value: &evt.PulseH},
		{Name: "peakPosition", Value: &evt.PeakPosition},
		{Name: "nsTime", Value: &evt.NSTime},
		{Name: "triggerBits", Value: &evt.TriggerBits},
		{Name: "nHits", Value: &evt.NHits},
		{Name: "hitTimes", Value: &evt.HitTimes, Count: "nHits"},
		{Name: "adcGrid", Value: &evt.ADCGrid},
	}
}

// WriteIDs creates a ROOT file at path holding a tree with only an eventID branch.
func WriteIDs(path, tree string, n int) error {
	var id int32
	wvars := []rtree.WriteVar{
		{Name: "eventID", Value: &id},
	}
	return writeTree(path, tree, "event identifiers", wvars, n, func(i int) {
		id = int32(1000 + i)
	})
}

func writeTree(path, name, title string, wvars []rtree.WriteVar, n int, fill func(int)) (err error) {
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return fillTree(f, name, title, wvars, n, fill)
}

func fillTree(dir riofs.Directory, name, title string, wvars []rtree.WriteVar, n int, fill func(int)) error {
	w, err := rtree.NewWriter(dir, name, wvars, rtree.WithTitle(title))
	if err != nil {
		return fmt.Errorf("create tree %q: %w", name, err)
	}

	for i := 0; i < n; i++ {
		fill(i)
		if _, err := w.Write(); err != nil {
			_ = w.Close()
			return fmt.Errorf("write row %d of %q: %w", i, name, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close tree %q: %w", name, err)
	}
	return nil
}
