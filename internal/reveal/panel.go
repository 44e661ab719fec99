package reveal

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// PanelThreshold is the visible ratio a region must strictly exceed to activate its panel.
const PanelThreshold = 0.5

// Region is a named, observable screen area.
type Region struct {
	ID string
}

// PanelConfig describes the regions a PanelSelector tracks and which panel each one activates.
type PanelConfig struct {
	Regions []Region
	// Panels maps each Region.ID to the panel it activates.
	Panels map[string]PanelKind
	// Kinds is the full set of panels. DefaultKinds is used when empty.
	Kinds []PanelKind
	// Default is the active panel before any region crosses the threshold.
	Default PanelKind
}

// ActivePanelChanged is emitted each time the active panel changes value.
type ActivePanelChanged struct {
	Previous PanelKind
	Current  PanelKind
}

// PanelSelector keeps exactly one panel active in response to region visibility updates. Updates are
// applied in arrival order and the last qualifying update wins.
type PanelSelector struct {
	observer  VisibilityObserver
	sink      PresentationSink
	panels    map[string]PanelKind
	ratios    map[string]float64
	regions   []string
	active    PanelKind
	listeners []func(ActivePanelChanged)
	disposed  bool
}

// NewPanelSelector validates the config, applies the default panel to the sink and begins
// observing every region.
func NewPanelSelector(config PanelConfig, observer VisibilityObserver, sink PresentationSink) (*PanelSelector, error) {
	if observer == nil || sink == nil {
		return nil, errors.Join(errors.New("observer and sink are required"), ErrConfig)
	}

	kinds := config.Kinds
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}

	if len(config.Regions) == 0 {
		return nil, errors.Join(errors.New("no regions configured"), ErrConfig)
	}

	if !slices.Contains(kinds, config.Default) {
		return nil, errors.Join(fmt.Errorf("default panel %q is not a known panel", config.Default), ErrConfig)
	}

	selector := &PanelSelector{
		observer: observer,
		sink:     sink,
		panels:   make(map[string]PanelKind, len(config.Regions)),
		ratios:   make(map[string]float64, len(config.Regions)),
		regions:  make([]string, 0, len(config.Regions)),
		active:   config.Default,
	}

	for _, region := range config.Regions {
		if _, found := selector.panels[region.ID]; found {
			return nil, errors.Join(fmt.Errorf("region %q declared twice", region.ID), ErrConfig)
		}

		kind, found := config.Panels[region.ID]
		if !found {
			return nil, errors.Join(fmt.Errorf("region %q has no panel mapping", region.ID), ErrConfig)
		}

		if !slices.Contains(kinds, kind) {
			return nil, errors.Join(fmt.Errorf("region %q maps to unknown panel %q", region.ID, kind), ErrConfig)
		}

		selector.panels[region.ID] = kind
		selector.regions = append(selector.regions, region.ID)
	}

	sink.SetActivePanel(selector.active)

	for _, regionID := range selector.regions {
		observer.Observe(regionID, []float64{PanelThreshold})
	}

	return selector, nil
}

// OnChange registers a listener for ActivePanelChanged events.
func (s *PanelSelector) OnChange(listener func(ActivePanelChanged)) {
	s.listeners = append(s.listeners, listener)
}

// OnVisibilityUpdate records the visible ratio of a region, activating its panel when the ratio is
// strictly above PanelThreshold.
func (s *PanelSelector) OnVisibilityUpdate(regionID string, visibleRatio float64) error {
	if s.disposed {
		return ErrDisposed
	}

	kind, found := s.panels[regionID]
	if !found {
		return errors.Join(fmt.Errorf("region %q", regionID), ErrUnknownRegion)
	}

	if math.IsNaN(visibleRatio) || visibleRatio < 0 || visibleRatio > 1 {
		return errors.Join(fmt.Errorf("region %q reported %f", regionID, visibleRatio), ErrInvalidRatio)
	}

	s.ratios[regionID] = visibleRatio

	if visibleRatio <= PanelThreshold || kind == s.active {
		return nil
	}

	change := ActivePanelChanged{Previous: s.active, Current: kind}
	s.active = kind
	s.sink.SetActivePanel(kind)

	for _, listener := range s.listeners {
		listener(change)
	}

	return nil
}

// Current returns the active panel.
func (s *PanelSelector) Current() PanelKind {
	return s.active
}

// Ratio returns the last ratio reported for a region, or zero if none has arrived yet.
func (s *PanelSelector) Ratio(regionID string) float64 {
	return s.ratios[regionID]
}

// Dispose stops observing all regions. Any further update fails with ErrDisposed.
func (s *PanelSelector) Dispose() error {
	if s.disposed {
		return errors.Join(ErrDisposed, errAlreadyDisposed)
	}

	s.disposed = true
	for _, regionID := range s.regions {
		s.observer.Unobserve(regionID)
	}

	s.listeners = nil

	return nil
}
