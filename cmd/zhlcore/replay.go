package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/deepstop/zhlcore/engine"
	"github.com/deepstop/zhlcore/units"
)

// replay advances m through every event in plan in order, logging
// progress at debug level.
func replay(m *engine.Model, plan divePlanFile) error {
	for i, ev := range plan.Events {
		g, err := plan.resolveGas(ev.GasName)
		if err != nil {
			return err
		}

		switch {
		case ev.TravelTo != nil:
			target := units.Depth(*ev.TravelTo)
			if ev.RateMpm > 0 {
				if err := m.RecordTravelWithRate(target, ev.RateMpm, g); err != nil {
					return fmt.Errorf("event %d: %w", i, err)
				}
			} else {
				if err := m.RecordTravel(target, units.TimeFromMinutes(ev.TimeMin), g); err != nil {
					return fmt.Errorf("event %d: %w", i, err)
				}
			}
			logrus.Debugf("event %d: travel to %.1fm over %.1f min on %s", i, target.Metres(), ev.TimeMin, g)
		case ev.Depth != nil:
			depth := units.Depth(*ev.Depth)
			if err := m.Record(depth, units.TimeFromMinutes(ev.TimeMin), g); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			logrus.Debugf("event %d: %.1f min at %.1fm on %s", i, ev.TimeMin, depth.Metres(), g)
		default:
			return fmt.Errorf("event %d: neither depth nor travel_to set", i)
		}
	}
	return nil
}
