package deco

import "errors"

// ErrEmptyGasList is returned when Plan is called with no candidate
// gases at all (spec §4.4, §6 taxonomy).
var ErrEmptyGasList = errors.New("deco: available gas list is empty")

// ErrCurrentGasNotInList is returned when the model's current gas
// does not appear in the candidate list (spec §4.4, §6 taxonomy).
var ErrCurrentGasNotInList = errors.New("deco: current gas is not present in the available gas list")

// ErrStopExceededCap is returned when a single decompression stop
// would need to exceed the 99-minute safety cap (spec §4.4 step 5).
// The reference implementation chooses to fail the plan outright
// rather than silently return a partial runtime, so a caller always
// knows the plan they receive is complete.
var ErrStopExceededCap = errors.New("deco: a single stop exceeded the 99 minute safety cap")
