package mathutil

// halfPeriod is the midpoint of the unit period.
const halfPeriod = 0.5
