//go:build !segmentdebug

package segment

// strictInvariants makes every Planner strict. Enable with -tags segmentdebug.
const strictInvariants = false
